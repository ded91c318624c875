package response

import (
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/usecase/commands"
	"parkme/internal/usecase/readmodel"
)

type BookingResponse struct {
	ID             string  `json:"id"`
	TicketNumber   string  `json:"ticket_number"`
	UserID         string  `json:"user_id"`
	VehicleID      string  `json:"vehicle_id"`
	VehicleType    string  `json:"vehicle_type"`
	SpotID         string  `json:"spot_id"`
	SpotNumber     string  `json:"spot_number,omitempty"`
	FacilityID     string  `json:"facility_id"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	EntryTime      string  `json:"entry_time"`
	ExpectedExit   *string `json:"expected_exit,omitempty"`
	ActualExit     *string `json:"actual_exit,omitempty"`
	EstimatedPrice *string `json:"estimated_price,omitempty"`
	FinalPrice     *string `json:"final_price,omitempty"`
	Penalty        string  `json:"penalty"`
	IsOverstay     bool    `json:"is_overstay"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type CompleteResponse struct {
	Booking  *BookingResponse `json:"booking"`
	Price    *PriceResponse   `json:"price,omitempty"`
	Replayed bool             `json:"replayed"`
}

type ExtensionResponse struct {
	ID              string `json:"id"`
	PreviousExit    string `json:"previous_exit"`
	NewExit         string `json:"new_exit"`
	AdditionalPrice string `json:"additional_price"`
	RequestedAt     string `json:"requested_at"`
}

type ExtendResponse struct {
	Booking   *BookingResponse   `json:"booking"`
	Extension *ExtensionResponse `json:"extension"`
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID().String(),
		TicketNumber:   b.TicketNumber().String(),
		UserID:         b.UserID().String(),
		VehicleID:      b.VehicleID().String(),
		VehicleType:    b.VehicleType().String(),
		SpotID:         b.SpotID().String(),
		FacilityID:     b.FacilityID().String(),
		Type:           b.Type().String(),
		Status:         b.Status().String(),
		EntryTime:      formatTime(b.EntryTime()),
		ExpectedExit:   formatTimePtr(b.ExpectedExit()),
		ActualExit:     formatTimePtr(b.ActualExit()),
		EstimatedPrice: formatMoneyPtr(b.EstimatedPrice()),
		FinalPrice:     formatMoneyPtr(b.FinalPrice()),
		Penalty:        b.Penalty().String(),
		IsOverstay:     b.IsOverstay(),
		CreatedAt:      formatTime(b.CreatedAt()),
		UpdatedAt:      formatTime(b.UpdatedAt()),
	}
}

func FromBookingView(v *readmodel.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID.String(),
		TicketNumber:   v.TicketNumber,
		UserID:         v.UserID.String(),
		VehicleID:      v.VehicleID.String(),
		VehicleType:    v.VehicleType,
		SpotID:         v.SpotID.String(),
		SpotNumber:     v.SpotNumber,
		FacilityID:     v.FacilityID.String(),
		Type:           v.Type,
		Status:         v.Status,
		EntryTime:      formatTime(v.EntryTime),
		ExpectedExit:   formatTimePtr(v.ExpectedExit),
		ActualExit:     formatTimePtr(v.ActualExit),
		EstimatedPrice: formatMoneyPtr(v.EstimatedPrice),
		FinalPrice:     formatMoneyPtr(v.FinalPrice),
		Penalty:        v.Penalty.String(),
		IsOverstay:     v.IsOverstay(),
		CreatedAt:      formatTime(v.CreatedAt),
		UpdatedAt:      formatTime(v.UpdatedAt),
	}
}

func FromCompleteResult(r *commands.CompleteResult) *CompleteResponse {
	resp := &CompleteResponse{
		Booking:  FromBooking(r.Booking),
		Replayed: r.Replayed,
	}
	if r.Price != nil {
		resp.Price = FromPriceResult(r.Price)
	}
	return resp
}

func FromExtendResult(r *commands.ExtendResult) *ExtendResponse {
	e := r.Extension
	return &ExtendResponse{
		Booking: FromBooking(r.Booking),
		Extension: &ExtensionResponse{
			ID:              e.ID.String(),
			PreviousExit:    formatTime(e.PreviousExit),
			NewExit:         formatTime(e.NewExit),
			AdditionalPrice: e.AdditionalPrice.String(),
			RequestedAt:     formatTime(e.RequestedAt),
		},
	}
}

func FromBookingViews(views []*readmodel.BookingView, next *string) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookingView(v))
	}
	return &BookingListResponse{Bookings: out, NextCursor: next}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func formatMoneyPtr(m *pricing.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}
