package response

import (
	"parkme/internal/usecase/readmodel"
)

type ZoneAvailabilityResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	TotalSpots     int    `json:"total_spots"`
	AvailableSpots int    `json:"available_spots"`
}

type FacilityAvailabilityResponse struct {
	ID             string                     `json:"id"`
	Name           string                     `json:"name"`
	TimeZone       string                     `json:"timezone"`
	TotalSpots     int                        `json:"total_spots"`
	AvailableSpots int                        `json:"available_spots"`
	Zones          []ZoneAvailabilityResponse `json:"zones"`
}

type SpotAvailabilityResponse struct {
	SpotID   string `json:"spot_id"`
	Number   string `json:"number"`
	Status   string `json:"status"`
	Bookable bool   `json:"bookable"`
	Locked   bool   `json:"locked"`
}

type SpotResponse struct {
	ID         string `json:"id"`
	ZoneID     string `json:"zone_id"`
	Number     string `json:"number"`
	Size       string `json:"size"`
	EVCharger  bool   `json:"ev_charger"`
	Accessible bool   `json:"accessible"`
	Covered    bool   `json:"covered"`
	VIP        bool   `json:"vip"`
}

type SpotSearchResponse struct {
	Spots []SpotResponse `json:"spots"`
}

func FromFacilityAvailability(v *readmodel.FacilityAvailabilityView) *FacilityAvailabilityResponse {
	zones := make([]ZoneAvailabilityResponse, 0, len(v.Zones))
	for _, z := range v.Zones {
		zones = append(zones, ZoneAvailabilityResponse{
			ID:             z.ID.String(),
			Code:           z.Code,
			Name:           z.Name,
			TotalSpots:     z.TotalSpots,
			AvailableSpots: z.AvailableSpots,
		})
	}
	return &FacilityAvailabilityResponse{
		ID:             v.ID.String(),
		Name:           v.Name,
		TimeZone:       v.TimeZone,
		TotalSpots:     v.TotalSpots,
		AvailableSpots: v.AvailableSpots,
		Zones:          zones,
	}
}

func FromSpotAvailability(v *readmodel.SpotAvailabilityView) *SpotAvailabilityResponse {
	return &SpotAvailabilityResponse{
		SpotID:   v.SpotID.String(),
		Number:   v.Number,
		Status:   v.Status,
		Bookable: v.Bookable,
		Locked:   v.Locked,
	}
}

func FromSpotViews(views []readmodel.SpotView) *SpotSearchResponse {
	spots := make([]SpotResponse, 0, len(views))
	for _, v := range views {
		spots = append(spots, SpotResponse{
			ID:         v.ID.String(),
			ZoneID:     v.ZoneID.String(),
			Number:     v.Number,
			Size:       v.Size,
			EVCharger:  v.EVCharger,
			Accessible: v.Accessible,
			Covered:    v.Covered,
			VIP:        v.VIP,
		})
	}
	return &SpotSearchResponse{Spots: spots}
}
