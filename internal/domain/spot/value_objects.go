package spot

import (
	"parkme/internal/pkg/errs"
)

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusOccupied    Status = "OCCUPIED"
	StatusReserved    Status = "RESERVED"
	StatusMaintenance Status = "MAINTENANCE"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved, StatusMaintenance:
		return true
	}
	return false
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", errs.Validation("unknown spot status %q", v)
	}
	return s, nil
}

// Size categories are ordered; a spot fits every vehicle whose size rank is
// not greater than its own.
type Size string

const (
	SizeSmall  Size = "SMALL"
	SizeMedium Size = "MEDIUM"
	SizeLarge  Size = "LARGE"
	SizeXLarge Size = "XLARGE"
)

var sizeRank = map[Size]int{
	SizeSmall:  1,
	SizeMedium: 2,
	SizeLarge:  3,
	SizeXLarge: 4,
}

func (s Size) String() string { return string(s) }

func (s Size) IsValid() bool {
	_, ok := sizeRank[s]
	return ok
}

func (s Size) Fits(other Size) bool {
	return sizeRank[s] >= sizeRank[other]
}

func ParseSize(v string) (Size, error) {
	s := Size(v)
	if !s.IsValid() {
		return "", errs.Validation("unknown spot size %q", v)
	}
	return s, nil
}

type VehicleType string

const (
	VehicleMotorcycle  VehicleType = "MOTORCYCLE"
	VehicleBicycle     VehicleType = "BICYCLE"
	VehicleCar         VehicleType = "CAR"
	VehicleElectricCar VehicleType = "ELECTRIC_CAR"
	VehicleSUV         VehicleType = "SUV"
	VehicleElectricSUV VehicleType = "ELECTRIC_SUV"
	VehicleVan         VehicleType = "VAN"
	VehicleTruck       VehicleType = "TRUCK"
	VehicleBus         VehicleType = "BUS"
)

var vehicleSize = map[VehicleType]Size{
	VehicleMotorcycle:  SizeSmall,
	VehicleBicycle:     SizeSmall,
	VehicleCar:         SizeMedium,
	VehicleElectricCar: SizeMedium,
	VehicleSUV:         SizeLarge,
	VehicleElectricSUV: SizeLarge,
	VehicleVan:         SizeLarge,
	VehicleTruck:       SizeXLarge,
	VehicleBus:         SizeXLarge,
}

func (v VehicleType) String() string { return string(v) }

func (v VehicleType) IsValid() bool {
	_, ok := vehicleSize[v]
	return ok
}

// RequiredSize is the smallest spot size the vehicle type fits in.
func (v VehicleType) RequiredSize() Size {
	return vehicleSize[v]
}

func (v VehicleType) IsElectric() bool {
	return v == VehicleElectricCar || v == VehicleElectricSUV
}

func ParseVehicleType(v string) (VehicleType, error) {
	t := VehicleType(v)
	if !t.IsValid() {
		return "", errs.Validation("unknown vehicle type %q", v)
	}
	return t, nil
}

type Features struct {
	EVCharger  bool `json:"ev_charger"`
	Accessible bool `json:"accessible"`
	Covered    bool `json:"covered"`
	VIP        bool `json:"vip"`
}

// Requirements are capability flags a booking asks the spot to provide.
type Requirements struct {
	EVCharger  bool
	Accessible bool
	Covered    bool
}

func (f Features) Satisfies(r Requirements) bool {
	if r.EVCharger && !f.EVCharger {
		return false
	}
	if r.Accessible && !f.Accessible {
		return false
	}
	if r.Covered && !f.Covered {
		return false
	}
	return true
}
