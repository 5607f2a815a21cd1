//go:build unit

package builder

import (
	"parking-facility/internal/domain/spot"
	"parking-facility/internal/domain/vehicle"
)

type VehicleBuilder struct {
	Plate    string
	Kind     vehicle.Kind
	Category *spot.Category
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		Plate: "ABC-1234",
		Kind:  vehicle.KindCar,
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) WithPlate(plate string) *VehicleBuilder {
	b.Plate = plate
	return b
}

func (b *VehicleBuilder) WithKind(kind vehicle.Kind) *VehicleBuilder {
	b.Kind = kind
	return b
}

func (b *VehicleBuilder) WithRequiredCategory(category spot.Category) *VehicleBuilder {
	b.Category = &category
	return b
}

func (b *VehicleBuilder) BuildDomain() (vehicle.Vehicle, error) {
	if b.Category != nil {
		return vehicle.NewVehicleWithCategory(b.Plate, b.Kind, *b.Category)
	}
	return vehicle.NewVehicle(b.Plate, b.Kind)
}
