package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"parking-facility/internal/domain/spot"
)

var (
	ErrInvalidKind     = errors.New("invalid vehicle kind")
	ErrEmptyPlate      = errors.New("license plate cannot be empty")
	ErrInvalidCategory = errors.New("invalid required category")
)

// Kind is the vehicle classification supplied at the gate. The required spot
// category is a fixed per-kind mapping, not a property of the caller.
type Kind string

const (
	KindMotorcycle Kind = "motorcycle"
	KindCar        Kind = "car"
	KindTruck      Kind = "truck"
)

var requiredCategory = map[Kind]spot.Category{
	KindMotorcycle: spot.CategoryCompact,
	KindCar:        spot.CategoryRegular,
	KindTruck:      spot.CategoryLarge,
}

func NewKind(value string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := requiredCategory[k]; !ok {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

// Vehicle is an immutable client description: plate, kind, and the spot
// category it requires.
type Vehicle struct {
	plate    string
	kind     Kind
	category spot.Category
}

func NewVehicle(plate string, kind Kind) (Vehicle, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return Vehicle{}, ErrEmptyPlate
	}
	cat, ok := requiredCategory[kind]
	if !ok {
		return Vehicle{}, ErrInvalidKind
	}
	return Vehicle{plate: plate, kind: kind, category: cat}, nil
}

// NewVehicleWithCategory overrides the per-kind mapping, e.g. for permit
// holders entitled to a reserved accessible spot. The standard kinds never
// request CategoryAccessible on their own.
func NewVehicleWithCategory(plate string, kind Kind, category spot.Category) (Vehicle, error) {
	v, err := NewVehicle(plate, kind)
	if err != nil {
		return Vehicle{}, err
	}
	if !category.IsValid() {
		return Vehicle{}, ErrInvalidCategory
	}
	v.category = category
	return v, nil
}

func (v Vehicle) Plate() string                   { return v.plate }
func (v Vehicle) Kind() Kind                      { return v.kind }
func (v Vehicle) RequiredCategory() spot.Category { return v.category }

func (v Vehicle) Description() string {
	return fmt.Sprintf("%s (%s)", strings.ToUpper(string(v.kind)), v.plate)
}
