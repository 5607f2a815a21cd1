package spot

import "errors"

var ErrInvalidCategory = errors.New("invalid spot category")

// Category classifies a spot (and the kind of spot a vehicle requires).
type Category string

const (
	CategoryCompact    Category = "compact"
	CategoryRegular    Category = "regular"
	CategoryLarge      Category = "large"
	CategoryAccessible Category = "reserved_accessible"
)

// Categories returns all categories in their stable reporting order.
func Categories() []Category {
	return []Category{CategoryCompact, CategoryRegular, CategoryLarge, CategoryAccessible}
}

func NewCategory(value string) (Category, error) {
	c := Category(value)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryCompact, CategoryRegular, CategoryLarge, CategoryAccessible:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// FallbackTargets lists the strictly-larger categories a vehicle requiring c
// may be upgraded into, in ascending upgrade order. CategoryAccessible
// participates in no fallback relation: it is never a target and vehicles
// requiring it fall back to nothing.
func (c Category) FallbackTargets() []Category {
	switch c {
	case CategoryCompact:
		return []Category{CategoryRegular, CategoryLarge}
	case CategoryRegular:
		return []Category{CategoryLarge}
	default:
		return nil
	}
}

// Letter is the single-character tag used in spot ids ("F2-R017").
func (c Category) Letter() string {
	switch c {
	case CategoryCompact:
		return "C"
	case CategoryRegular:
		return "R"
	case CategoryLarge:
		return "L"
	case CategoryAccessible:
		return "A"
	}
	return "?"
}
