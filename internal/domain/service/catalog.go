package service

import (
	"errors"
	"fmt"

	"hotel-console/internal/domain/pricing"
)

var ErrUnknownKind = errors.New("unknown service kind")

type Kind string

const (
	KindBreakfast       Kind = "breakfast"
	KindLunch           Kind = "lunch"
	KindDinner          Kind = "dinner"
	KindFullMeal        Kind = "full_meal"
	KindSauna           Kind = "sauna"
	KindPool            Kind = "pool"
	KindBathAccessories Kind = "bath_accessories"
	KindLaundry         Kind = "laundry"
)

// AllKinds is in menu-code order: code 1 is AllKinds[0] and so on.
var AllKinds = []Kind{
	KindBreakfast,
	KindLunch,
	KindDinner,
	KindFullMeal,
	KindSauna,
	KindPool,
	KindBathAccessories,
	KindLaundry,
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBreakfast, KindLunch, KindDinner, KindFullMeal,
		KindSauna, KindPool, KindBathAccessories, KindLaundry:
		return true
	default:
		return false
	}
}

// KindFromCode resolves the numeric menu codes 1-8.
func KindFromCode(code int) (Kind, error) {
	if code < 1 || code > len(AllKinds) {
		return "", fmt.Errorf("code %d: %w", code, ErrUnknownKind)
	}
	return AllKinds[code-1], nil
}

// mealBundleDiscount is the share taken off when the three meals are bought
// as the full-meal bundle.
const mealBundleDiscount = 0.15

// Catalog is a pure price lookup. The bundle price is derived from the
// individual meal prices at construction; selecting the bundle never also
// applies the individual meal prices.
type Catalog struct {
	prices map[Kind]pricing.Money
}

func NewCatalog() *Catalog {
	breakfast := pricing.FromUnits(300)
	lunch := pricing.FromUnits(500)
	dinner := pricing.FromUnits(400)

	fullMeal := breakfast.Add(lunch).Add(dinner).Scale(1 - mealBundleDiscount)

	prices := map[Kind]pricing.Money{
		KindBreakfast:       breakfast,
		KindLunch:           lunch,
		KindDinner:          dinner,
		KindFullMeal:        fullMeal,
		KindSauna:           pricing.FromUnits(650),
		KindPool:            pricing.FromUnits(700),
		KindBathAccessories: pricing.FromUnits(340),
		KindLaundry:         pricing.FromUnits(1200),
	}

	for _, k := range AllKinds {
		if _, ok := prices[k]; !ok {
			panic(fmt.Sprintf("service catalog is missing a price for %q", k))
		}
	}

	return &Catalog{prices: prices}
}

func (c *Catalog) Price(kind Kind) (pricing.Money, error) {
	price, ok := c.prices[kind]
	if !ok {
		return pricing.Money{}, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	return price, nil
}
