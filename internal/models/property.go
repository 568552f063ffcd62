package models

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidPropertyType = errors.New("invalid property type")

type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeTownhouse PropertyType = "Townhouse"
	PropertyTypeStudio    PropertyType = "Studio"
	PropertyTypeLand      PropertyType = "Land"
)

// PropertyTypes lists the selectable types in the order the form shows them.
var PropertyTypes = []PropertyType{
	PropertyTypeHouse,
	PropertyTypeApartment,
	PropertyTypeTownhouse,
	PropertyTypeStudio,
	PropertyTypeLand,
}

var propertyTypeLabels = map[PropertyType]string{
	PropertyTypeHouse:     "Casa",
	PropertyTypeApartment: "Apartamento",
	PropertyTypeTownhouse: "Sobrado",
	PropertyTypeStudio:    "Kitnet",
	PropertyTypeLand:      "Terreno",
}

// Label returns the pt-BR name shown on cards and in the type select.
func (t PropertyType) Label() string {
	if label, ok := propertyTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t PropertyType) Valid() bool {
	_, ok := propertyTypeLabels[t]
	return ok
}

// ParsePropertyType accepts the English value or the pt-BR label, ignoring case.
// An empty string yields an empty type.
func ParsePropertyType(raw string) (PropertyType, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	for _, t := range PropertyTypes {
		if strings.EqualFold(raw, string(t)) || strings.EqualFold(raw, t.Label()) {
			return t, nil
		}
	}
	return "", ErrInvalidPropertyType
}

type Property struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Price         float64      `json:"price"`
	Address       string       `json:"address"`
	City          string       `json:"city"`
	Neighborhood  string       `json:"neighborhood"`
	Area          float64      `json:"area"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	ParkingSpaces int          `json:"parking_spaces"`
	Type          PropertyType `json:"type"`
	Description   string       `json:"description"`
	Features      []string     `json:"features"`
	Image         string       `json:"image"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Clone returns a copy that shares no slices with p.
func (p Property) Clone() Property {
	c := p
	c.Features = append([]string(nil), p.Features...)
	if c.Features == nil {
		c.Features = []string{}
	}
	return c
}
