package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

var ErrUnknownField = errors.New("unknown draft field")

// Draft field names accepted by SetField. They double as form input names.
const (
	FieldTitle         = "title"
	FieldPrice         = "price"
	FieldAddress       = "address"
	FieldCity          = "city"
	FieldNeighborhood  = "neighborhood"
	FieldArea          = "area"
	FieldBedrooms      = "bedrooms"
	FieldBathrooms     = "bathrooms"
	FieldParkingSpaces = "parking_spaces"
	FieldType          = "type"
	FieldDescription   = "description"
	FieldImageURL      = "image_url"
	FieldFeatureInput  = "feature_input"
)

// DraftFields lists every field name SetField understands.
var DraftFields = []string{
	FieldTitle, FieldPrice, FieldAddress, FieldCity, FieldNeighborhood,
	FieldArea, FieldBedrooms, FieldBathrooms, FieldParkingSpaces, FieldType,
	FieldDescription, FieldImageURL, FieldFeatureInput,
}

// Draft is the in-progress form state of a listing.
type Draft struct {
	Title         string       `json:"title"`
	Price         float64      `json:"price"`
	PriceSet      bool         `json:"price_set"`
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
	ImageURL      string       `json:"image_url"`
	FeatureInput  string       `json:"feature_input"`
	Upload        *ImageUpload `json:"upload,omitempty"`
}

func NewDraft() Draft {
	return Draft{Features: []string{}}
}

// Reset returns the draft to its empty defaults, dropping any attached upload.
func (d *Draft) Reset() {
	*d = NewDraft()
}

// SetField merges a single field into the draft. Numeric fields never fail:
// input that does not parse as a finite non-negative number becomes 0.
func (d *Draft) SetField(name, value string) error {
	switch name {
	case FieldTitle:
		d.Title = value
	case FieldPrice:
		d.Price = coerceNumber(value)
		d.PriceSet = strings.TrimSpace(value) != ""
	case FieldAddress:
		d.Address = value
	case FieldCity:
		d.City = value
	case FieldNeighborhood:
		d.Neighborhood = value
	case FieldArea:
		d.Area = coerceNumber(value)
	case FieldBedrooms:
		d.Bedrooms = coerceInt(value)
	case FieldBathrooms:
		d.Bathrooms = coerceInt(value)
	case FieldParkingSpaces:
		d.ParkingSpaces = coerceInt(value)
	case FieldType:
		t, err := ParsePropertyType(value)
		if err != nil {
			return fmt.Errorf("%w: %q", err, value)
		}
		d.Type = t
	case FieldDescription:
		d.Description = value
	case FieldImageURL:
		d.ImageURL = value
	case FieldFeatureInput:
		d.FeatureInput = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// AddFeature appends the trimmed text and clears the feature input.
// Blank text is ignored and reported with false.
func (d *Draft) AddFeature(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	d.Features = append(slices.Clone(d.Features), text)
	d.FeatureInput = ""
	return true
}

// AddPendingFeature commits whatever is currently typed in FeatureInput.
func (d *Draft) AddPendingFeature() bool {
	return d.AddFeature(d.FeatureInput)
}

// RemoveFeature drops the feature at index; out of range is a no-op.
func (d *Draft) RemoveFeature(index int) {
	if index < 0 || index >= len(d.Features) {
		return
	}
	d.Features = slices.Delete(slices.Clone(d.Features), index, index+1)
}

// Validate reports the required fields that are missing. With allowZeroPrice
// false a price of 0 counts as missing; otherwise only an unset price does.
func (d *Draft) Validate(allowZeroPrice bool) error {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, FieldTitle)
	}
	if allowZeroPrice {
		if !d.PriceSet {
			missing = append(missing, FieldPrice)
		}
	} else if d.Price == 0 {
		missing = append(missing, FieldPrice)
	}
	if strings.TrimSpace(d.Address) == "" {
		missing = append(missing, FieldAddress)
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func coerceNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func coerceInt(raw string) int {
	v := coerceNumber(raw)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
