package domain

import "fmt"

// Period is one menstrual-cycle entry. At most one entry exists per date.
type Period struct {
	Date      Date      `json:"date"`
	Intensity Intensity `json:"intensity"`
}

// Intensity is the bleeding intensity of a period entry.
type Intensity uint8

const (
	IntensitySpotting Intensity = 1
	IntensityLight    Intensity = 2
	IntensityMedium   Intensity = 3
	IntensityHeavy    Intensity = 4
)

// NewIntensity validates that v is within the range 1 to 4.
func NewIntensity(v uint8) (Intensity, error) {
	if v < uint8(IntensitySpotting) || v > uint8(IntensityHeavy) {
		return 0, fmt.Errorf("intensity must be in the range 1 to 4 (got %d)", v)
	}
	return Intensity(v), nil
}

func (i Intensity) String() string {
	switch i {
	case IntensitySpotting:
		return "spotting"
	case IntensityLight:
		return "light"
	case IntensityMedium:
		return "medium"
	case IntensityHeavy:
		return "heavy"
	}
	return fmt.Sprintf("intensity(%d)", uint8(i))
}
