package domain

// BodyWeight is one body-weight measurement in kilograms. At most one entry
// exists per date.
type BodyWeight struct {
	Date   Date    `json:"date"`
	Weight float64 `json:"weight"`
}
