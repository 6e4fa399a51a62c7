package domain

// BodyFat is one set of caliper skinfold measurements in millimeters. All
// sites are optional; at most one entry exists per date.
type BodyFat struct {
	Date        Date   `json:"date"`
	Chest       *uint8 `json:"chest"`
	Abdominal   *uint8 `json:"abdominal"`
	Thigh       *uint8 `json:"thigh"`
	Tricep      *uint8 `json:"tricep"`
	Subscapular *uint8 `json:"subscapular"`
	Suprailiac  *uint8 `json:"suprailiac"`
	Midaxillary *uint8 `json:"midaxillary"`
}
