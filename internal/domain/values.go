package domain

// Value objects shared by routines and training sessions.

// Reps is a repetition count.
type Reps uint32

// Time is a duration in seconds.
type Time uint32

// Weight is a load in kilograms.
type Weight float64

// RPE is a rating of perceived exertion on the 0–10 scale.
type RPE float64
