package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ExerciseID is a server-assigned exercise identifier.
type ExerciseID struct {
	uuid.UUID
}

// ParseExerciseID parses the canonical string form of an exercise id.
func ParseExerciseID(s string) (ExerciseID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ExerciseID{}, err
	}
	return ExerciseID{id}, nil
}

// Exercise describes a movement and the muscles it stimulates.
type Exercise struct {
	ID      ExerciseID       `json:"id"`
	Name    Name             `json:"name"`
	Muscles []ExerciseMuscle `json:"muscles"`
}

// ExerciseMuscle is one (muscle, stimulus) pair of an exercise.
type ExerciseMuscle struct {
	Muscle   MuscleID `json:"muscle_id"`
	Stimulus Stimulus `json:"stimulus"`
}

// Stimulus is the relative training stimulus of an exercise on a muscle,
// in percent.
type Stimulus uint8

const (
	StimulusPrimary   Stimulus = 100
	StimulusSecondary Stimulus = 50
	StimulusNone      Stimulus = 0
)

// NewStimulus validates that v does not exceed 100.
func NewStimulus(v uint8) (Stimulus, error) {
	if v > uint8(StimulusPrimary) {
		return 0, fmt.Errorf("stimulus must be 100 or less (got %d)", v)
	}
	return Stimulus(v), nil
}

// MuscleID identifies a muscle group. Values are grouped by body region;
// gaps leave room for finer-grained additions.
type MuscleID uint8

const (
	MuscleNeck          MuscleID = 1
	MusclePecs          MuscleID = 11
	MuscleTraps         MuscleID = 21
	MuscleLats          MuscleID = 22
	MuscleFrontDelts    MuscleID = 31
	MuscleSideDelts     MuscleID = 32
	MuscleRearDelts     MuscleID = 33
	MuscleBiceps        MuscleID = 41
	MuscleTriceps       MuscleID = 42
	MuscleForearms      MuscleID = 51
	MuscleAbs           MuscleID = 61
	MuscleErectorSpinae MuscleID = 62
	MuscleGlutes        MuscleID = 71
	MuscleAbductors     MuscleID = 72
	MuscleQuads         MuscleID = 81
	MuscleHamstrings    MuscleID = 82
	MuscleAdductors     MuscleID = 83
	MuscleCalves        MuscleID = 91
)
