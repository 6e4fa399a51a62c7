package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// TrainingSessionID is a server-assigned training-session identifier.
type TrainingSessionID struct {
	uuid.UUID
}

// ParseTrainingSessionID parses the canonical string form of a
// training-session id.
func ParseTrainingSessionID(s string) (TrainingSessionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TrainingSessionID{}, err
	}
	return TrainingSessionID{id}, nil
}

// TrainingSession records one performed workout. Routine is a weak,
// optional reference to the plan the session was started from.
type TrainingSession struct {
	ID       TrainingSessionID       `json:"id"`
	Routine  *RoutineID              `json:"routine_id"`
	Date     Date                    `json:"date"`
	Notes    string                  `json:"notes"`
	Elements TrainingSessionElements `json:"elements"`
}

// TrainingSessionElement is either a Set or a Rest.
//
// Like RoutinePart, the wire format is an untagged union: a set carries
// "exercise_id", a rest does not. TrainingSessionElements.UnmarshalJSON
// probes the set signature first.
type TrainingSessionElement interface {
	isTrainingSessionElement()
}

// TrainingSessionElements is an ordered list of session elements with
// wire-compatible JSON decoding.
type TrainingSessionElements []TrainingSessionElement

// Set is one performed set of an exercise. The exercise reference is weak
// (lookup only). Actual values are nil until entered; target values are nil
// when the set was not started from a routine.
type Set struct {
	Exercise     ExerciseID `json:"exercise_id"`
	Reps         *Reps      `json:"reps"`
	Time         *Time      `json:"time"`
	Weight       *Weight    `json:"weight"`
	RPE          *RPE       `json:"rpe"`
	TargetReps   *Reps      `json:"target_reps"`
	TargetTime   *Time      `json:"target_time"`
	TargetWeight *Weight    `json:"target_weight"`
	TargetRPE    *RPE       `json:"target_rpe"`
	Automatic    bool       `json:"automatic"`
}

// Rest is a pause between sets.
type Rest struct {
	TargetTime *Time `json:"target_time"`
	Automatic  bool  `json:"automatic"`
}

func (Set) isTrainingSessionElement()  {}
func (Rest) isTrainingSessionElement() {}

func (e *TrainingSessionElements) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*e = nil
		return nil
	}

	elements := make(TrainingSessionElements, 0, len(raw))
	for _, r := range raw {
		element, err := unmarshalTrainingSessionElement(r)
		if err != nil {
			return err
		}
		elements = append(elements, element)
	}
	*e = elements
	return nil
}

func unmarshalTrainingSessionElement(b []byte) (TrainingSessionElement, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("invalid session element: %w", err)
	}

	// Set signature first, then rest.
	if _, ok := fields["exercise_id"]; ok {
		var s Set
		if err := json.Unmarshal(b, &s); err != nil {
			return nil, fmt.Errorf("invalid set: %w", err)
		}
		return s, nil
	}
	var r Rest
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("invalid rest: %w", err)
	}
	return r, nil
}
