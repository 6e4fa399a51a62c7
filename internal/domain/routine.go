package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// RoutineID is a server-assigned routine identifier.
type RoutineID struct {
	uuid.UUID
}

// ParseRoutineID parses the canonical string form of a routine id.
func ParseRoutineID(s string) (RoutineID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RoutineID{}, err
	}
	return RoutineID{id}, nil
}

// Routine is a training plan: a tree of sections and activities.
type Routine struct {
	ID       RoutineID    `json:"id"`
	Name     Name         `json:"name"`
	Notes    string       `json:"notes"`
	Archived bool         `json:"archived"`
	Sections RoutineParts `json:"sections"`
}

// RoutinePart is either a RoutineSection or a RoutineActivity.
//
// On the wire the two variants are distinguished by their field signature,
// not by a tag: a section carries "rounds" and "parts", an activity carries
// "exercise_id". RoutineParts.UnmarshalJSON probes the signatures in that
// fixed order.
type RoutinePart interface {
	isRoutinePart()
}

// RoutineParts is an ordered list of routine parts with wire-compatible
// JSON decoding.
type RoutineParts []RoutinePart

// RoutineSection repeats its child parts a number of rounds.
type RoutineSection struct {
	Rounds uint32       `json:"rounds"`
	Parts  RoutineParts `json:"parts"`
}

// RoutineActivity is a single planned activity. Exercise is a weak reference;
// nil means a rest without an exercise.
type RoutineActivity struct {
	Exercise  *ExerciseID `json:"exercise_id"`
	Reps      Reps        `json:"reps"`
	Time      Time        `json:"time"`
	Weight    Weight      `json:"weight"`
	RPE       RPE         `json:"rpe"`
	Automatic bool        `json:"automatic"`
}

func (RoutineSection) isRoutinePart()  {}
func (RoutineActivity) isRoutinePart() {}

func (p *RoutineParts) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}

	parts := make(RoutineParts, 0, len(raw))
	for _, r := range raw {
		part, err := unmarshalRoutinePart(r)
		if err != nil {
			return err
		}
		parts = append(parts, part)
	}
	*p = parts
	return nil
}

func unmarshalRoutinePart(b []byte) (RoutinePart, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("invalid routine part: %w", err)
	}

	// Section signature first, then activity.
	if _, ok := fields["rounds"]; ok {
		var s RoutineSection
		if err := json.Unmarshal(b, &s); err != nil {
			return nil, fmt.Errorf("invalid routine section: %w", err)
		}
		return s, nil
	}
	if _, ok := fields["exercise_id"]; ok {
		var a RoutineActivity
		if err := json.Unmarshal(b, &a); err != nil {
			return nil, fmt.Errorf("invalid routine activity: %w", err)
		}
		return a, nil
	}
	return nil, fmt.Errorf("routine part matches neither section nor activity")
}
