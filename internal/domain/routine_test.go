package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseIDFromByte(b byte) ExerciseID {
	return ExerciseID{uuid.UUID{15: b}}
}

func TestRoutinePartsUnmarshalNested(t *testing.T) {
	id := exerciseIDFromByte(1)
	data := `[
		{
			"rounds": 3,
			"parts": [
				{"exercise_id": "` + id.String() + `", "reps": 10, "time": 0, "weight": 20, "rpe": 8, "automatic": false},
				{"exercise_id": null, "reps": 0, "time": 60, "weight": 0, "rpe": 0, "automatic": true}
			]
		},
		{"exercise_id": "` + id.String() + `", "reps": 5, "time": 0, "weight": 0, "rpe": 0, "automatic": false}
	]`

	var parts RoutineParts
	require.NoError(t, json.Unmarshal([]byte(data), &parts))
	require.Len(t, parts, 2)

	section, ok := parts[0].(RoutineSection)
	require.True(t, ok)
	assert.Equal(t, uint32(3), section.Rounds)
	require.Len(t, section.Parts, 2)

	activity, ok := section.Parts[0].(RoutineActivity)
	require.True(t, ok)
	require.NotNil(t, activity.Exercise)
	assert.Equal(t, id, *activity.Exercise)
	assert.Equal(t, Reps(10), activity.Reps)

	rest, ok := section.Parts[1].(RoutineActivity)
	require.True(t, ok)
	assert.Nil(t, rest.Exercise)
	assert.Equal(t, Time(60), rest.Time)
	assert.True(t, rest.Automatic)

	_, ok = parts[1].(RoutineActivity)
	assert.True(t, ok)
}

func TestRoutinePartsSectionBeforeActivity(t *testing.T) {
	// An object carrying "rounds" must decode as a section even if other
	// keys are present.
	data := `[{"rounds": 2, "parts": []}]`

	var parts RoutineParts
	require.NoError(t, json.Unmarshal([]byte(data), &parts))
	require.Len(t, parts, 1)
	_, ok := parts[0].(RoutineSection)
	assert.True(t, ok)
}

func TestRoutinePartsUnmarshalUnknownShape(t *testing.T) {
	var parts RoutineParts
	err := json.Unmarshal([]byte(`[{"foo": 1}]`), &parts)
	assert.Error(t, err)
}

func TestRoutinePartsRoundTrip(t *testing.T) {
	id := exerciseIDFromByte(7)
	parts := RoutineParts{
		RoutineSection{
			Rounds: 2,
			Parts: RoutineParts{
				RoutineActivity{Exercise: &id, Reps: 8, Weight: 60, RPE: 7},
				RoutineActivity{Time: 90, Automatic: true},
			},
		},
	}

	b, err := json.Marshal(parts)
	require.NoError(t, err)

	var decoded RoutineParts
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, parts, decoded)
}
