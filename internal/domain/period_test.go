package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntensity(t *testing.T) {
	for v := uint8(1); v <= 4; v++ {
		got, err := NewIntensity(v)
		require.NoError(t, err)
		assert.Equal(t, Intensity(v), got)
	}

	_, err := NewIntensity(0)
	assert.Error(t, err)
	_, err = NewIntensity(5)
	assert.Error(t, err)
}

func TestIntensityString(t *testing.T) {
	assert.Equal(t, "spotting", IntensitySpotting.String())
	assert.Equal(t, "light", IntensityLight.String())
	assert.Equal(t, "medium", IntensityMedium.String())
	assert.Equal(t, "heavy", IntensityHeavy.String())
}

func TestNewStimulus(t *testing.T) {
	got, err := NewStimulus(100)
	require.NoError(t, err)
	assert.Equal(t, StimulusPrimary, got)

	_, err = NewStimulus(101)
	assert.Error(t, err)
}
