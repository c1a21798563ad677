package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkoutFocusPriority(t *testing.T) {
	tests := []struct {
		name      string
		weakSpots []string
		focus     string
	}{
		{
			name:      "shoulders win over everything",
			weakSpots: []string{"Wider waist - prioritize core strengthening and fat loss", "Narrow shoulders - focus on shoulder width training"},
			focus:     "Upper body emphasis - shoulders and back",
		},
		{
			name:      "core beats legs",
			weakSpots: []string{"Longer arms relative to legs - focus on leg development", "Wider waist - prioritize core strengthening and fat loss"},
			focus:     "Core strengthening and definition",
		},
		{
			name:      "legs alone",
			weakSpots: []string{"Longer arms relative to legs - focus on leg development"},
			focus:     "Lower body power and size",
		},
		{
			name:      "no weak spots",
			weakSpots: nil,
			focus:     "Balanced full-body development",
		},
		{
			name:      "shoulder asymmetry counts as shoulder work",
			weakSpots: []string{"Shoulder asymmetry detected - focus on unilateral training"},
			focus:     "Upper body emphasis - shoulders and back",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Workout(tt.weakSpots)
			assert.Equal(t, tt.focus, result.Focus)
		})
	}
}

func TestWorkoutWeekShape(t *testing.T) {
	result := Workout(nil)

	assert.Len(t, result.Days, 7)
	assert.Equal(t, "Day 3: Rest", result.Days[2].Day)
	assert.Equal(t, "Day 7: Rest", result.Days[6].Day)

	for _, day := range result.Days {
		assert.NotEmpty(t, day.Exercises, day.Day)
	}
}

func TestWorkoutMatchingIsCaseInsensitive(t *testing.T) {
	result := Workout([]string{"BUILD SHOULDER WIDTH"})
	assert.Equal(t, "Upper body emphasis - shoulders and back", result.Focus)
}
