package plan

import (
	"strings"

	"PhysiqueGolang/internal/entity"
)

// Workout picks a weekly focus from the growth descriptions and pairs
// it with the fixed 7-day template. Focus priority runs shoulders,
// then core, then legs, with a balanced default.
func Workout(weakSpots []string) entity.WorkoutRoutine {
	focus := "Balanced full-body development"

	switch {
	case anyContains(weakSpots, "shoulder"):
		focus = "Upper body emphasis - shoulders and back"
	case anyContains(weakSpots, "waist", "core"):
		focus = "Core strengthening and definition"
	case anyContains(weakSpots, "leg"):
		focus = "Lower body power and size"
	}

	return entity.WorkoutRoutine{Focus: focus, Days: weeklyTemplate()}
}

func anyContains(spots []string, keywords ...string) bool {
	for _, spot := range spots {
		lowered := strings.ToLower(spot)
		for _, keyword := range keywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}

	return false
}

func weeklyTemplate() []entity.WorkoutDay {
	return []entity.WorkoutDay{
		{
			Day: "Day 1: Upper Body",
			Exercises: []string{
				"Barbell Bench Press: 4 sets x 6-8 reps",
				"Overhead Press: 4 sets x 6-8 reps",
				"Pull-ups: 4 sets x 8-10 reps",
				"Barbell Rows: 4 sets x 8-10 reps",
				"Lateral Raises: 3 sets x 12-15 reps",
				"Tricep Dips: 3 sets x 10-12 reps",
			},
		},
		{
			Day: "Day 2: Lower Body",
			Exercises: []string{
				"Barbell Squats: 4 sets x 6-8 reps",
				"Romanian Deadlifts: 4 sets x 8-10 reps",
				"Leg Press: 4 sets x 10-12 reps",
				"Walking Lunges: 3 sets x 12 reps per leg",
				"Leg Curls: 3 sets x 12-15 reps",
				"Calf Raises: 4 sets x 15-20 reps",
			},
		},
		{
			Day:       "Day 3: Rest",
			Exercises: []string{"Active recovery: Light stretching or yoga"},
		},
		{
			Day: "Day 4: Push Focus",
			Exercises: []string{
				"Incline Dumbbell Press: 4 sets x 8-10 reps",
				"Dumbbell Shoulder Press: 4 sets x 8-10 reps",
				"Cable Flyes: 3 sets x 12-15 reps",
				"Side Lateral Raises: 3 sets x 15 reps",
				"Overhead Tricep Extension: 3 sets x 12 reps",
				"Push-ups: 3 sets to failure",
			},
		},
		{
			Day: "Day 5: Pull Focus",
			Exercises: []string{
				"Deadlifts: 4 sets x 5-6 reps",
				"Wide-Grip Pull-ups: 4 sets x 8-10 reps",
				"T-Bar Rows: 4 sets x 8-10 reps",
				"Face Pulls: 3 sets x 15 reps",
				"Barbell Curls: 3 sets x 10-12 reps",
				"Hammer Curls: 3 sets x 12 reps",
			},
		},
		{
			Day: "Day 6: Legs & Core",
			Exercises: []string{
				"Front Squats: 4 sets x 8-10 reps",
				"Bulgarian Split Squats: 3 sets x 10 reps per leg",
				"Romanian Deadlifts: 3 sets x 10 reps",
				"Plank: 3 sets x 60 seconds",
				"Russian Twists: 3 sets x 20 reps",
				"Leg Raises: 3 sets x 15 reps",
			},
		},
		{
			Day:       "Day 7: Rest",
			Exercises: []string{"Complete rest or light activity"},
		},
	}
}
