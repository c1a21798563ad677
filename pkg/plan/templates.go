package plan

import "PhysiqueGolang/internal/entity"

type workoutTemplate struct {
	Name        string
	Description string
	Duration    int
	XP          int
	Exercises   []entity.PathwayExercise
}

// workoutTemplates assembles the weekly rotation: push/pull/legs as
// the base, posture work and a shoulder specialization day added when
// the focus areas call for them, and HIIT for conditioning.
func workoutTemplates(focusAreas []entity.FocusArea) []workoutTemplate {
	var hasShoulderFocus, hasPostureFocus bool
	for _, area := range focusAreas {
		switch area.Area {
		case "shoulders", "lats":
			hasShoulderFocus = true
		case "posture":
			hasPostureFocus = true
		}
	}

	templates := []workoutTemplate{
		{
			Name:        "Push Day",
			Description: "Chest, shoulders, and triceps focus",
			Duration:    45,
			XP:          30,
			Exercises: []entity.PathwayExercise{
				{Name: "Bench Press", Sets: 4, Reps: "8-10"},
				{Name: "Overhead Press", Sets: 3, Reps: "8-10"},
				{Name: "Incline Dumbbell Press", Sets: 3, Reps: "10-12"},
				{Name: "Lateral Raises", Sets: 3, Reps: "12-15"},
				{Name: "Tricep Pushdowns", Sets: 3, Reps: "12-15"},
			},
		},
		{
			Name:        "Pull Day",
			Description: "Back and biceps focus",
			Duration:    45,
			XP:          30,
			Exercises: []entity.PathwayExercise{
				{Name: "Pull-ups/Lat Pulldown", Sets: 4, Reps: "8-10"},
				{Name: "Barbell Rows", Sets: 4, Reps: "8-10"},
				{Name: "Face Pulls", Sets: 3, Reps: "15-20"},
				{Name: "Dumbbell Curls", Sets: 3, Reps: "10-12"},
				{Name: "Rear Delt Flyes", Sets: 3, Reps: "12-15"},
			},
		},
		{
			Name:        "Leg Day",
			Description: "Quadriceps, hamstrings, and glutes",
			Duration:    50,
			XP:          35,
			Exercises: []entity.PathwayExercise{
				{Name: "Squats", Sets: 4, Reps: "8-10"},
				{Name: "Romanian Deadlifts", Sets: 3, Reps: "10-12"},
				{Name: "Leg Press", Sets: 3, Reps: "10-12"},
				{Name: "Walking Lunges", Sets: 3, Reps: "12 each"},
				{Name: "Calf Raises", Sets: 4, Reps: "15-20"},
			},
		},
	}

	if hasPostureFocus {
		templates = append(templates, workoutTemplate{
			Name:        "Core & Posture",
			Description: "Core strengthening and postural correction",
			Duration:    30,
			XP:          25,
			Exercises: []entity.PathwayExercise{
				{Name: "Planks", Sets: 3, Reps: "45-60 sec"},
				{Name: "Dead Bugs", Sets: 3, Reps: "10 each side"},
				{Name: "Bird Dogs", Sets: 3, Reps: "10 each side"},
				{Name: "Back Extensions", Sets: 3, Reps: "12-15"},
				{Name: "Pallof Press", Sets: 3, Reps: "10 each side"},
			},
		})
	}

	templates = append(templates, workoutTemplate{
		Name:        "HIIT Conditioning",
		Description: "High-intensity interval training for fat loss",
		Duration:    25,
		XP:          30,
		Exercises: []entity.PathwayExercise{
			{Name: "Burpees", Sets: 4, Reps: "30 sec on/30 sec off"},
			{Name: "Mountain Climbers", Sets: 4, Reps: "30 sec on/30 sec off"},
			{Name: "Jump Squats", Sets: 4, Reps: "30 sec on/30 sec off"},
			{Name: "High Knees", Sets: 4, Reps: "30 sec on/30 sec off"},
		},
	})

	if hasShoulderFocus {
		templates = append(templates, workoutTemplate{
			Name:        "Shoulder Specialization",
			Description: "Extra focus on building wider shoulders",
			Duration:    40,
			XP:          30,
			Exercises: []entity.PathwayExercise{
				{Name: "Overhead Press", Sets: 4, Reps: "6-8"},
				{Name: "Lateral Raises", Sets: 5, Reps: "12-15"},
				{Name: "Cable Lateral Raises", Sets: 3, Reps: "12-15"},
				{Name: "Face Pulls", Sets: 4, Reps: "15-20"},
				{Name: "Upright Rows", Sets: 3, Reps: "10-12"},
			},
		})
	}

	return templates
}

var nutritionTips = []string{
	"Focus on protein: Aim for 0.8-1g per pound of body weight",
	"Stay hydrated: Drink at least 8 glasses of water today",
	"Eat the rainbow: Include colorful vegetables in your meals",
	"Time your carbs: Prioritize complex carbs around workouts",
	"Healthy fats matter: Include avocado, nuts, or olive oil",
	"Meal prep tip: Prepare tomorrow's meals today",
	"Mindful eating: Put away your phone during meals",
	"Protein timing: Have protein within 2 hours post-workout",
	"Fiber focus: Aim for 25-35g of fiber today",
	"Limit processed foods: Choose whole foods when possible",
}

var mindsetTasks = []struct {
	title       string
	description string
}{
	{"Morning Visualization", "Spend 5 minutes visualizing your ideal physique"},
	{"Gratitude Journal", "Write 3 things you appreciate about your body"},
	{"Progress Photo", "Take a quick mirror selfie to track changes"},
	{"Sleep Optimization", "Get 7-8 hours of quality sleep tonight"},
	{"Stress Management", "10 minutes of meditation or deep breathing"},
	{"Goal Review", "Review your transformation goals"},
	{"Positive Affirmations", "Repeat 3 positive statements about your journey"},
}
