package entity

type DietPlan struct {
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fats     int      `json:"fats"`
	Meals    []string `json:"meals"`
}

type WorkoutDay struct {
	Day       string   `json:"day"`
	Exercises []string `json:"exercises"`
}

type WorkoutRoutine struct {
	Focus string       `json:"focus"`
	Days  []WorkoutDay `json:"days"`
}
