package entity

import "time"

type PathwayTask struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Exercises       []PathwayExercise `json:"exercises,omitempty"`
	DurationMinutes int               `json:"duration_minutes,omitempty"`
	XP              int               `json:"xp"`
	Completed       bool              `json:"completed"`
}

type PathwayExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

type PathwayStage struct {
	Day         int           `json:"day"`
	Title       string        `json:"title"`
	Type        string        `json:"type"`
	Difficulty  string        `json:"difficulty"`
	XP          int           `json:"xp"`
	Completed   bool          `json:"completed"`
	CompletedAt *time.Time    `json:"completed_at"`
	Tasks       []PathwayTask `json:"tasks"`
}

type PathwayMilestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         int    `json:"day"`
	XPBonus     int    `json:"xp_bonus"`
	Achieved    bool   `json:"achieved"`
}

type Pathway struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	CreatedAt      time.Time          `json:"created_at"`
	CommitmentDays int                `json:"commitment_days"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	TotalXP        int                `json:"total_xp"`
	Stages         []PathwayStage     `json:"stages"`
	Milestones     []PathwayMilestone `json:"milestones"`
	FocusAreas     []FocusArea        `json:"focus_areas"`
}

type UserProgress struct {
	CurrentPathway string `json:"current_pathway,omitempty"`
	CurrentDay     int    `json:"current_day"`
	Streak         int    `json:"streak"`
	LastActivity   string `json:"last_activity,omitempty"`
	TotalXP        int    `json:"total_xp"`
	League         string `json:"league"`
}
