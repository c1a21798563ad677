package plan

import (
	"fmt"
	"time"

	"PhysiqueGolang/internal/entity"
)

// GeneratePathway builds the rule-based daily improvement pathway.
// Every seventh day is recovery, every fourteenth an assessment, and
// difficulty steps up through quartiles of the commitment period. The
// output is fully determined by its inputs.
func GeneratePathway(id, userID string, now time.Time, f entity.BodyFeatures, profile entity.UserProfile, commitmentDays int) entity.Pathway {
	pathway := entity.Pathway{
		ID:             id,
		UserID:         userID,
		CreatedAt:      now,
		CommitmentDays: commitmentDays,
		Title:          pathwayTitle(f),
		Description:    pathwayDescription(f),
		Milestones:     milestones(commitmentDays),
		FocusAreas:     f.FocusAreas,
	}

	templates := workoutTemplates(f.FocusAreas)

	for day := 1; day <= commitmentDays; day++ {
		stage := buildStage(day, commitmentDays, templates)
		pathway.TotalXP += stage.XP
		pathway.Stages = append(pathway.Stages, stage)
	}

	return pathway
}

func pathwayTitle(f entity.BodyFeatures) string {
	overall := f.Scores["overall"]

	var titles []string
	switch {
	case overall >= 80:
		titles = []string{"Elite Physique Refinement", "Advanced Aesthetics Journey", "Peak Performance Path"}
	case overall >= 60:
		titles = []string{"Body Transformation Journey", "Physique Evolution Path", "Athletic Build Program"}
	default:
		titles = []string{"Foundation Builder", "Transformation Starter", "New You Journey"}
	}

	return titles[overall%len(titles)]
}

func pathwayDescription(f entity.BodyFeatures) string {
	for _, area := range f.FocusAreas {
		if area.Priority == "high" {
			return fmt.Sprintf("A personalized journey focusing on %s development, with balanced attention to overall physique improvement and healthy habits.", area.Area)
		}
	}

	return "A comprehensive program designed to enhance your physique through targeted workouts, nutrition guidance, and mindset development."
}

func buildStage(day, totalDays int, templates []workoutTemplate) entity.PathwayStage {
	stage := entity.PathwayStage{
		Day:        day,
		Difficulty: difficultyForDay(day, totalDays),
	}

	switch {
	case day%14 == 0:
		stage.Type = "assessment"
		stage.Title = fmt.Sprintf("Progress Check #%d", day/14)
		stage.XP = 50
	case day%7 == 0:
		stage.Type = "recovery"
		stage.Title = "Active Recovery Day"
		stage.XP = 15
	default:
		template := templates[(day-1)%len(templates)]
		stage.Type = "workout"
		stage.Title = template.Name
		stage.XP = template.XP
	}

	stage.Tasks = stageTasks(stage.Type, day, templates)

	return stage
}

func difficultyForDay(day, totalDays int) string {
	progress := float64(day) / float64(totalDays)

	switch {
	case progress < 0.25:
		return "beginner"
	case progress < 0.5:
		return "intermediate"
	case progress < 0.75:
		return "advanced"
	default:
		return "elite"
	}
}

func stageTasks(stageType string, day int, templates []workoutTemplate) []entity.PathwayTask {
	switch stageType {
	case "workout":
		template := templates[(day-1)%len(templates)]
		mindset := mindsetTasks[(day-1)%len(mindsetTasks)]

		return []entity.PathwayTask{
			{
				ID:              fmt.Sprintf("task_%d_workout", day),
				Type:            "workout",
				Title:           template.Name,
				Description:     template.Description,
				Exercises:       template.Exercises,
				DurationMinutes: template.Duration,
				XP:              20,
			},
			{
				ID:          fmt.Sprintf("task_%d_nutrition", day),
				Type:        "nutrition",
				Title:       "Log Your Meals",
				Description: nutritionTips[(day-1)%len(nutritionTips)],
				XP:          5,
			},
			{
				ID:          fmt.Sprintf("task_%d_mindset", day),
				Type:        "mindset",
				Title:       mindset.title,
				Description: mindset.description,
				XP:          5,
			},
		}
	case "recovery":
		return []entity.PathwayTask{
			{
				ID:              fmt.Sprintf("task_%d_stretch", day),
				Type:            "stretch",
				Title:           "Mobility Routine",
				Description:     "15-minute stretching and mobility work",
				DurationMinutes: 15,
				XP:              10,
			},
			{
				ID:          fmt.Sprintf("task_%d_reflect", day),
				Type:        "reflection",
				Title:       "Weekly Reflection",
				Description: "Review your progress and set intentions for next week",
				XP:          5,
			},
		}
	case "assessment":
		return []entity.PathwayTask{
			{
				ID:          fmt.Sprintf("task_%d_photos", day),
				Type:        "photos",
				Title:       "Progress Photos",
				Description: "Take new front and side photos to track changes",
				XP:          30,
			},
			{
				ID:          fmt.Sprintf("task_%d_measurements", day),
				Type:        "measurements",
				Title:       "Body Measurements",
				Description: "Record weight and key measurements",
				XP:          10,
			},
			{
				ID:          fmt.Sprintf("task_%d_review", day),
				Type:        "review",
				Title:       "Progress Analysis",
				Description: "Review your transformation with AI insights",
				XP:          10,
			},
		}
	default:
		return nil
	}
}

func milestones(commitmentDays int) []entity.PathwayMilestone {
	ms := []entity.PathwayMilestone{
		{ID: "first_workout", Title: "First Step", Description: "Complete your first workout", Day: 1, XPBonus: 50},
		{ID: "week_1", Title: "Week 1 Complete", Description: "Finish your first week", Day: 7, XPBonus: 100},
	}

	if commitmentDays >= 14 {
		ms = append(ms, entity.PathwayMilestone{ID: "first_assessment", Title: "First Progress Check", Description: "Complete your first progress assessment", Day: 14, XPBonus: 150})
	}
	if commitmentDays >= 30 {
		ms = append(ms, entity.PathwayMilestone{ID: "month_1", Title: "Month 1 Champion", Description: "Complete 30 days of transformation", Day: 30, XPBonus: 300})
	}
	if commitmentDays >= 90 {
		ms = append(ms, entity.PathwayMilestone{ID: "quarter", Title: "Quarter Master", Description: "Complete 90 days - a new habit is formed!", Day: 90, XPBonus: 500})
	}
	if commitmentDays >= 365 {
		ms = append(ms, entity.PathwayMilestone{ID: "year", Title: "Year of Transformation", Description: "Complete a full year of dedication", Day: 365, XPBonus: 2000})
	}

	return ms
}
