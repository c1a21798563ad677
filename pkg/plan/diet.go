package plan

import (
	"math"

	"PhysiqueGolang/internal/entity"
)

const (
	baseCalories = 2000

	proteinShare = 0.3
	carbShare    = 0.4
	fatShare     = 0.3

	caloriesPerGramProtein = 4
	caloriesPerGramCarb    = 4
	caloriesPerGramFat     = 9
)

// Diet builds the nutrition targets from a body fat estimate. The meal
// list is a fixed template; only the calorie and macro numbers are
// personalized.
func Diet(bodyFatEstimate float64) entity.DietPlan {
	calories := baseCalories
	switch {
	case bodyFatEstimate > 18:
		calories -= 300
	case bodyFatEstimate < 12:
		calories += 300
	}

	return entity.DietPlan{
		Calories: calories,
		Protein:  grams(float64(calories)*proteinShare, caloriesPerGramProtein),
		Carbs:    grams(float64(calories)*carbShare, caloriesPerGramCarb),
		Fats:     grams(float64(calories)*fatShare, caloriesPerGramFat),
		Meals: []string{
			"Breakfast: Oatmeal with berries, Greek yogurt, and almonds",
			"Mid-morning: Protein shake with banana",
			"Lunch: Grilled chicken breast, quinoa, and steamed vegetables",
			"Afternoon snack: Apple with peanut butter",
			"Dinner: Salmon, sweet potato, and mixed greens salad",
			"Evening: Casein protein or cottage cheese",
		},
	}
}

// grams rounds to the nearest whole gram with exact halves rounding
// down.
func grams(calories, perGram float64) int {
	return int(math.Ceil(calories/perGram - 0.5))
}
