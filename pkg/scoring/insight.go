package scoring

var insightsByStrength = map[string]string{
	"shoulders": "Your shoulders are your greatest strength - they provide an excellent foundation for an impressive physique.",
	"v_taper":   "You have a natural V-taper that many strive for - your shoulder-to-waist ratio is exceptional.",
	"chest":     "Your chest development is strong - continue building on this foundation.",
	"core":      "Your core definition is excellent - this gives you a lean, athletic appearance.",
	"symmetry":  "Your physique shows excellent symmetry - balanced development across both sides.",
	"posture":   "Your posture is outstanding - you carry yourself with confidence and alignment.",
	"arms":      "Your arm proportions are well-balanced with your overall frame.",
}

var insightsByGrowth = map[string]string{
	"shoulders": "Focus on shoulder width training to enhance your frame.",
	"v_taper":   "Build wider shoulders and tighten your core to improve your V-taper.",
	"chest":     "Prioritize chest development to add thickness to your upper body.",
	"core":      "Core strengthening and fat loss will enhance overall definition.",
	"symmetry":  "Include unilateral exercises to balance your development.",
	"posture":   "Work on posture with back strengthening and mobility work.",
	"arms":      "Add dedicated arm work to match your torso development.",
}

// keyInsight pairs the strongest category's message with the weakest
// category's recommendation. The overall score is excluded from both
// picks; ties go to the earlier category in the fixed order.
func keyInsight(scores map[string]int) string {
	top, bottom := categoryOrder[0], categoryOrder[0]

	for _, name := range categoryOrder {
		if scores[name] > scores[top] {
			top = name
		}
		if scores[name] < scores[bottom] {
			bottom = name
		}
	}

	return insightsByStrength[top] + " " + insightsByGrowth[bottom]
}
