package features

import (
	"fmt"
	"strings"

	"PhysiqueGolang/internal/entity"
)

// PathwayPrompt renders the extracted features into the prompt handed
// to the generative model for pathway creation.
func PathwayPrompt(f entity.BodyFeatures, profile entity.UserProfile, commitmentDays int) string {
	age := 25
	if profile.Age != nil {
		age = *profile.Age
	}

	height := 175.0
	if profile.HeightCm != nil {
		height = *profile.HeightCm
	}

	var b strings.Builder

	b.WriteString("Based on the following body analysis, create a personalized fitness pathway:\n\n")
	fmt.Fprintf(&b, "USER PROFILE:\n- Gender: %s\n- Age: %d\n- Height: %.0fcm\n- Commitment: %d days\n\n",
		profile.Gender, age, height, commitmentDays)
	fmt.Fprintf(&b, "BODY ANALYSIS SCORES:\n- Overall Score: %d/100\n- V-Taper Score: %d/100\n- Symmetry Score: %d/100\n- Posture Score: %d/100\n\n",
		f.Scores["overall"], f.Scores["vtaper"], f.Scores["symmetry"], f.Scores["posture"])
	fmt.Fprintf(&b, "KEY RATIOS:\n- Shoulder-to-Hip Ratio: %.3f\n- Symmetry: %.3f\n\n",
		f.Ratios["shoulder_hip_ratio"], f.Ratios["symmetry"])

	b.WriteString("INSIGHTS:\n")
	for _, insight := range f.Insights {
		b.WriteString("- " + insight + "\n")
	}

	b.WriteString("\nFOCUS AREAS:\n")
	for _, area := range f.FocusAreas {
		fmt.Fprintf(&b, "- %s (%s priority): %s\n", strings.ToUpper(area.Area), area.Priority, area.Recommendation)
	}

	fmt.Fprintf(&b, "\nPlease generate a personalized %d-day pathway with daily stages. Each stage should include:\n", commitmentDays)
	b.WriteString("1. A workout or exercise focus\n")
	b.WriteString("2. A nutrition tip\n")
	b.WriteString("3. A mindset/habit focus\n")
	b.WriteString("4. XP points (10-50 based on difficulty)\n\n")
	b.WriteString("Format as JSON array of daily stages.\n")

	return b.String()
}
