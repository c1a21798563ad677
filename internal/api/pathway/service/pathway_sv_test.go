package pathwayService

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PhysiqueGolang/internal/entity"
)

func TestLeagueForXP(t *testing.T) {
	assert.Equal(t, "bronze", leagueForXP(0))
	assert.Equal(t, "bronze", leagueForXP(499))
	assert.Equal(t, "silver", leagueForXP(500))
	assert.Equal(t, "silver", leagueForXP(999))
	assert.Equal(t, "gold", leagueForXP(1000))
	assert.Equal(t, "platinum", leagueForXP(2500))
	assert.Equal(t, "diamond", leagueForXP(5000))
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	// First ever activity starts the streak.
	assert.Equal(t, 1, nextStreak(entity.UserProgress{}, now))

	// A second completion on the same day does not double count.
	sameDay := entity.UserProgress{Streak: 4, LastActivity: "2025-06-10"}
	assert.Equal(t, 4, nextStreak(sameDay, now))

	// Activity yesterday extends the streak.
	consecutive := entity.UserProgress{Streak: 4, LastActivity: "2025-06-09"}
	assert.Equal(t, 5, nextStreak(consecutive, now))

	// A gap resets to one.
	stale := entity.UserProgress{Streak: 12, LastActivity: "2025-06-01"}
	assert.Equal(t, 1, nextStreak(stale, now))

	// Activity recorded today with a zero streak still counts as one.
	zeroToday := entity.UserProgress{Streak: 0, LastActivity: "2025-06-10"}
	assert.Equal(t, 1, nextStreak(zeroToday, now))
}

func TestParseGeneratedPathway(t *testing.T) {
	raw := `{"title":"Custom Plan","stages":[{"day":1,"type":"workout","xp":30,"tasks":[]}]}`

	parsed, err := parseGeneratedPathway(raw)
	require.NoError(t, err)
	assert.Equal(t, "Custom Plan", parsed.Title)
	require.Len(t, parsed.Stages, 1)
	assert.Equal(t, 1, parsed.Stages[0].Day)
}

func TestParseGeneratedPathwayFenced(t *testing.T) {
	fenced := "```json\n{\"title\":\"Fenced\",\"stages\":[{\"day\":1}]}\n```"

	parsed, err := parseGeneratedPathway(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Fenced", parsed.Title)

	bare := "```\n{\"title\":\"Bare\",\"stages\":[{\"day\":1}]}\n```"
	parsed, err = parseGeneratedPathway(bare)
	require.NoError(t, err)
	assert.Equal(t, "Bare", parsed.Title)
}

func TestParseGeneratedPathwayRejectsEmpty(t *testing.T) {
	_, err := parseGeneratedPathway(`{"title":"No Stages","stages":[]}`)
	assert.Error(t, err)

	_, err = parseGeneratedPathway("not json at all")
	assert.Error(t, err)
}

func TestPathwayKeys(t *testing.T) {
	assert.Equal(t, "pathway:abc", pathwayKey("abc"))
	assert.Equal(t, "pathway:progress:demo_user_male", progressKey("demo_user_male"))
}
