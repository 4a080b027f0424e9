package ranker

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseIDs(recs []domain.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Row.CourseID
	}
	return out
}

func TestByCourseScore_StableTies(t *testing.T) {
	rows := []domain.RecommendationRow{
		row("A", 1, 0, 100),
		row("B", 3, 0, 100),
		row("C", 1, 0, 100),
		row("D", 3, 0, 100),
	}

	got := ByCourseScore(rows, 3)

	assert.Equal(t, []string{"B", "D", "A"}, courseIDs(got))
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 3, got[2].Rank)
	assert.Equal(t, domain.VariantCourseScore, got[0].Variant)
	assert.Equal(t, "A", rows[0].CourseID, "input order untouched")
}

func TestByFinalScore_Deterministic(t *testing.T) {
	rows := Score([]domain.RecommendationRow{
		row("A", 2, 1, 300),
		row("B", 2, 1, 300),
		row("C", 4, 0, 100),
		row("D", 0, 2, 200),
	}, DefaultWeights())

	first := ByFinalScore(rows, 4)
	second := ByFinalScore(rows, 4)
	assert.Equal(t, first, second)

	ids := courseIDs(first)
	assert.Less(t, indexOf(ids, "A"), indexOf(ids, "B"), "equal scores keep input order")
	for i := 1; i < len(first); i++ {
		assert.GreaterOrEqual(t, first[i-1].Row.FinalScore, first[i].Row.FinalScore)
	}
}

func TestRank_Caps(t *testing.T) {
	rows := make([]domain.RecommendationRow, 10)
	for i := range rows {
		rows[i] = row(fmt.Sprintf("C%02d", i), i, float64(i%3), 100*(i%4+1))
	}
	rows = Score(rows, DefaultWeights())

	byCourse, byFinal := Rank(rows, 7)
	assert.Len(t, byCourse, 5)
	assert.Len(t, byFinal, 7)

	byCourse, byFinal = Rank(rows, 5)
	assert.Len(t, byCourse, 5)
	assert.Len(t, byFinal, 5)
}

func TestRank_FewerRowsThanCap(t *testing.T) {
	byCourse, byFinal := Rank([]domain.RecommendationRow{row("A", 1, 0, 100)}, 7)
	require.Len(t, byCourse, 1)
	require.Len(t, byFinal, 1)
	assert.Equal(t, domain.VariantFinalScore, byFinal[0].Variant)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
