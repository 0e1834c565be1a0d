package roadmap

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-prep/internal/types"
)

func req(name string, level, weight int) types.SkillRequirement {
	return types.SkillRequirement{
		ID:              uuid.New(),
		Name:            name,
		Code:            name,
		RequiredLevel:   level,
		ProficiencyCode: types.ProficiencyCode(level),
		Weight:          weight,
	}
}

func TestComputeGaps_BasicGap(t *testing.T) {
	r := req("Data Structures", 5, 5)
	ratings := types.SelfRatings{r.ID: 2}

	gaps := ComputeGaps([]types.SkillRequirement{r}, ratings)
	require.Len(t, gaps, 1)

	gap := gaps[0]
	assert.Equal(t, r.ID, gap.SkillID)
	assert.Equal(t, 2, gap.SelfRating)
	assert.InDelta(t, 1.0, gap.NormalizedRating, 1e-9)
	assert.InDelta(t, 4.0, gap.Gap, 1e-9)
	assert.InDelta(t, 80.0, gap.GapPercent, 1e-9)
	assert.Equal(t, 40, gap.EstimatedHours)
}

func TestComputeGaps_ProficientSkillsExcluded(t *testing.T) {
	hard := req("System Design", 5, 5)
	easy := req("Git", 1, 1)
	ratings := types.SelfRatings{hard.ID: 10, easy.ID: 10}

	gaps := ComputeGaps([]types.SkillRequirement{hard, easy}, ratings)
	assert.Empty(t, gaps)
}

func TestComputeGaps_ExactlyMetSkillExcluded(t *testing.T) {
	// Rating 6 normalizes to 3.0, exactly the required level: no gap.
	r := req("SQL", 3, 3)
	gaps := ComputeGaps([]types.SkillRequirement{r}, types.SelfRatings{r.ID: 6})
	assert.Empty(t, gaps)
}

func TestComputeGaps_MissingRatingCountsAsZero(t *testing.T) {
	r := req("Kubernetes", 3, 4)

	gaps := ComputeGaps([]types.SkillRequirement{r}, types.SelfRatings{})
	require.Len(t, gaps, 1)

	assert.Equal(t, 0, gaps[0].SelfRating)
	assert.InDelta(t, 3.0, gaps[0].Gap, 1e-9)
	assert.InDelta(t, 60.0, gaps[0].GapPercent, 1e-9)
	assert.Equal(t, 30, gaps[0].EstimatedHours)
}

func TestComputeGaps_FractionalGapRoundsHoursUp(t *testing.T) {
	// Rating 3 normalizes to 1.5 against level 4: gap 2.5, hours ceil(25)=25.
	r := req("Algorithms", 4, 4)
	gaps := ComputeGaps([]types.SkillRequirement{r}, types.SelfRatings{r.ID: 3})
	require.Len(t, gaps, 1)

	assert.InDelta(t, 2.5, gaps[0].Gap, 1e-9)
	assert.Equal(t, 25, gaps[0].EstimatedHours)
}

func TestComputeGaps_EmptyRequirements(t *testing.T) {
	assert.Empty(t, ComputeGaps(nil, types.SelfRatings{}))
}

func TestComputeGaps_DoesNotMutateInputs(t *testing.T) {
	r := req("Go", 4, 4)
	requirements := []types.SkillRequirement{r}
	ratings := types.SelfRatings{r.ID: 2}

	_ = ComputeGaps(requirements, ratings)

	assert.Equal(t, r, requirements[0])
	assert.Equal(t, 2, ratings[r.ID])
}
