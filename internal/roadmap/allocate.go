package roadmap

import (
	"math"

	"github.com/jonathan/placement-prep/internal/types"
)

// AllocateWeeks distributes the available week budget across ranked gaps
// proportionally to gap size, with an at-least-one-week floor per skill. The
// returned slice is index-aligned with gaps.
//
// Allocation expresses "fair share", not "what fits": the floor means the sum
// of allocated weeks can exceed the budget when many small gaps each round up
// to one. The weekly plan builder truncates the overflow; the allocator never
// does.
func AllocateWeeks(gaps []types.SkillGap, availableWeeks int) []int {
	if len(gaps) == 0 {
		return nil
	}

	totalGap := 0.0
	for _, g := range gaps {
		totalGap += g.Gap
	}
	if totalGap <= 0 {
		totalGap = 1
	}

	allocation := make([]int, len(gaps))
	for i, g := range gaps {
		weeks := int(math.Round(g.Gap / totalGap * float64(availableWeeks)))
		if weeks < 1 {
			weeks = 1
		}
		allocation[i] = weeks
	}

	return allocation
}
