package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProficiencyCode(t *testing.T) {
	assert.Equal(t, ProficiencyUnderstanding, ProficiencyCode(1))
	assert.Equal(t, ProficiencyApplication, ProficiencyCode(2))
	assert.Equal(t, ProficiencyAnalysis, ProficiencyCode(3))
	assert.Equal(t, ProficiencyEvaluation, ProficiencyCode(4))
	assert.Equal(t, ProficiencyCreation, ProficiencyCode(5))
}

func TestProficiencyCode_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, ProficiencyUnderstanding, ProficiencyCode(0))
	assert.Equal(t, ProficiencyUnderstanding, ProficiencyCode(-3))
	assert.Equal(t, ProficiencyCreation, ProficiencyCode(6))
	assert.Equal(t, ProficiencyCreation, ProficiencyCode(99))
}

func TestProficiencyLabel(t *testing.T) {
	assert.Equal(t, "Conceptual Understanding", ProficiencyLabel(ProficiencyUnderstanding))
	assert.Equal(t, "Independent Creation", ProficiencyLabel(ProficiencyCreation))

	// Unknown codes pass through unchanged.
	assert.Equal(t, "wizardry", ProficiencyLabel("wizardry"))
}

func TestPracticeType(t *testing.T) {
	assert.Equal(t, "Conceptual Study", PracticeType(ProficiencyUnderstanding))
	assert.Equal(t, "Hands-on Coding", PracticeType(ProficiencyApplication))
	assert.Equal(t, "Problem Solving", PracticeType(ProficiencyAnalysis))
	assert.Equal(t, "System Design", PracticeType(ProficiencyEvaluation))
	assert.Equal(t, "Mock Interviews", PracticeType(ProficiencyCreation))

	// Unknown codes fall back to the hands-on default.
	assert.Equal(t, "Hands-on Coding", PracticeType("wizardry"))
}
