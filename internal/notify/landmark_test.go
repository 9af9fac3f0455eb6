package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLandmark_TokenAfterNear(t *testing.T) {
	assert.Equal(t, "near Central", Landmark("fire near Central Park"))
}

func TestLandmark_LastOccurrenceWins(t *testing.T) {
	assert.Equal(t, "near hospital", Landmark("near school, flooding near hospital entrance"))
}

func TestLandmark_NoNearFallsBack(t *testing.T) {
	assert.Equal(t, "at the reported coordinates", Landmark("house on fire"))
}

func TestLandmark_NearAtEndFallsBack(t *testing.T) {
	assert.Equal(t, "at the reported coordinates", Landmark("smoke somewhere near"))
}

func TestLandmark_EmptyDescriptionFallsBack(t *testing.T) {
	assert.Equal(t, "at the reported coordinates", Landmark(""))
}
