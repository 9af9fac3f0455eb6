package dispatch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func agencyAt(lat, lng float64) *models.Agency {
	return &models.Agency{
		ID:        uuid.New(),
		Latitude:  ptr(lat),
		Longitude: ptr(lng),
	}
}

func TestSelectClosest_PicksNearestCandidate(t *testing.T) {
	// Сценарий из Мумбаи: второй кандидат ближе к точке сообщения
	far := agencyAt(19.10, 72.90)
	near := agencyAt(19.05, 72.85)

	selected := SelectClosest(19.0760, 72.8777, []*models.Agency{far, near})

	require.NotNil(t, selected)
	assert.Equal(t, near.ID, selected.ID)
}

func TestSelectClosest_EmptyCandidatesReturnsNil(t *testing.T) {
	selected := SelectClosest(19.0760, 72.8777, nil)

	assert.Nil(t, selected)
}

func TestSelectClosest_ExactTieFirstEncounteredWins(t *testing.T) {
	first := agencyAt(19.05, 72.85)
	second := agencyAt(19.05, 72.85)

	selected := SelectClosest(19.0760, 72.8777, []*models.Agency{first, second})

	require.NotNil(t, selected)
	assert.Equal(t, first.ID, selected.ID)
}

func TestSelectClosest_UnknownCoordinatesLoseToKnown(t *testing.T) {
	locationless := &models.Agency{ID: uuid.New()}
	located := agencyAt(45.0, 45.0) // Далеко, но известно

	selected := SelectClosest(19.0760, 72.8777, []*models.Agency{locationless, located})

	require.NotNil(t, selected)
	assert.Equal(t, located.ID, selected.ID)
}

func TestSelectClosest_AllUnknownReturnsFirst(t *testing.T) {
	first := &models.Agency{ID: uuid.New()}
	second := &models.Agency{ID: uuid.New(), Latitude: ptr(19.0)} // Долгота неизвестна

	selected := SelectClosest(19.0760, 72.8777, []*models.Agency{first, second})

	require.NotNil(t, selected)
	assert.Equal(t, first.ID, selected.ID)
}

func TestSelectClosest_OrderIrrelevantWithDistinctDistances(t *testing.T) {
	near := agencyAt(19.05, 72.85)
	far := agencyAt(19.10, 72.90)

	a := SelectClosest(19.0760, 72.8777, []*models.Agency{near, far})
	b := SelectClosest(19.0760, 72.8777, []*models.Agency{far, near})

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, near.ID, a.ID)
	assert.Equal(t, near.ID, b.ID)
}
