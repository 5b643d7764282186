package postgres

import (
	"testing"
	"time"

	"sosradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMapping_RoundTrip(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cancelledAt := createdAt.Add(5 * time.Minute)

	session := &entity.AlertSession{
		SessionID:    "user-1-1756555200000000000",
		OriginatorID: "user-1",
		State:        entity.SessionStateCancelled,
		Latitude:     48.1486,
		Longitude:    17.1077,
		RadiusMeters: 200,
		Message:      "SOS Alert! Someone nearby needs help!",
		Recipients:   []string{"ext-2", "ext-3"},
		Responses: []entity.ResponderAction{
			{
				SessionID:   "user-1-1756555200000000000",
				ResponderID: "user-2",
				Action:      entity.ResponseHelpComing,
				RecordedAt:  createdAt.Add(time.Minute),
			},
		},
		RecipientCount: 2,
		CreatedAt:      createdAt,
		CancelledAt:    &cancelledAt,
	}

	sessionM, err := fromSessionDomain(session)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", sessionM.State)
	assert.JSONEq(t, `["ext-2","ext-3"]`, string(sessionM.Recipients))

	restored, err := toSessionDomain(sessionM)
	require.NoError(t, err)
	assert.Equal(t, session, restored)
}

func TestSessionMapping_EmptyCollections(t *testing.T) {
	t.Parallel()

	session := &entity.AlertSession{
		SessionID:    "user-1-1",
		OriginatorID: "user-1",
		State:        entity.SessionStateActive,
		CreatedAt:    time.Now().UTC(),
	}

	sessionM, err := fromSessionDomain(session)
	require.NoError(t, err)

	restored, err := toSessionDomain(sessionM)
	require.NoError(t, err)
	assert.True(t, restored.IsActive())
	assert.Empty(t, restored.Recipients)
	assert.Empty(t, restored.Responses)
}

func TestLocationMapping_PreservesCallerTimestamp(t *testing.T) {
	t.Parallel()

	updatedAt := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	location := &entity.UserLocation{
		UserID:     "user-1",
		ExternalID: "ext-1",
		Latitude:   48.1486,
		Longitude:  17.1077,
		DeviceType: "android",
		UpdatedAt:  updatedAt,
	}

	locationM := fromLocationDomain(location)
	assert.Equal(t, updatedAt, locationM.UpdatedAt)

	assert.Equal(t, location, toLocationDomain(locationM))
}
