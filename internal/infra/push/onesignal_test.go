package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sosradar/internal/domain/entity"
	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/domain/service"
	"sosradar/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testPayload() *service.AlertPayload {
	return &service.AlertPayload{
		SessionID:    "sess-1",
		OriginatorID: "user-1",
		Latitude:     48.1486,
		Longitude:    17.1077,
		RadiusMeters: 200,
		Message:      "SOS Alert! Someone nearby needs help!",
		Recipients:   []string{"user-2", "user-3"},
		CreatedAt:    time.Now(),
	}
}

func TestOneSignalGateway_SendAlert(t *testing.T) {
	var captured onesignalRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"notif-123","recipients":2}`))
	}))
	defer server.Close()

	gateway := NewOneSignalGateway(server.URL, "test-app", "test-key", time.Second, testLogger())
	receipt, err := gateway.SendAlert(context.Background(), testPayload())
	require.NoError(t, err)

	assert.Equal(t, "notif-123", receipt.ProviderID)
	assert.Equal(t, 2, receipt.RecipientCount)

	assert.Equal(t, "test-app", captured.AppID)
	assert.Equal(t, []string{"user-2", "user-3"}, captured.IncludeAliases["external_id"])
	assert.Equal(t, "sos", captured.Data["alert_type"])
	assert.Equal(t, "user-1", captured.Data["sender_id"])
	assert.Equal(t, "200", captured.Data["radius_meters"])
	require.Len(t, captured.Buttons, 2)
	assert.Equal(t, "help_coming", captured.Buttons[0].ID)
	assert.Equal(t, "false_alarm", captured.Buttons[1].ID)

	// Headings and contents go out per locale.
	for _, locale := range []string{"en", "sk", "uk"} {
		assert.Contains(t, captured.Headings, locale)
		assert.Contains(t, captured.Contents, locale)
	}
	assert.Equal(t, "SOS Alert! Someone nearby needs help!", captured.Contents["en"])
}

func TestOneSignalGateway_CustomMessageKeepsLocalizedBodies(t *testing.T) {
	var captured onesignalRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"id":"notif-123","recipients":2}`))
	}))
	defer server.Close()

	payload := testPayload()
	payload.Message = "Help, I'm at the station"

	gateway := NewOneSignalGateway(server.URL, "test-app", "test-key", time.Second, testLogger())
	_, err := gateway.SendAlert(context.Background(), payload)
	require.NoError(t, err)

	// The free-form message replaces the English body only; the other
	// locales keep the standard text.
	assert.Equal(t, "Help, I'm at the station", captured.Contents["en"])
	assert.Equal(t, alertBodies["sk"], captured.Contents["sk"])
	assert.Equal(t, alertBodies["uk"], captured.Contents["uk"])
}

func TestOneSignalGateway_MissingRecipientCountDefaultsToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"notif-123"}`))
	}))
	defer server.Close()

	gateway := NewOneSignalGateway(server.URL, "test-app", "test-key", time.Second, testLogger())
	receipt, err := gateway.SendAlert(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Zero(t, receipt.RecipientCount)
}

func TestOneSignalGateway_RejectedByProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":["invalid app_id"]}`))
	}))
	defer server.Close()

	gateway := NewOneSignalGateway(server.URL, "test-app", "test-key", time.Second, testLogger())
	_, err := gateway.SendAlert(context.Background(), testPayload())
	require.Error(t, err)

	var rejected *domainerrors.ProviderRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusBadRequest, rejected.Status())
	assert.Contains(t, rejected.Details(), "invalid app_id")
}

func TestOneSignalGateway_Unreachable(t *testing.T) {
	// A closed server gives a connection error rather than a response.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gateway := NewOneSignalGateway(server.URL, "test-app", "test-key", time.Second, testLogger())
	_, err := gateway.SendAlert(context.Background(), testPayload())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrProviderUnavailable.ErrorCode(), appErr.ErrorCode())
}

func TestOneSignalGateway_SendCancellation(t *testing.T) {
	var captured onesignalRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"id":"notif-456","recipients":2}`))
	}))
	defer server.Close()

	gateway := NewOneSignalGateway(server.URL, "test-app", "test-key", time.Second, testLogger())
	err := gateway.SendCancellation(context.Background(), &entity.AlertSession{
		SessionID:  "sess-1",
		Recipients: []string{"user-2", "user-3"},
	})
	require.NoError(t, err)

	assert.Equal(t, "sos_cancelled", captured.Data["alert_type"])
	assert.Equal(t, "sess-1", captured.Data["original_alert_id"])
	assert.Empty(t, captured.Buttons)
	assert.Equal(t, cancellationTitles, captured.Headings)
	assert.Equal(t, cancellationBodies, captured.Contents)
}

func TestOneSignalGateway_SendCancellationNoRecipients(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	gateway := NewOneSignalGateway(server.URL, "test-app", "test-key", time.Second, testLogger())
	err := gateway.SendCancellation(context.Background(), &entity.AlertSession{SessionID: "sess-1"})
	require.NoError(t, err)
	assert.False(t, called)
}
