package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/service"
	"sosradar/internal/infra/persistence/memory"
	"sosradar/internal/usecase"
	"sosradar/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPushHandlerFixture(t *testing.T) (*PushHandler, usecase.SessionTracker) {
	t.Helper()

	tracker := impl.NewSessionTracker(memory.NewSessionRepository())
	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracker:        tracker,
	}

	return handler, tracker
}

func trackedSession(t *testing.T, tracker usecase.SessionTracker) *entity.AlertSession {
	t.Helper()

	now := time.Now()
	session := &entity.AlertSession{
		SessionID:    entity.NewSessionID("origin", now),
		OriginatorID: "origin",
		State:        entity.SessionStateActive,
		Latitude:     48.1486,
		Longitude:    17.1077,
		RadiusMeters: 200,
		CreatedAt:    now,
	}
	require.NoError(t, tracker.Track(context.Background(), session))

	return session
}

func pushEnvelope(t *testing.T, event *service.AlertEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":        base64.StdEncoding.EncodeToString(data),
			"attributes":  map[string]string{"request_id": "req-1"},
			"messageId":   "msg-1",
			"publishTime": time.Now().UTC().Format(time.RFC3339),
		},
		"subscription": "projects/local/subscriptions/alert-sub",
	}
	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(raw)
}

func postPush(t *testing.T, handler *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))

	return rec
}

func TestPushHandler_ResponseEventApplied(t *testing.T) {
	handler, tracker := newPushHandlerFixture(t)
	session := trackedSession(t, tracker)

	rec := postPush(t, handler, pushEnvelope(t, &service.AlertEvent{
		EventType:   service.EventAlertResponse,
		SessionID:   session.SessionID,
		ResponderID: "near-1",
		ActionID:    "help_coming",
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := tracker.Session(context.Background(), session.SessionID)
	require.NoError(t, err)
	require.Len(t, stored.Responses, 1)
	assert.Equal(t, entity.ResponseHelpComing, stored.Responses[0].Action)
}

func TestPushHandler_ResponseEventReplayIdempotent(t *testing.T) {
	handler, tracker := newPushHandlerFixture(t)
	session := trackedSession(t, tracker)

	body := pushEnvelope(t, &service.AlertEvent{
		EventType:   service.EventAlertResponse,
		SessionID:   session.SessionID,
		ResponderID: "near-1",
		ActionID:    "false_alarm",
	})
	postPush(t, handler, body)
	postPush(t, handler, body)

	stored, err := tracker.Session(context.Background(), session.SessionID)
	require.NoError(t, err)
	require.Len(t, stored.Responses, 1)
	assert.Equal(t, entity.ResponseFalseAlarm, stored.Responses[0].Action)
}

func TestPushHandler_SessionGoneAcknowledged(t *testing.T) {
	handler, _ := newPushHandlerFixture(t)

	rec := postPush(t, handler, pushEnvelope(t, &service.AlertEvent{
		EventType:   service.EventAlertResponse,
		SessionID:   "missing",
		ResponderID: "near-1",
		ActionID:    "help_coming",
	}))

	// A retry cannot recover a deleted session, so the message is dropped.
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_UnknownActionDropped(t *testing.T) {
	handler, tracker := newPushHandlerFixture(t)
	session := trackedSession(t, tracker)

	rec := postPush(t, handler, pushEnvelope(t, &service.AlertEvent{
		EventType:   service.EventAlertResponse,
		SessionID:   session.SessionID,
		ResponderID: "near-1",
		ActionID:    "shrug",
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := tracker.Session(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, stored.Responses)
}

func TestPushHandler_LifecycleEventsAcknowledged(t *testing.T) {
	handler, _ := newPushHandlerFixture(t)

	for _, eventType := range []string{service.EventAlertTriggered, service.EventAlertCancelled, "mystery"} {
		rec := postPush(t, handler, pushEnvelope(t, &service.AlertEvent{
			EventType: eventType,
			SessionID: "session-1",
		}))
		assert.Equal(t, http.StatusOK, rec.Code, eventType)
	}
}

func TestPushHandler_BadBase64Rejected(t *testing.T) {
	handler, _ := newPushHandlerFixture(t)

	rec := postPush(t, handler, `{"message":{"data":"not-base64!!","messageId":"msg-1"},"subscription":"s"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
