package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sosradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishAlertEvent(t *testing.T) {
	var captured PubSubPushMessage
	var requestIDHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := &service.AlertEvent{
		RequestID:   "req-1",
		EventType:   service.EventAlertResponse,
		SessionID:   "session-1",
		ResponderID: "near-1",
		ActionID:    "help_coming",
	}
	require.NoError(t, publisher.PublishAlertEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, "session-1", captured.Message.MessageID)
	assert.Equal(t, service.EventAlertResponse, captured.Message.Attributes["event_type"])
	assert.Equal(t, "req-1", captured.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(captured.Message.Data)
	require.NoError(t, err)

	var decoded service.AlertEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "near-1", decoded.ResponderID)
	assert.Equal(t, "help_coming", decoded.ActionID)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishAlertEvent(context.Background(), &service.AlertEvent{
		EventType: service.EventAlertTriggered,
		SessionID: "session-1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}
