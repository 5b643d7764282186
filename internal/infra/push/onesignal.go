// Package push implements the notification gateway against concrete push
// providers. Gateways only translate requests and responses; all alert state
// lives with the callers.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sosradar/internal/domain/constants"
	"sosradar/internal/domain/entity"
	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/domain/service"
)

// Per-locale texts for the app's supported languages. OneSignal picks the
// entry matching the recipient device's language and falls back to "en".
var (
	alertTitles = map[string]string{
		"en": "SOS Alert!",
		"sk": "SOS Poplach!",
		"uk": "SOS Тривога!",
	}
	alertBodies = map[string]string{
		"en": "SOS Alert! Someone nearby needs help!",
		"sk": "SOS! Niekto vo vašom okolí potrebuje pomoc!",
		"uk": "SOS! Хтось поруч потребує допомоги!",
	}
	cancellationTitles = map[string]string{
		"en": "SOS Cancelled",
		"sk": "SOS zrušené",
		"uk": "SOS скасовано",
	}
	cancellationBodies = map[string]string{
		"en": "The SOS alert was cancelled by its sender",
		"sk": "Odosielateľ poplach zrušil",
		"uk": "Відправник скасував сигнал тривоги",
	}
)

type onesignalGateway struct {
	client   *http.Client
	endpoint string
	appID    string
	apiKey   string
	logger   *slog.Logger
}

// NewOneSignalGateway creates a gateway against the OneSignal REST API.
// The HTTP client enforces the given timeout on every request.
func NewOneSignalGateway(endpoint, appID, apiKey string, timeout time.Duration, logger *slog.Logger) service.PushGateway {
	return &onesignalGateway{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		appID:    appID,
		apiKey:   apiKey,
		logger:   logger,
	}
}

type onesignalButton struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type onesignalRequest struct {
	AppID          string              `json:"app_id"`
	TargetChannel  string              `json:"target_channel"`
	IncludeAliases map[string][]string `json:"include_aliases"`
	Headings       map[string]string   `json:"headings"`
	Contents       map[string]string   `json:"contents"`
	AccentColor    string              `json:"android_accent_color"`
	LEDColor       string              `json:"android_led_color"`
	Priority       int                 `json:"priority"`
	TTL            int                 `json:"ttl"`
	Data           map[string]string   `json:"data,omitempty"`
	Buttons        []onesignalButton   `json:"buttons,omitempty"`
}

type onesignalResponse struct {
	ID         string `json:"id"`
	Recipients int    `json:"recipients"`
}

// SendAlert broadcasts an SOS alert to the payload's recipients by external
// id, with response action buttons attached.
func (g *onesignalGateway) SendAlert(ctx context.Context, payload *service.AlertPayload) (*service.PushReceipt, error) {
	req := g.baseRequest(payload.Recipients, alertTitles, localizedBodies(payload.Message))
	req.Data = map[string]string{
		"alert_type":    constants.AlertTypeSOS,
		"sender_id":     payload.OriginatorID,
		"latitude":      strconv.FormatFloat(payload.Latitude, 'f', -1, 64),
		"longitude":     strconv.FormatFloat(payload.Longitude, 'f', -1, 64),
		"radius_meters": strconv.Itoa(payload.RadiusMeters),
		"timestamp":     payload.CreatedAt.UTC().Format(time.RFC3339),
	}
	req.Buttons = []onesignalButton{
		{ID: "help_coming", Text: "I'm coming to help"},
		{ID: "false_alarm", Text: "False alarm"},
	}

	resp, err := g.post(ctx, req)
	if err != nil {
		return nil, err
	}
	return &service.PushReceipt{
		ProviderID:     resp.ID,
		RecipientCount: resp.Recipients,
	}, nil
}

// SendCancellation notifies the session's recipients that the alert was
// withdrawn by its originator.
func (g *onesignalGateway) SendCancellation(ctx context.Context, session *entity.AlertSession) error {
	if len(session.Recipients) == 0 {
		return nil
	}

	req := g.baseRequest(session.Recipients, cancellationTitles, cancellationBodies)
	req.Data = map[string]string{
		"alert_type":        constants.AlertTypeSOSCancelled,
		"original_alert_id": session.SessionID,
	}

	_, err := g.post(ctx, req)
	return err
}

// localizedBodies builds the per-locale contents map. A custom message from
// the originator cannot be translated server side, so it replaces the "en"
// entry while the other locales keep the standard body.
func localizedBodies(message string) map[string]string {
	out := make(map[string]string, len(alertBodies))
	for locale, text := range alertBodies {
		out[locale] = text
	}
	if message != "" {
		out["en"] = message
	}
	return out
}

func (g *onesignalGateway) baseRequest(externalIDs []string, headings, contents map[string]string) *onesignalRequest {
	return &onesignalRequest{
		AppID:         g.appID,
		TargetChannel: "push",
		IncludeAliases: map[string][]string{
			"external_id": externalIDs,
		},
		Headings:    headings,
		Contents:    contents,
		AccentColor: "FFFF3B30",
		LEDColor:    "FFFF3B30",
		Priority:    10,
		TTL:         300,
	}
}

// post sends one notification request. Transport failures map to
// ErrProviderUnavailable, non-2xx responses to ProviderRejectedError.
func (g *onesignalGateway) post(ctx context.Context, payload *onesignalRequest) (*onesignalResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Key %s", g.apiKey))

	httpResp, err := g.client.Do(httpReq)
	if err != nil {
		g.logger.Warn("onesignal unreachable", slog.String("error", err.Error()))
		return nil, domainerrors.ErrProviderUnavailable.WithDetails(err.Error())
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, domainerrors.ErrProviderUnavailable.WithDetails(err.Error())
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		g.logger.Warn("onesignal rejected request",
			slog.Int("status", httpResp.StatusCode),
			slog.String("body", string(respBody)))
		return nil, domainerrors.NewProviderRejectedError(httpResp.StatusCode, string(respBody))
	}

	// Missing fields decode to their zero values, so an omitted recipient
	// count reads as zero.
	var resp onesignalResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, domainerrors.NewProviderRejectedError(httpResp.StatusCode, "malformed provider response")
	}
	return &resp, nil
}
