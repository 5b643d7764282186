package push

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"sosradar/internal/domain/constants"
	"sosradar/internal/domain/entity"
	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/domain/service"
)

// Firebase limits multicast sends to 500 tokens per request.
const fcmBatchLimit = 500

type firebaseGateway struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseGateway creates a gateway against Firebase Cloud Messaging.
// Recipient external ids are treated as FCM registration tokens.
func NewFirebaseGateway(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.PushGateway, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return &firebaseGateway{
		client: client,
		logger: logger,
	}, nil
}

// SendAlert broadcasts an SOS alert in token batches and sums the provider's
// per-batch success counts into the receipt.
func (g *firebaseGateway) SendAlert(ctx context.Context, payload *service.AlertPayload) (*service.PushReceipt, error) {
	data := map[string]string{
		"alert_type":    constants.AlertTypeSOS,
		"sender_id":     payload.OriginatorID,
		"latitude":      strconv.FormatFloat(payload.Latitude, 'f', -1, 64),
		"longitude":     strconv.FormatFloat(payload.Longitude, 'f', -1, 64),
		"radius_meters": strconv.Itoa(payload.RadiusMeters),
		"timestamp":     payload.CreatedAt.UTC().Format(time.RFC3339),
	}

	// FCM notifications carry one title/body; locale selection happens in
	// the client from the data payload.
	delivered, err := g.multicast(ctx, payload.Recipients, alertTitles["en"], payload.Message, data)
	if err != nil {
		return nil, err
	}
	return &service.PushReceipt{RecipientCount: delivered}, nil
}

// SendCancellation notifies the session's recipients that the alert was
// withdrawn by its originator.
func (g *firebaseGateway) SendCancellation(ctx context.Context, session *entity.AlertSession) error {
	if len(session.Recipients) == 0 {
		return nil
	}

	data := map[string]string{
		"alert_type":        constants.AlertTypeSOSCancelled,
		"original_alert_id": session.SessionID,
	}
	_, err := g.multicast(ctx, session.Recipients, cancellationTitles["en"], cancellationBodies["en"], data)
	return err
}

func (g *firebaseGateway) multicast(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error) {
	delivered := 0
	for start := 0; start < len(tokens); start += fcmBatchLimit {
		end := start + fcmBatchLimit
		if end > len(tokens) {
			end = len(tokens)
		}

		message := &messaging.MulticastMessage{
			Tokens: tokens[start:end],
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, err := g.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return 0, domainerrors.ErrProviderUnavailable.WithDetails(err.Error())
		}
		delivered += response.SuccessCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				g.logger.Warn("dropping invalid fcm token",
					slog.String("token", tokens[start+idx]))
			}
		}
	}
	return delivered, nil
}
