package push

import (
	"context"
	"log/slog"

	"sosradar/config"
	"sosradar/internal/domain/constants"
	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopGateway is used when no push provider is configured. It reports every
// targeted recipient as delivered so local development behaves like a
// perfectly reliable provider.
type noopGateway struct {
	logger *slog.Logger
}

func (g *noopGateway) SendAlert(ctx context.Context, payload *service.AlertPayload) (*service.PushReceipt, error) {
	g.logger.Debug("[NoopPush] Push disabled, skipping alert",
		slog.String("session_id", payload.SessionID),
		slog.Int("recipient_count", len(payload.Recipients)),
	)

	return &service.PushReceipt{RecipientCount: len(payload.Recipients)}, nil
}

func (g *noopGateway) SendCancellation(ctx context.Context, session *entity.AlertSession) error {
	g.logger.Debug("[NoopPush] Push disabled, skipping cancellation",
		slog.String("session_id", session.SessionID),
	)

	return nil
}

// GatewayParams holds dependencies for PushGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushGateway creates a PushGateway based on configuration
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	cfg := params.Config.Push
	logger := params.Logger

	// If no push provider is configured, return a no-op gateway
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Push not configured, using no-op gateway")

		return &noopGateway{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PushProviderOneSignal:
		if cfg.OneSignal == nil || cfg.OneSignal.AppID == "" {
			return nil, errors.New("app ID is required for onesignal provider")
		}
		logger.Info("Using OneSignal push gateway",
			slog.String("endpoint", cfg.OneSignal.Endpoint),
		)

		return NewOneSignalGateway(
			cfg.OneSignal.Endpoint,
			cfg.OneSignal.AppID,
			cfg.OneSignal.APIKey,
			cfg.OneSignal.Timeout,
			logger,
		), nil

	case constants.PushProviderFCM:
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
			return nil, errors.New("credentials path is required for fcm provider")
		}
		logger.Info("Using Firebase push gateway",
			slog.String("project_id", cfg.Firebase.ProjectID),
		)

		return NewFirebaseGateway(params.Ctx, cfg.Firebase.CredentialsPath, logger)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// Module provides the push gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushGateway),
)
