package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sosradar/config"
	"sosradar/internal/domain/constants"
	"sosradar/internal/domain/entity"
	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/domain/repository"
	"sosradar/internal/domain/service"
	"sosradar/internal/errors"
	"sosradar/internal/usecase"
)

type alertService struct {
	locationRepo repository.LocationRepository
	geoIndex     service.GeoIndex
	gateway      service.PushGateway
	publisher    service.EventPublisher
	tracker      usecase.SessionTracker
	config       *config.Config
	logger       *slog.Logger
}

// NewAlertService creates a new alert dispatch service instance
func NewAlertService(
	locationRepo repository.LocationRepository,
	geoIndex service.GeoIndex,
	gateway service.PushGateway,
	publisher service.EventPublisher,
	tracker usecase.SessionTracker,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		locationRepo: locationRepo,
		geoIndex:     geoIndex,
		gateway:      gateway,
		publisher:    publisher,
		tracker:      tracker,
		config:       cfg,
		logger:       logger,
	}
}

// TriggerAlert runs the dispatch pipeline. The session is only created after
// the provider accepted the send, so a failed dispatch leaves no session
// behind.
func (s *alertService) TriggerAlert(ctx context.Context, input *usecase.TriggerAlertInput) (*usecase.TriggerAlertOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.ErrInvalidUserID
	}
	if !entity.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	radius := input.RadiusMeters
	if radius <= 0 {
		radius = s.config.Alert.DefaultRadiusMeters
	}
	if radius > s.config.Alert.MaxRadiusMeters {
		return nil, domainerrors.ErrInvalidRadius
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		message = s.config.Alert.DefaultMessage
	}

	// The trigger carries the originator's freshest coordinates; store them
	// before querying so later proximity queries see this position too.
	externalID := input.ExternalID
	if externalID == "" {
		externalID = input.UserID
	}
	if err := s.locationRepo.Upsert(ctx, &entity.UserLocation{
		UserID:     input.UserID,
		ExternalID: externalID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		UpdatedAt:  time.Now(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store originator location")
	}

	// One active session per originator
	if _, err := s.tracker.ActiveSession(ctx, input.UserID); err == nil {
		return nil, domainerrors.ErrAlertAlreadyActive
	} else if !errors.Is(err, domainerrors.ErrNoActiveSession) {
		return nil, err
	}

	nearby, err := s.geoIndex.NearbyUsers(ctx, input.Latitude, input.Longitude, float64(radius), input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query nearby users")
	}

	recipients := make([]string, 0, len(nearby))
	for _, user := range nearby {
		recipients = append(recipients, user.Location.ExternalID)
	}

	createdAt := time.Now()
	session := &entity.AlertSession{
		SessionID:    entity.NewSessionID(input.UserID, createdAt),
		OriginatorID: input.UserID,
		State:        entity.SessionStateActive,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		RadiusMeters: radius,
		Message:      message,
		Recipients:   recipients,
		CreatedAt:    createdAt,
	}

	output := &usecase.TriggerAlertOutput{
		SessionID:   session.SessionID,
		NearbyCount: len(nearby),
	}

	// With nobody in range there is nothing to send; the session still
	// opens so the originator can cancel it normally.
	if len(recipients) > 0 {
		receipt, err := s.gateway.SendAlert(ctx, &service.AlertPayload{
			SessionID:    session.SessionID,
			OriginatorID: input.UserID,
			Latitude:     input.Latitude,
			Longitude:    input.Longitude,
			RadiusMeters: radius,
			Message:      message,
			Recipients:   recipients,
			CreatedAt:    createdAt,
		})
		if err != nil {
			return nil, err
		}
		session.RecipientCount = receipt.RecipientCount
		output.ProviderID = receipt.ProviderID
		output.RecipientCount = receipt.RecipientCount
	}

	if err := s.tracker.Track(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("sos alert dispatched",
		slog.String("session_id", session.SessionID),
		slog.Int("nearby_count", len(nearby)),
		slog.Int("recipient_count", session.RecipientCount),
	)

	s.publishEvent(ctx, &service.AlertEvent{
		EventType:    service.EventAlertTriggered,
		SessionID:    session.SessionID,
		OriginatorID: session.OriginatorID,
		Latitude:     session.Latitude,
		Longitude:    session.Longitude,
		RadiusMeters: session.RadiusMeters,
		Message:      session.Message,
		RecipientIDs: session.Recipients,
	})

	return output, nil
}

// CancelAlert cancels the user's active alert session. The local state
// transition always happens; the cancellation notice to recipients is
// best-effort and a provider failure does not undo it.
func (s *alertService) CancelAlert(ctx context.Context, userID string) (*usecase.CancelAlertOutput, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidUserID
	}

	session, err := s.resolveLatestSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	session, changed, err := s.tracker.Cancel(ctx, session.SessionID, time.Now())
	if err != nil {
		return nil, err
	}

	output := &usecase.CancelAlertOutput{
		SessionID:        session.SessionID,
		AlreadyCancelled: !changed,
	}

	if changed {
		if err := s.gateway.SendCancellation(ctx, session); err != nil {
			s.logger.Warn("cancellation notice failed",
				slog.String("session_id", session.SessionID),
				slog.String("error", err.Error()),
			)
		}

		s.publishEvent(ctx, &service.AlertEvent{
			EventType:    service.EventAlertCancelled,
			SessionID:    session.SessionID,
			OriginatorID: session.OriginatorID,
			Latitude:     session.Latitude,
			Longitude:    session.Longitude,
		})
	}

	return output, nil
}

// RecordResponse records a responder's action against a session
func (s *alertService) RecordResponse(ctx context.Context, input *usecase.RecordResponseInput) (*entity.AlertSession, error) {
	if strings.TrimSpace(input.ResponderID) == "" {
		return nil, domainerrors.ErrInvalidUserID
	}

	action, ok := entity.ParseResponseAction(input.ActionID)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown action id: " + input.ActionID)
	}

	sessionID := input.SessionID
	if sessionID == "" {
		session, err := s.resolveLatestSession(ctx, input.OriginatorID)
		if err != nil {
			return nil, err
		}
		sessionID = session.SessionID
	}

	session, err := s.tracker.RecordResponse(ctx, sessionID, input.ResponderID, action, time.Now())
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, &service.AlertEvent{
		EventType:    service.EventAlertResponse,
		SessionID:    session.SessionID,
		OriginatorID: session.OriginatorID,
		ResponderID:  input.ResponderID,
		ActionID:     string(action),
	})

	return session, nil
}

// HandleClickEvent processes a provider click event. Anything that is not a
// recognized response to an SOS alert is dropped without error.
func (s *alertService) HandleClickEvent(ctx context.Context, event *service.ClickEvent) error {
	if event.AlertType != constants.AlertTypeSOS {
		return nil
	}

	if _, ok := entity.ParseResponseAction(event.ActionID); !ok {
		s.logger.Debug("ignoring click event",
			slog.String("action_id", event.ActionID),
			slog.String("sender_id", event.SenderID),
		)

		return nil
	}

	if strings.TrimSpace(event.ResponderID) == "" {
		s.logger.Warn("click event without responder id",
			slog.String("sender_id", event.SenderID),
		)

		return nil
	}

	_, err := s.RecordResponse(ctx, &usecase.RecordResponseInput{
		OriginatorID: event.SenderID,
		ResponderID:  event.ResponderID,
		ActionID:     event.ActionID,
	})

	return err
}

// GetHistory returns the user's past alert sessions, newest first
func (s *alertService) GetHistory(ctx context.Context, userID string, limit int) ([]*entity.AlertSession, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidUserID
	}
	if limit <= 0 {
		limit = s.config.Alert.HistoryLimit
	}

	return s.tracker.History(ctx, userID, limit)
}

// Stats reports aggregate user and session counters
func (s *alertService) Stats(ctx context.Context) (*usecase.StatsOutput, error) {
	userCount, err := s.locationRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	counts, err := s.tracker.Counts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sessions")
	}

	return &usecase.StatsOutput{
		TotalUsers:     userCount,
		TotalSessions:  counts.Total,
		ActiveSessions: counts.Active,
	}, nil
}

// resolveLatestSession returns the user's active session, falling back to
// their most recent one so idempotent cancels and late responses still find
// their target.
func (s *alertService) resolveLatestSession(ctx context.Context, userID string) (*entity.AlertSession, error) {
	session, err := s.tracker.ActiveSession(ctx, userID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, domainerrors.ErrNoActiveSession) {
		return nil, err
	}

	history, err := s.tracker.History(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, domainerrors.ErrNoActiveSession
	}

	return history[0], nil
}

func (s *alertService) publishEvent(ctx context.Context, event *service.AlertEvent) {
	if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
		s.logger.Warn("event publish failed",
			slog.String("event_type", event.EventType),
			slog.String("session_id", event.SessionID),
			slog.String("error", err.Error()),
		)
	}
}
