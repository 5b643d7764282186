package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sosradar/config"
	"sosradar/internal/domain/entity"
	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/domain/service"
	"sosradar/internal/errors"
	"sosradar/internal/infra/persistence/memory"
	mockRepo "sosradar/internal/mocks/repository"
	mockSvc "sosradar/internal/mocks/service"
	"sosradar/internal/usecase"
)

func testAlertConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Alert = &config.AlertConfig{
		DefaultRadiusMeters: 200,
		MaxRadiusMeters:     10000,
		DefaultMessage:      "SOS Alert! Someone nearby needs help!",
		HistoryLimit:        20,
	}

	return cfg
}

func createTestAlertService(t *testing.T) (
	usecase.AlertUsecase,
	*mockRepo.MockLocationRepository,
	*mockSvc.MockGeoIndex,
	*mockSvc.MockPushGateway,
	*mockSvc.MockEventPublisher,
	usecase.SessionTracker,
) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	geoIndex := mockSvc.NewMockGeoIndex(t)
	gateway := mockSvc.NewMockPushGateway(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	tracker := NewSessionTracker(memory.NewSessionRepository())
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	alertUC := NewAlertService(locationRepo, geoIndex, gateway, publisher, tracker, testAlertConfig(), logger)

	return alertUC, locationRepo, geoIndex, gateway, publisher, tracker
}

func nearbyFixture() []service.NearbyUser {
	return []service.NearbyUser{
		{Location: entity.UserLocation{UserID: "user-2", ExternalID: "ext-2"}, DistanceMeters: 50},
		{Location: entity.UserLocation{UserID: "user-3", ExternalID: "ext-3"}, DistanceMeters: 150},
	}
}

// expectOriginStored covers the location write every dispatch performs before
// querying the index.
func expectOriginStored(ctx context.Context, locationRepo *mockRepo.MockLocationRepository) {
	locationRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
}

func TestAlertService_TriggerAlert_Success(t *testing.T) {
	alertUC, locationRepo, geoIndex, gateway, publisher, tracker := createTestAlertService(t)
	ctx := context.Background()

	locationRepo.EXPECT().
		Upsert(ctx, mock.Anything).
		Run(func(_ context.Context, loc *entity.UserLocation) {
			assert.Equal(t, "user-1", loc.UserID)
			assert.Equal(t, 48.1486, loc.Latitude)
			assert.Equal(t, 17.1077, loc.Longitude)
		}).
		Return(nil)

	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nearbyFixture(), nil)

	gateway.EXPECT().
		SendAlert(ctx, mock.Anything).
		Run(func(_ context.Context, payload *service.AlertPayload) {
			assert.Equal(t, []string{"ext-2", "ext-3"}, payload.Recipients)
			assert.Equal(t, 200, payload.RadiusMeters)
		}).
		Return(&service.PushReceipt{ProviderID: "notif-1", RecipientCount: 2}, nil)

	publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	output, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, output.RecipientCount)
	assert.Equal(t, 2, output.NearbyCount)
	assert.Equal(t, "notif-1", output.ProviderID)

	session, err := tracker.Session(ctx, output.SessionID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStateActive, session.State)
	assert.Equal(t, 2, session.RecipientCount)
	assert.Equal(t, []string{"ext-2", "ext-3"}, session.Recipients)
}

func TestAlertService_TriggerAlert_StoresOriginatorLocation(t *testing.T) {
	locationRepo := memory.NewLocationRepository()
	geoIndex := mockSvc.NewMockGeoIndex(t)
	gateway := mockSvc.NewMockPushGateway(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	tracker := NewSessionTracker(memory.NewSessionRepository())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	alertUC := NewAlertService(locationRepo, geoIndex, gateway, publisher, tracker, testAlertConfig(), logger)
	ctx := context.Background()

	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nil, nil)
	publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	_, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)

	// The dispatch registers a previously unknown originator, so later
	// proximity queries see this position.
	stored, err := locationRepo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 48.1486, stored.Latitude)
	assert.Equal(t, 17.1077, stored.Longitude)
	assert.Equal(t, "user-1", stored.ExternalID)
}

func TestAlertService_TriggerAlert_InvalidLatitude(t *testing.T) {
	alertUC, _, _, _, _, _ := createTestAlertService(t)

	_, err := alertUC.TriggerAlert(context.Background(), &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  200.0,
		Longitude: 17.1077,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestAlertService_TriggerAlert_RadiusAboveMaximum(t *testing.T) {
	alertUC, _, _, _, _, _ := createTestAlertService(t)

	_, err := alertUC.TriggerAlert(context.Background(), &usecase.TriggerAlertInput{
		UserID:       "user-1",
		Latitude:     48.1486,
		Longitude:    17.1077,
		RadiusMeters: 50000,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
}

func TestAlertService_TriggerAlert_ProviderUnreachableCreatesNoSession(t *testing.T) {
	alertUC, locationRepo, geoIndex, gateway, _, tracker := createTestAlertService(t)
	ctx := context.Background()

	expectOriginStored(ctx, locationRepo)
	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nearbyFixture(), nil)

	gateway.EXPECT().
		SendAlert(ctx, mock.Anything).
		Return(nil, domainerrors.ErrProviderUnavailable)

	_, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)

	// The failed dispatch must not leave a session behind.
	_, err = tracker.ActiveSession(ctx, "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
}

func TestAlertService_TriggerAlert_ProviderRejectionCreatesNoSession(t *testing.T) {
	alertUC, locationRepo, geoIndex, gateway, _, tracker := createTestAlertService(t)
	ctx := context.Background()

	expectOriginStored(ctx, locationRepo)
	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nearbyFixture(), nil)

	gateway.EXPECT().
		SendAlert(ctx, mock.Anything).
		Return(nil, domainerrors.NewProviderRejectedError(400, "bad app id"))

	_, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.Error(t, err)

	var rejected *domainerrors.ProviderRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, 400, rejected.Status())

	_, err = tracker.ActiveSession(ctx, "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
}

func TestAlertService_TriggerAlert_NobodyInRange(t *testing.T) {
	alertUC, locationRepo, geoIndex, _, publisher, tracker := createTestAlertService(t)
	ctx := context.Background()

	expectOriginStored(ctx, locationRepo)
	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nil, nil)

	publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	// No gateway call happens; the session opens with zero recipients.
	output, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)
	assert.Zero(t, output.RecipientCount)
	assert.Zero(t, output.NearbyCount)

	session, err := tracker.ActiveSession(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, session.RecipientCount)
}

func TestAlertService_TriggerAlert_SecondTriggerWhileActive(t *testing.T) {
	alertUC, locationRepo, geoIndex, _, publisher, _ := createTestAlertService(t)
	ctx := context.Background()

	// Both attempts refresh the originator's position.
	expectOriginStored(ctx, locationRepo)
	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nil, nil).
		Once()

	publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil).Once()

	_, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)

	_, err = alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlertAlreadyActive)
}

func TestAlertService_CancelAlert_Idempotent(t *testing.T) {
	alertUC, locationRepo, geoIndex, gateway, publisher, _ := createTestAlertService(t)
	ctx := context.Background()

	expectOriginStored(ctx, locationRepo)
	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nearbyFixture(), nil)
	gateway.EXPECT().
		SendAlert(ctx, mock.Anything).
		Return(&service.PushReceipt{RecipientCount: 2}, nil)
	gateway.EXPECT().
		SendCancellation(ctx, mock.Anything).
		Return(nil).
		Once()
	publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	output, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)

	first, err := alertUC.CancelAlert(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, output.SessionID, first.SessionID)
	assert.False(t, first.AlreadyCancelled)

	// The second cancel succeeds without another provider notice.
	second, err := alertUC.CancelAlert(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, output.SessionID, second.SessionID)
	assert.True(t, second.AlreadyCancelled)
}

func TestAlertService_CancelAlert_ProviderFailureStillCancels(t *testing.T) {
	alertUC, locationRepo, geoIndex, gateway, publisher, tracker := createTestAlertService(t)
	ctx := context.Background()

	expectOriginStored(ctx, locationRepo)
	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nearbyFixture(), nil)
	gateway.EXPECT().
		SendAlert(ctx, mock.Anything).
		Return(&service.PushReceipt{RecipientCount: 2}, nil)
	gateway.EXPECT().
		SendCancellation(ctx, mock.Anything).
		Return(domainerrors.ErrProviderUnavailable)
	publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	output, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)

	// The unreachable provider does not block the local transition.
	cancelled, err := alertUC.CancelAlert(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, cancelled.AlreadyCancelled)

	session, err := tracker.Session(ctx, output.SessionID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStateCancelled, session.State)
}

func TestAlertService_CancelAlert_NoSessions(t *testing.T) {
	alertUC, _, _, _, _, _ := createTestAlertService(t)

	_, err := alertUC.CancelAlert(context.Background(), "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
}

func TestAlertService_RecordResponse_AfterCancellation(t *testing.T) {
	alertUC, locationRepo, geoIndex, gateway, publisher, _ := createTestAlertService(t)
	ctx := context.Background()

	expectOriginStored(ctx, locationRepo)
	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nearbyFixture(), nil)
	gateway.EXPECT().
		SendAlert(ctx, mock.Anything).
		Return(&service.PushReceipt{RecipientCount: 2}, nil)
	gateway.EXPECT().SendCancellation(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	_, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)

	_, err = alertUC.CancelAlert(ctx, "user-1")
	require.NoError(t, err)

	// Responders may still report after the originator cancelled.
	session, err := alertUC.RecordResponse(ctx, &usecase.RecordResponseInput{
		OriginatorID: "user-1",
		ResponderID:  "user-2",
		ActionID:     "help_coming",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStateCancelled, session.State)
	require.Len(t, session.Responses, 1)
	assert.Equal(t, entity.ResponseHelpComing, session.Responses[0].Action)
}

func TestAlertService_RecordResponse_UnknownAction(t *testing.T) {
	alertUC, _, _, _, _, _ := createTestAlertService(t)

	_, err := alertUC.RecordResponse(context.Background(), &usecase.RecordResponseInput{
		OriginatorID: "user-1",
		ResponderID:  "user-2",
		ActionID:     "shrug",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAlertService_HandleClickEvent_IgnoresUnknownAction(t *testing.T) {
	alertUC, _, _, _, _, _ := createTestAlertService(t)

	// "none" means the notification body was tapped without choosing an
	// action; nothing is recorded.
	err := alertUC.HandleClickEvent(context.Background(), &service.ClickEvent{
		AlertType:   "sos",
		SenderID:    "user-1",
		ResponderID: "user-2",
		ActionID:    "none",
	})
	assert.NoError(t, err)
}

func TestAlertService_HandleClickEvent_RecordsResponse(t *testing.T) {
	alertUC, locationRepo, geoIndex, gateway, publisher, _ := createTestAlertService(t)
	ctx := context.Background()

	expectOriginStored(ctx, locationRepo)
	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return(nearbyFixture(), nil)
	gateway.EXPECT().
		SendAlert(ctx, mock.Anything).
		Return(&service.PushReceipt{RecipientCount: 2}, nil)
	publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	_, err := alertUC.TriggerAlert(ctx, &usecase.TriggerAlertInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)

	err = alertUC.HandleClickEvent(ctx, &service.ClickEvent{
		AlertType:   "sos",
		SenderID:    "user-1",
		ResponderID: "user-2",
		ActionID:    "false_alarm",
	})
	require.NoError(t, err)

	history, err := alertUC.GetHistory(ctx, "user-1", 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Len(t, history[0].Responses, 1)
	assert.Equal(t, entity.ResponseFalseAlarm, history[0].Responses[0].Action)
}

func TestAlertService_Stats(t *testing.T) {
	alertUC, locationRepo, _, _, _, _ := createTestAlertService(t)
	ctx := context.Background()

	locationRepo.EXPECT().Count(ctx).Return(3, nil)

	stats, err := alertUC.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Zero(t, stats.TotalSessions)
	assert.Zero(t, stats.ActiveSessions)
}
