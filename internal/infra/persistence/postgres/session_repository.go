package postgres

import (
	"context"
	"encoding/json"

	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/repository"
	"sosradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements repository.SessionRepository on PostgreSQL.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create persists a new session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.AlertSession) error {
	sessionM, err := fromSessionDomain(session)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to create alert session")
	}

	return nil
}

// FindByID retrieves a session by id.
func (repo *sessionRepository) FindByID(ctx context.Context, sessionID string) (*entity.AlertSession, error) {
	var sessionM model.AlertSessionModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by ID")
	}

	return toSessionDomain(&sessionM)
}

// FindActiveByOriginator retrieves the originator's active session.
func (repo *sessionRepository) FindActiveByOriginator(ctx context.Context, originatorID string) (*entity.AlertSession, error) {
	var sessionM model.AlertSessionModel

	if err := repo.db.WithContext(ctx).
		Where("originator_id = ? AND state = ?", originatorID, string(entity.SessionStateActive)).
		Order("created_at DESC").
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoActiveSession
		}

		return nil, errors.Wrap(err, "failed to find active session by originator")
	}

	return toSessionDomain(&sessionM)
}

// FindByOriginator retrieves the originator's sessions newest first, at most
// limit entries. A non-positive limit returns all of them.
func (repo *sessionRepository) FindByOriginator(ctx context.Context, originatorID string, limit int) ([]*entity.AlertSession, error) {
	var sessionModels []*model.AlertSessionModel

	query := repo.db.WithContext(ctx).
		Where("originator_id = ?", originatorID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sessions by originator")
	}

	sessions := make([]*entity.AlertSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		session, err := toSessionDomain(sessionM)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// Mutate applies fn to the session inside a transaction holding a row lock,
// so concurrent state transitions on the same session serialize instead of
// interleaving. fn returning an error rolls the update back.
func (repo *sessionRepository) Mutate(ctx context.Context, sessionID string, fn func(*entity.AlertSession) error) (*entity.AlertSession, error) {
	var updated *entity.AlertSession

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sessionM model.AlertSessionModel

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_id = ?", sessionID).
			First(&sessionM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrSessionNotFound
			}

			return errors.Wrap(err, "failed to lock session for update")
		}

		session, err := toSessionDomain(&sessionM)
		if err != nil {
			return err
		}

		if err := fn(session); err != nil {
			return err
		}

		nextM, err := fromSessionDomain(session)
		if err != nil {
			return err
		}

		if err := tx.
			Where("session_id = ?", sessionID).
			Save(nextM).Error; err != nil {
			return errors.Wrap(err, "failed to save mutated session")
		}

		updated = session

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Counts returns aggregate session totals.
func (repo *sessionRepository) Counts(ctx context.Context) (repository.SessionCounts, error) {
	var total, active int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertSessionModel{}).
		Count(&total).Error; err != nil {
		return repository.SessionCounts{}, errors.Wrap(err, "failed to count sessions")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertSessionModel{}).
		Where("state = ?", string(entity.SessionStateActive)).
		Count(&active).Error; err != nil {
		return repository.SessionCounts{}, errors.Wrap(err, "failed to count active sessions")
	}

	return repository.SessionCounts{Total: int(total), Active: int(active)}, nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.AlertSessionModel) (*entity.AlertSession, error) {
	if data == nil {
		return nil, nil
	}

	session := &entity.AlertSession{
		SessionID:      data.SessionID,
		OriginatorID:   data.OriginatorID,
		State:          entity.SessionState(data.State),
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		RadiusMeters:   data.RadiusMeters,
		Message:        data.Message,
		RecipientCount: data.RecipientCount,
		CreatedAt:      data.CreatedAt,
		CancelledAt:    data.CancelledAt,
	}

	if len(data.Recipients) > 0 {
		if err := json.Unmarshal(data.Recipients, &session.Recipients); err != nil {
			return nil, errors.Wrap(err, "failed to decode session recipients")
		}
	}
	if len(data.Responses) > 0 {
		if err := json.Unmarshal(data.Responses, &session.Responses); err != nil {
			return nil, errors.Wrap(err, "failed to decode session responses")
		}
	}

	return session, nil
}

func fromSessionDomain(data *entity.AlertSession) (*model.AlertSessionModel, error) {
	if data == nil {
		return nil, nil
	}

	recipients, err := json.Marshal(data.Recipients)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session recipients")
	}
	responses, err := json.Marshal(data.Responses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session responses")
	}

	return &model.AlertSessionModel{
		SessionID:      data.SessionID,
		OriginatorID:   data.OriginatorID,
		State:          string(data.State),
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		RadiusMeters:   data.RadiusMeters,
		Message:        data.Message,
		Recipients:     recipients,
		Responses:      responses,
		RecipientCount: data.RecipientCount,
		CreatedAt:      data.CreatedAt,
		CancelledAt:    data.CancelledAt,
	}, nil
}
