package postgres

import (
	"context"
	"time"

	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/repository"
	"allergo/internal/errors"
	"allergo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)
	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSessionConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindActiveByKey reads from the primary so a rotation or revocation is visible immediately.
func (repo *sessionRepository) FindActiveByKey(ctx context.Context, key string) (*entity.Session, error) {
	var row model.SessionWithRole
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Table("sessions").
		Select("sessions.*, users.role AS user_role").
		Joins("JOIN users ON users.id = sessions.user_id").
		Where("sessions.session_key = ? AND sessions.is_active", key).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrSessionInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session")
	}

	session := toSessionDomain(&row.SessionModel)
	session.UserRole = entity.Role(row.UserRole)

	return session, nil
}

// Rotate is a compare-and-swap on the key column: only one caller presenting oldKey can win.
// Another active session of the same user on the incoming device is deactivated first so
// the swap cannot trip sessions_active_device_idx. Callers run both statements in one transaction.
func (repo *sessionRepository) Rotate(ctx context.Context, oldKey string, session *entity.Session, now time.Time) (bool, error) {
	if session.DeviceID != "" {
		owner := repo.db.WithContext(ctx).
			Model(&model.SessionModel{}).
			Select("user_id").
			Where("session_key = ? AND is_active AND expires_at > ?", oldKey, now)

		err := repo.db.WithContext(ctx).
			Model(&model.SessionModel{}).
			Where("user_id = (?) AND device_id = ? AND session_key <> ? AND is_active", owner, session.DeviceID, oldKey).
			Update("is_active", false).Error
		if err != nil {
			return false, domainerrors.NewDatabaseExecuteError(err, "failed to deactivate device sessions")
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("session_key = ? AND is_active AND expires_at > ?", oldKey, now).
		Updates(map[string]any{
			"session_key": session.Key,
			"device_id":   session.DeviceID,
			"device_name": session.DeviceName,
			"ip":          session.IP,
			"expires_at":  session.ExpiresAt,
			"last_used":   now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, domainerrors.ErrSessionConflict
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate session")
	}

	return result.RowsAffected == 1, nil
}

func (repo *sessionRepository) DeactivateDevice(ctx context.Context, userID uuid.UUID, deviceID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND device_id = ? AND is_active", userID, deviceID).
		Update("is_active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device sessions")
	}

	return result.RowsAffected, nil
}

func (repo *sessionRepository) DeactivateAllForUser(ctx context.Context, userID uuid.UUID, exceptKey string) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND is_active", userID)
	if exceptKey != "" {
		query = query.Where("session_key <> ?", exceptKey)
	}

	result := query.Update("is_active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate user sessions")
	}

	return result.RowsAffected, nil
}

func (repo *sessionRepository) Deactivate(ctx context.Context, key string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("session_key = ?", key).
		Update("is_active", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate session")
	}

	return nil
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:         data.ID,
		Key:        data.SessionKey,
		UserID:     data.UserID,
		DeviceID:   data.DeviceID,
		DeviceName: data.DeviceName,
		IP:         data.IP,
		IsActive:   data.IsActive,
		ExpiresAt:  data.ExpiresAt,
		LastUsed:   data.LastUsed,
		CreatedAt:  data.CreatedAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:         data.ID,
		SessionKey: data.Key,
		UserID:     data.UserID,
		DeviceID:   data.DeviceID,
		DeviceName: data.DeviceName,
		IP:         data.IP,
		IsActive:   data.IsActive,
		ExpiresAt:  data.ExpiresAt,
		LastUsed:   data.LastUsed,
	}
}
