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
)

type oneTimeCodeRepository struct {
	db *gorm.DB
}

func NewOneTimeCodeRepository(db *gorm.DB) repository.OneTimeCodeRepository {
	return &oneTimeCodeRepository{db: db}
}

func (repo *oneTimeCodeRepository) Create(ctx context.Context, code *entity.OneTimeCode) error {
	codeM := &model.OneTimeCodeModel{
		ID:        code.ID,
		UserID:    code.UserID,
		Code:      code.Code,
		Purpose:   string(code.Purpose),
		CreatedAt: code.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create one-time code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

func (repo *oneTimeCodeRepository) DeleteUnused(ctx context.Context, userID uuid.UUID, purpose entity.OTPPurpose) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ? AND used_at IS NULL", userID, string(purpose)).
		Delete(&model.OneTimeCodeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete unused one-time codes")
	}

	return nil
}

func (repo *oneTimeCodeRepository) FindLatest(ctx context.Context, userID uuid.UUID, code int, purpose entity.OTPPurpose) (*entity.OneTimeCode, error) {
	var codeM model.OneTimeCodeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND code = ? AND purpose = ?", userID, code, string(purpose)).
		Order("created_at DESC").
		Take(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrInvalidOTP
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find one-time code")
	}

	return &entity.OneTimeCode{
		ID:        codeM.ID,
		UserID:    codeM.UserID,
		Code:      codeM.Code,
		Purpose:   entity.OTPPurpose(codeM.Purpose),
		CreatedAt: codeM.CreatedAt,
		UsedAt:    codeM.UsedAt,
	}, nil
}

func (repo *oneTimeCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OneTimeCodeModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume one-time code")
	}

	return result.RowsAffected == 1, nil
}

type resetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	tokenM := &model.ResetTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		CreatedAt: token.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

func (repo *resetTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.ResetToken, error) {
	var tokenM model.ResetTokenModel
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Take(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find reset token")
	}

	return &entity.ResetToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		TokenHash: tokenM.TokenHash,
		CreatedAt: tokenM.CreatedAt,
		UsedAt:    tokenM.UsedAt,
	}, nil
}

func (repo *resetTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ResetTokenModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume reset token")
	}

	return result.RowsAffected == 1, nil
}
