package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraint}
}

func TestSessionRepository_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "winner swaps key", affected: 1, want: true},
		{name: "key already rotated", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewSessionRepository(db)

			mock.ExpectExec(`UPDATE "sessions" SET "is_active"=\$1 WHERE user_id = \(SELECT .*user_id.* FROM "sessions" WHERE session_key = \$\d+ AND is_active AND expires_at > \$\d+\) AND device_id = \$\d+ AND session_key <> \$\d+ AND is_active`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(`UPDATE "sessions" SET .*WHERE session_key = \$\d+ AND is_active AND expires_at > \$\d+`).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			now := time.Now()
			ok, err := repo.Rotate(context.Background(), "old-key", &entity.Session{
				Key:       "new-key",
				DeviceID:  "device-1",
				ExpiresAt: now.Add(time.Hour),
			}, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_RotateWithoutDeviceID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`UPDATE "sessions" SET .*WHERE session_key = \$\d+ AND is_active AND expires_at > \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	ok, err := repo.Rotate(context.Background(), "old-key", &entity.Session{Key: "new-key", ExpiresAt: now.Add(time.Hour)}, now)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CreateConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`INSERT INTO "sessions"`).
		WillReturnError(uniqueViolation("sessions_active_device_idx"))

	err := repo.Create(context.Background(), &entity.Session{
		Key:       "key",
		UserID:    uuid.New(),
		DeviceID:  "device-1",
		IsActive:  true,
		ExpiresAt: time.Now().Add(time.Hour),
		LastUsed:  time.Now(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrSessionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindActiveByKey(t *testing.T) {
	t.Run("joins the live role", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSessionRepository(db)

		sessionID, userID := uuid.New(), uuid.New()
		expiresAt := time.Now().Add(time.Hour)
		rows := sqlmock.NewRows([]string{
			"id", "session_key", "user_id", "device_id", "device_name", "ip",
			"is_active", "expires_at", "last_used", "created_at", "user_role",
		}).AddRow(sessionID.String(), "key", userID.String(), "device-1", "Pixel", "10.0.0.1", true, expiresAt, time.Now(), time.Now(), "admin")

		mock.ExpectQuery(`SELECT sessions\.\*, users\.role AS user_role FROM .*sessions.* JOIN users ON users\.id = sessions\.user_id WHERE sessions\.session_key = \$1 AND sessions\.is_active`).
			WillReturnRows(rows)

		session, err := repo.FindActiveByKey(context.Background(), "key")
		require.NoError(t, err)
		assert.Equal(t, sessionID, session.ID)
		assert.Equal(t, userID, session.UserID)
		assert.Equal(t, "key", session.Key)
		assert.Equal(t, entity.RoleAdmin, session.UserRole)
		assert.True(t, session.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown key", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSessionRepository(db)

		mock.ExpectQuery(`SELECT sessions\.\*`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindActiveByKey(context.Background(), "gone")
		assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	})
}

func TestSessionRepository_DeactivateAllForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`UPDATE "sessions" SET "is_active"=\$1 WHERE .*user_id = \$2 AND is_active.*session_key <> \$3`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeactivateAllForUser(context.Background(), uuid.New(), "keep-me")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOneTimeCodeRepository_MarkUsed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOneTimeCodeRepository(db)

	mock.ExpectExec(`UPDATE "one_time_codes" SET "used_at"=\$1 WHERE id = \$2 AND used_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "one_time_codes" SET "used_at"=\$1 WHERE id = \$2 AND used_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	id := uuid.New()
	first, err := repo.MarkUsed(context.Background(), id)
	require.NoError(t, err)
	second, err := repo.MarkUsed(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOneTimeCodeRepository_FindLatestMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOneTimeCodeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "one_time_codes" WHERE user_id = \$1 AND code = \$2 AND purpose = \$3 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindLatest(context.Background(), uuid.New(), 123456, entity.OTPPurposeActivation)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
}

func TestResetTokenRepository_FindByHashMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResetTokenRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "reset_tokens" WHERE token_hash = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByHash(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(uniqueViolation("users_email_idx"))

	err := repo.Create(context.Background(), &entity.User{Email: "a@x.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserRepository_ActivateUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET "is_active"=\$1.*WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Activate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateEmailDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET "email"=\$1`).WillReturnError(uniqueViolation("users_email_idx"))

	err := repo.UpdateEmail(context.Background(), uuid.New(), "taken@x.com")
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestIngredientRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db)

	mock.ExpectQuery(`INSERT INTO "ingredients"`).WillReturnError(uniqueViolation("ingredients_name_idx"))

	err := repo.Create(context.Background(), &entity.Ingredient{Name: "peanut"})
	assert.ErrorIs(t, err, domainerrors.ErrIngredientAlreadyExists)
}

func TestIngredientRepository_ListWithAllergicCounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "icon", "is_main_allergen", "created_at", "updated_at", "allergic_users"}).
		AddRow(1, "peanut", "", true, time.Now(), time.Now(), 4).
		AddRow(2, "milk", "", true, time.Now(), time.Now(), 0)
	mock.ExpectQuery(`SELECT ingredients\.\*, \(SELECT COUNT\(\*\) FROM user_allergens ua .*\) AS allergic_users FROM "ingredients"`).
		WillReturnRows(rows)

	ingredients, err := repo.ListWithAllergicCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "peanut", ingredients[0].Name)
	assert.Equal(t, 4, ingredients[0].AllergicUsers)
	assert.Equal(t, 0, ingredients[1].AllergicUsers)
}

func TestIngredientRepository_EmptyInputsSkipQueries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db)

	n, err := repo.CountExisting(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	allergens, err := repo.FindUserAllergens(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, allergens)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFoodRepository_FindByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFoodRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "foods" WHERE id = \$1`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestFoodRepository_ListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFoodRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "foods" WHERE name ILIKE \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	foods, total, err := repo.List(context.Background(), entity.FoodFilter{Name: "soup", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, foods)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Execute(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "sessions" SET "is_active"=\$1 WHERE session_key = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
			return f.SessionRepo().Deactivate(context.Background(), "key")
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)
		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and repanics", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConstraintViolationHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(uniqueViolation("x")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.False(t, isUniqueConstraintViolation(errors.New("duplicate key")))
}
