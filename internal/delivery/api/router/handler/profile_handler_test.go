package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"allergo/internal/delivery/api/validator"
	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"
	mockUsecase "allergo/internal/mocks/usecase"
	"allergo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC}), profileUC
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("empty alergens clears the set", func(t *testing.T) {
		h, profileUC := createTestProfileHandler(t)
		userID := uuid.New()
		profileUC.EXPECT().UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(in usecase.UpdateProfileInput) bool {
			return in.Name != nil && *in.Name == "Ann" && in.Allergens != nil && len(in.Allergens) == 0
		})).Return(&entity.User{ID: userID, Profile: &entity.Profile{Name: "Ann"}}, nil)

		c, rec := newTestContext(http.MethodPatch, "/api/v1/users/profile", `{"name":"Ann","alergens":[]}`)
		deliverycontext.SetIdentity(c, &entity.Identity{UserID: userID})

		require.NoError(t, h.UpdateProfile(c))

		var body UserDetailResponse
		decodeData(t, rec, &body)
		require.NotNil(t, body.Name)
		assert.Equal(t, "Ann", *body.Name)
		assert.Empty(t, body.Alergens)
		assert.Nil(t, body.Avatar)
	})

	t.Run("omitted alergens are left unchanged", func(t *testing.T) {
		h, profileUC := createTestProfileHandler(t)
		userID := uuid.New()
		profileUC.EXPECT().UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(in usecase.UpdateProfileInput) bool {
			return in.Allergens == nil
		})).Return(&entity.User{ID: userID}, nil)

		c, _ := newTestContext(http.MethodPatch, "/api/v1/users/profile", `{"name":"Ann"}`)
		deliverycontext.SetIdentity(c, &entity.Identity{UserID: userID})

		require.NoError(t, h.UpdateProfile(c))
	})

	t.Run("non-positive ingredient id", func(t *testing.T) {
		h, _ := createTestProfileHandler(t)
		c, _ := newTestContext(http.MethodPatch, "/api/v1/users/profile", `{"alergens":[0]}`)
		deliverycontext.SetIdentity(c, &entity.Identity{UserID: uuid.New()})

		assert.ErrorIs(t, h.UpdateProfile(c), domainerrors.ErrValidationFailed)
	})
}

func newUploadContext(t *testing.T, field string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "avatar.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/profile/upload", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		h, profileUC := createTestProfileHandler(t)
		userID := uuid.New()
		content := []byte("\x89PNG\r\n\x1a\nfake")
		profileUC.EXPECT().UploadAvatar(mock.Anything, userID, content).
			Return("https://cdn.example.com/images/a.png", nil)

		c, rec := newUploadContext(t, avatarFormField, content)
		deliverycontext.SetIdentity(c, &entity.Identity{UserID: userID})

		require.NoError(t, h.UploadAvatar(c))

		var body avatarResponse
		decodeData(t, rec, &body)
		assert.Equal(t, "https://cdn.example.com/images/a.png", body.Avatar)
	})

	t.Run("missing file field", func(t *testing.T) {
		h, _ := createTestProfileHandler(t)
		c, _ := newUploadContext(t, "picture", []byte("x"))
		deliverycontext.SetIdentity(c, &entity.Identity{UserID: uuid.New()})

		assert.ErrorIs(t, h.UploadAvatar(c), domainerrors.ErrValidationFailed)
	})

	t.Run("unsupported media from usecase", func(t *testing.T) {
		h, profileUC := createTestProfileHandler(t)
		profileUC.EXPECT().UploadAvatar(mock.Anything, mock.Anything, mock.Anything).
			Return("", domainerrors.ErrUnsupportedMedia)

		c, _ := newUploadContext(t, avatarFormField, []byte("plain text"))
		deliverycontext.SetIdentity(c, &entity.Identity{UserID: uuid.New()})

		assert.ErrorIs(t, h.UploadAvatar(c), domainerrors.ErrUnsupportedMedia)
	})
}
