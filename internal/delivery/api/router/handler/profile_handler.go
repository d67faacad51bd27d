package handler

import (
	"io"
	"net/http"

	"allergo/internal/delivery/api/response"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// avatarFormField is the multipart field carrying the picture.
const avatarFormField = "file"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the caller's profile endpoints.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

type updateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Alergens []int   `json:"alergens" validate:"omitempty,dive,gt=0"`
}

type avatarResponse struct {
	Avatar string `json:"avatar"`
}

// UpdateProfile renames the caller and/or replaces the allergen set.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), caller.UserID, usecase.UpdateProfileInput{
		Name:      req.Name,
		Allergens: req.Alergens,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserDetailResponse(user))
}

// UploadAvatar replaces the caller's profile picture.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		return domainerrors.NewFieldError(avatarFormField, "file should not be empty")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read uploaded file")
	}

	url, err := h.profileUC.UploadAvatar(c.Request().Context(), caller.UserID, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, avatarResponse{Avatar: url})
}
