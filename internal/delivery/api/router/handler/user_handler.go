// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"allergo/internal/delivery/api/response"
	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/entity"
	"allergo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// UserHandler serves account, credential and session endpoints.
type UserHandler struct {
	userUC    usecase.UserUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:    params.UserUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type sendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  int    `json:"code" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type updateCredentialsRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

type signupResponse struct {
	UUID string `json:"uuid"`
}

type resetTokenResponse struct {
	Token string `json:"token"`
}

// Signup registers an inactive account.
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID, err := h.userUC.Signup(c.Request().Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, signupResponse{UUID: userID.String()})
}

// SendActivationOTP mails an activation code.
func (h *UserHandler) SendActivationOTP(c echo.Context) error {
	return h.sendOTP(c, entity.OTPPurposeActivation)
}

// SendResetPasswordOTP mails a password reset code.
func (h *UserHandler) SendResetPasswordOTP(c echo.Context) error {
	return h.sendOTP(c, entity.OTPPurposePasswordReset)
}

func (h *UserHandler) sendOTP(c echo.Context, purpose entity.OTPPurpose) error {
	var req sendOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.SendOTP(c.Request().Context(), req.Email, purpose); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "otp sent")
}

// Activate consumes an activation code.
func (h *UserHandler) Activate(c echo.Context) error {
	var req verifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.userUC.VerifyOTP(c.Request().Context(), usecase.VerifyOTPInput{
		Email:   req.Email,
		Code:    req.Code,
		Purpose: entity.OTPPurposeActivation,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "account activated")
}

// VerifyResetPasswordOTP exchanges a reset code for a reset token.
func (h *UserHandler) VerifyResetPasswordOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.VerifyOTP(c.Request().Context(), usecase.VerifyOTPInput{
		Email:   req.Email,
		Code:    req.Code,
		Purpose: entity.OTPPurposePasswordReset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resetTokenResponse{Token: output.ResetToken})
}

// ResetPassword sets a new password using a reset token.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.userUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:    req.Token,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "password updated")
}

// Login opens a session for the calling device.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Device:   deliverycontext.GetDeviceMeta(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenPairResponse(pair))
}

// Refresh rotates the session behind a refresh token.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.userUC.Refresh(c.Request().Context(), req.RefreshToken, deliverycontext.GetDeviceMeta(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenPairResponse(pair))
}

// Logout revokes the caller's session.
func (h *UserHandler) Logout(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), caller.Claims); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "logged out")
}

// GetDetail returns the caller's account and profile.
func (h *UserHandler) GetDetail(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetDetail(c.Request().Context(), caller.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserDetailResponse(user))
}

// UpdateCredentials changes the caller's email and/or password. Mounted behind a
// fresh-token-only guard.
func (h *UserHandler) UpdateCredentials(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req updateCredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.userUC.UpdateCredentials(c.Request().Context(), caller, usecase.UpdateCredentialsInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "credentials updated")
}
