package usecase

import (
	"context"

	"allergo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	Device   entity.DeviceMeta
}

// VerifyOTPInput carries a code the user received by email.
type VerifyOTPInput struct {
	Email   string
	Code    int
	Purpose entity.OTPPurpose
}

// ResetPasswordInput carries the reset token issued by a verified password reset OTP.
type ResetPasswordInput struct {
	Token    string
	Email    string
	Password string
}

// UpdateCredentialsInput changes the login email and/or password. Nil fields are left unchanged.
type UpdateCredentialsInput struct {
	Email    *string
	Password *string
}

// --- Output DTOs ---

// VerifyOTPOutput reports what a verified code was exchanged for.
type VerifyOTPOutput struct {
	Purpose entity.OTPPurpose
	// ResetToken is only set for entity.OTPPurposePasswordReset.
	ResetToken string
}

// UserUsecase defines the credential operations: signup, activation, password
// reset and the token lifecycle.
type UserUsecase interface {
	Signup(ctx context.Context, input SignupInput) (uuid.UUID, error)
	SendOTP(ctx context.Context, email string, purpose entity.OTPPurpose) error
	VerifyOTP(ctx context.Context, input VerifyOTPInput) (*VerifyOTPOutput, error)
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	Login(ctx context.Context, input LoginInput) (*entity.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string, device entity.DeviceMeta) (*entity.TokenPair, error)
	Logout(ctx context.Context, claims *entity.AccessClaims) error
	UpdateCredentials(ctx context.Context, identity *entity.Identity, input UpdateCredentialsInput) error
}
