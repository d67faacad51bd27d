package auth

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"

	"allergo/internal/domain/service"
	"allergo/internal/errors"
)

const (
	otpMin        = 100000
	otpSpan       = 900000
	tokenByteSize = 32
)

type randomSecretGenerator struct{}

// NewSecretGenerator returns a generator backed by crypto/rand.
func NewSecretGenerator() service.SecretGenerator {
	return randomSecretGenerator{}
}

func (randomSecretGenerator) OTP() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return 0, errors.Wrap(err, "generate otp")
	}

	return otpMin + int(n.Int64()), nil
}

func (randomSecretGenerator) Token() (string, error) {
	buf := make([]byte, tokenByteSize)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
