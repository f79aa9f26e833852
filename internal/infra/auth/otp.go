package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"arcade/internal/domain/service"
	"arcade/internal/errors"
)

const otpDigits = 6

// otpGenerator produces 6-digit numeric codes, uniform over 000000-999999.
type otpGenerator struct{}

// NewOTPGenerator is the constructor for otpGenerator.
func NewOTPGenerator() service.OTPGenerator {
	return &otpGenerator{}
}

// Generate returns a fresh 6-digit code. crypto/rand.Int is uniform over
// the half-open range, so no digit position is biased.
func (g *otpGenerator) Generate() (string, error) {
	space := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		space.Mul(space, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, space)
	if err != nil {
		return "", errors.Wrap(err, "failed to draw otp")
	}

	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
