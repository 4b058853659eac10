package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// ResetCodeTTL is how long a recovery code stays redeemable.
	ResetCodeTTL = 15 * time.Minute

	// ResetCooldown is the minimum gap between recovery codes for one account.
	ResetCooldown = 60 * time.Second
)

var resetCodeMax = big.NewInt(1000000)

// NewResetCode returns a uniformly random 6-digit code, zero padded.
func NewResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, resetCodeMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
