package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// Alphabet for recovery codes: no 0/O or 1/I, codes get read back over the
// phone or typed from paper.
const recoveryCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the
// requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// NewRecoveryCode generates an "ASC-XXXX-XXXX-XXXX" one-time recovery code.
func NewRecoveryCode() (string, error) {
	groups := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		group, err := RandomString(4, recoveryCodeAlphabet)
		if err != nil {
			return "", err
		}
		groups = append(groups, group)
	}
	return "ASC-" + strings.Join(groups, "-"), nil
}
