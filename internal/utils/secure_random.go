package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// OrderNumberPrefix starts every generated order number.
const OrderNumberPrefix = "BMF"

// GenerateSecureRandomBase36 returns n cryptographically random upper-case base-36 characters.
func GenerateSecureRandomBase36(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	alphabetLen := big.NewInt(int64(len(base36Alphabet)))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		sb.WriteByte(base36Alphabet[idx.Int64()])
	}
	return sb.String(), nil
}

// GenerateOrderNumber builds "BMF" + base-36 millisecond timestamp + 4 random characters.
// Uniqueness is probabilistic; callers rely on the database constraint.
func GenerateOrderNumber(now time.Time) (string, error) {
	suffix, err := GenerateSecureRandomBase36(4)
	if err != nil {
		return "", err
	}
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return OrderNumberPrefix + ts + suffix, nil
}
