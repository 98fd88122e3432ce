package utils

import (
	"crypto/rand"
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== ORDER CODE ====================

const (
	orderCodePrefix = "AT-"
	orderCodeLength = 8

	// Uppercase letters and digits minus the visually ambiguous
	// characters (I, O, 0, 1).
	orderCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GenerateOrderCode creates a short human-readable order identifier,
// e.g. AT-7KQX2MNP. The code doubles as the public tracking
// credential, so the bytes come from crypto/rand. Uniqueness is the
// caller's concern.
func GenerateOrderCode() string {
	buf := make([]byte, orderCodeLength)
	if _, err := rand.Read(buf); err != nil {
		panic("order code entropy: " + err.Error())
	}

	var sb strings.Builder
	sb.WriteString(orderCodePrefix)
	for _, b := range buf {
		// The alphabet holds 32 characters, so masking keeps the
		// draw uniform.
		sb.WriteByte(orderCodeAlphabet[int(b)&31])
	}
	return sb.String()
}
