package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// CalculatorUUID returns the stable identity for a calculator definition.
func CalculatorUUID(calculatorID string) uuid.UUID {
	return UUID("kalcufy:calculator:" + strings.ToLower(strings.TrimSpace(calculatorID)))
}

// SlugEntryUUID returns the stable identity for a persisted slug entry.
func SlugEntryUUID(calculatorID string) uuid.UUID {
	return UUID("kalcufy:slug_entry:" + strings.ToLower(strings.TrimSpace(calculatorID)))
}
