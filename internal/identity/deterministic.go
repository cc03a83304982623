// Package identity derives collision-free identifiers for generated pages and
// block instances. Identifiers are deterministic functions of their inputs so
// repeated generation runs over the same profile produce stable IDs, and
// concurrent workers never race on a shared counter.
package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
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

// PageUUID identifies a generated page by its slug.
func PageUUID(slug string) uuid.UUID {
	return UUID("go-sitegen:page:" + strings.ToLower(strings.TrimSpace(slug)))
}

// BlockInstanceUUID identifies a block instance by its page, type, and position.
func BlockInstanceUUID(pageSlug, blockType string, position int) uuid.UUID {
	return UUID("go-sitegen:block:" + strings.ToLower(strings.TrimSpace(pageSlug)) + ":" +
		strings.ToLower(strings.TrimSpace(blockType)) + ":" + strconv.Itoa(position))
}

// VariantSeed derives a stable 64-bit seed for variant selection from the
// business, service, and city a page is generated for. Identical inputs pick
// identical variants; sibling pages still diverge.
func VariantSeed(businessID, service, city string) int64 {
	uid := UUID("go-sitegen:variant:" + strings.ToLower(strings.TrimSpace(businessID)) + ":" +
		strings.ToLower(strings.TrimSpace(service)) + ":" + strings.ToLower(strings.TrimSpace(city)))
	bytes := uid[:]
	var seed int64
	for i := 0; i < 8; i++ {
		seed = seed<<8 | int64(bytes[i])
	}
	if seed < 0 {
		seed = -seed
	}
	return seed
}

// NewIDGenerator returns a generator minting random V4 UUIDs. It is the
// default for editor-authored instances where no stable key exists.
func NewIDGenerator() func() uuid.UUID {
	return uuid.New
}
