package store

import (
	"encoding/base64"
	"strings"
)

// Record keys. A key is a "/"-separated path; the last segment is the file
// name on disk and the segments before it are directories.
const (
	KeyOverrides        = "overlay/overrides"
	KeyCustomItems      = "overlay/custom"
	KeyTombstones       = "overlay/tombstones"
	KeyCustomCategories = "overlay/categories"
	KeyTargets          = "progress/targets"
	KeyFavorites        = "ledger/favorites"
	KeyPinned           = "ledger/pinned"
	KeyRecent           = "ledger/recent"

	PrefixOrder = "order/"
	PrefixDay   = "days/"
)

// OrderKey is the record key of the order list for a category key. Category
// keys are free text, so they are encoded to stay a single path segment.
func OrderKey(categoryKey string) string {
	return PrefixOrder + encodeSegment(categoryKey)
}

// CategoryForOrderKey reverses OrderKey.
func CategoryForOrderKey(key string) (string, bool) {
	if !strings.HasPrefix(key, PrefixOrder) {
		return "", false
	}
	return decodeSegment(strings.TrimPrefix(key, PrefixOrder))
}

// DayKey is the record key holding the counters for a day, e.g. "2024-05-03".
func DayKey(day string) string {
	return PrefixDay + day
}

// DayForKey reverses DayKey.
func DayForKey(key string) (string, bool) {
	if !strings.HasPrefix(key, PrefixDay) {
		return "", false
	}
	return strings.TrimPrefix(key, PrefixDay), true
}

func encodeSegment(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func decodeSegment(s string) (string, bool) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", false
	}
	return string(b), true
}
