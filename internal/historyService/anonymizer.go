package history

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// avatarPoolSize is the number of stock avatars available for
// anonymized bidders
const avatarPoolSize = 70

// MaskDisplayName masks a resolved display name for public bid
// history. The output preserves the input length and never reveals
// more than the first 3 characters.
func MaskDisplayName(name string) string {
	runes := []rune(strings.TrimSpace(name))

	switch {
	case len(runes) <= 1:
		return string(runes) + "**"
	case len(runes) <= 3:
		return string(runes[:1]) + strings.Repeat("*", len(runes)-1)
	default:
		return string(runes[:3]) + strings.Repeat("*", len(runes)-3)
	}
}

// AnonymousAvatarRef derives a stable avatar reference from a user id.
// FNV-1a is used so the same id maps to the same avatar on every
// runtime; never swap this for a seeded or per-process hash.
func AnonymousAvatarRef(userID string) string {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return fmt.Sprintf("avatar_%02d", h.Sum32()%avatarPoolSize)
}

// FallbackDisplayName is shown when the user directory cannot resolve
// a bidder
func FallbackDisplayName(userID string) string {
	suffix := userID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return "User " + suffix
}
