package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// ContentHash returns the first 16 hex characters of the SHA-256 of input.
func ContentHash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])[:16]
}

// SyntheticPostURL builds a stable address for a post that has no permalink,
// so the same text on the same profile always maps to the same draft.
func SyntheticPostURL(platform, handle, text string) string {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	return fmt.Sprintf("https://%s.com/%s/posts/%s", platform, handle, ContentHash(strings.TrimSpace(text)))
}
