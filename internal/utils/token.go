package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// syncKeyBytes is the entropy of a freshly minted sync key. 32 random bytes
// keep the token unguessable; the encoded form stays URL-safe so keys can be
// passed in request bodies and config files without escaping.
const syncKeyBytes = 32

// NewSyncKey mints an opaque capability token identifying one synchronization
// group. The token carries no identity and is never derivable from group
// contents.
func NewSyncKey() (string, error) {
	buf := make([]byte, syncKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating sync key: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
