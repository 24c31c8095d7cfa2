package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keySize = 32

// Keys holds the independent secrets derived from SESSION_SECRET.
type Keys struct {
	Session []byte
	CSRF    []byte
}

// DeriveKeys expands a master secret into purpose-bound keys with HKDF-SHA256.
// An empty secret yields random keys, so sessions do not survive a restart.
func DeriveKeys(secret string) (*Keys, error) {
	master := []byte(secret)
	if len(master) == 0 {
		master = make([]byte, keySize)
		if _, err := rand.Read(master); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}

	session, err := expand(master, "nihongoclass session token")
	if err != nil {
		return nil, err
	}
	csrf, err := expand(master, "nihongoclass csrf")
	if err != nil {
		return nil, err
	}
	return &Keys{Session: session, CSRF: csrf}, nil
}

func expand(master []byte, info string) ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("failed to derive %s key: %w", info, err)
	}
	return key, nil
}

// Fingerprint returns a short, non-reversible identifier for a key, for logs.
func Fingerprint(key []byte) string {
	sum := sha256.Sum256(key)
	return hex.EncodeToString(sum[:4])
}
