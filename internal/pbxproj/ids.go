package pbxproj

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// IDLen is the length of an object identifier: 12 bytes as uppercase hex.
const IDLen = 24

// maxAttempts bounds re-minting after collisions. Hitting it means the
// entropy source is broken, not that the id space is full.
const maxAttempts = 16

// Minter hands out object identifiers that are unique within its
// lifetime. Identifiers carry no meaning across runs.
type Minter struct {
	rand io.Reader
	seen map[string]bool
}

// NewMinter returns a Minter reading entropy from r, or from crypto/rand
// when r is nil.
func NewMinter(r io.Reader) *Minter {
	if r == nil {
		r = rand.Reader
	}
	return &Minter{rand: r, seen: make(map[string]bool)}
}

// Next returns a fresh identifier: the first 12 bytes of a random UUID in
// uppercase hex.
func (m *Minter) Next() (string, error) {
	for i := 0; i < maxAttempts; i++ {
		u, err := uuid.NewRandomFromReader(m.rand)
		if err != nil {
			return "", fmt.Errorf("mint id: %w", err)
		}
		id := strings.ToUpper(hex.EncodeToString(u[:IDLen/2]))
		if !m.seen[id] {
			m.seen[id] = true
			return id, nil
		}
	}
	return "", fmt.Errorf("mint id: no unique id after %d attempts", maxAttempts)
}

// Len reports how many identifiers have been minted.
func (m *Minter) Len() int {
	return len(m.seen)
}
