package directory

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credential is a bcrypt-hashed login secret.
type Credential struct {
	hash string
}

func NewCredential(plain string, cost int) (Credential, error) {
	if len(plain) == 0 {
		return Credential{}, fmt.Errorf("credential is required")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return Credential{}, fmt.Errorf("failed to hash credential: %w", err)
	}
	return Credential{hash: string(hash)}, nil
}

// CredentialFromHash wraps an already-hashed credential loaded from storage.
func CredentialFromHash(hash string) Credential {
	return Credential{hash: hash}
}

func (c Credential) Hash() string {
	return c.hash
}

// Matches reports whether the plaintext matches the stored hash.
func (c Credential) Matches(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(plain)) == nil
}
