package auth

import (
	"crypto/subtle"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an admin credential pair. Implementations can be
// swapped for a real identity provider without touching the intake core.
type CredentialVerifier interface {
	Verify(username, password string) bool
	Update(newPassword string) error
}

// StaticVerifier validates against a single configured credential set. The
// password is held either as a bcrypt hash or plaintext; Update rotates the
// in-process value only (durable credential storage is out of scope).
type StaticVerifier struct {
	mu           sync.RWMutex
	username     string
	passwordHash string
	password     string
	bcryptCost   int
}

// NewStaticVerifier builds a verifier. A non-empty passwordHash takes
// precedence over the plaintext password.
func NewStaticVerifier(username, password, passwordHash string, bcryptCost int) *StaticVerifier {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &StaticVerifier{
		username:     username,
		passwordHash: passwordHash,
		password:     password,
		bcryptCost:   bcryptCost,
	}
}

// Verify reports whether the pair matches the configured credentials.
func (v *StaticVerifier) Verify(username, password string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) != 1 {
		return false
	}
	if v.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
}

// Update replaces the stored password with a bcrypt hash of the new one.
func (v *StaticVerifier) Update(newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), v.bcryptCost)
	if err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.passwordHash = string(hashed)
	v.password = ""
	return nil
}
