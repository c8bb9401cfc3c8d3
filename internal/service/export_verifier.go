package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// ExportVerifier gates report exports behind a shared secret.
type ExportVerifier interface {
	Verify(secret string) bool
}

// StaticVerifier compares against a configured plain-text password.
type StaticVerifier struct {
	password string
}

func NewStaticVerifier(password string) *StaticVerifier {
	return &StaticVerifier{password: password}
}

// Verify reports an exact match. An unconfigured password never matches.
func (v *StaticVerifier) Verify(secret string) bool {
	if v.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(v.password)) == 1
}

// BcryptVerifier checks the secret against a bcrypt hash.
type BcryptVerifier struct {
	hash []byte
}

func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: []byte(hash)}
}

func (v *BcryptVerifier) Verify(secret string) bool {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(secret)) == nil
}

// NewExportVerifier prefers the hash when one is configured.
func NewExportVerifier(password, passwordHash string) ExportVerifier {
	if passwordHash != "" {
		return NewBcryptVerifier(passwordHash)
	}
	return NewStaticVerifier(password)
}
