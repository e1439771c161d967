// Package session seals values kept on the client side: the server's
// session cookie and the CLI's local session file.
//
// The key is sha256 of a static secret. The server and the CLI use
// different secrets; the CLI's ships with the binary and only keeps casual
// tampering out of the stored file.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"adpanel/internal/core/domain"
)

const nonceSize = 24

var errShortBlob = errors.New("session: sealed blob too short")

// Sealer encrypts and authenticates session values with secretbox.
type Sealer struct {
	key [32]byte
}

// NewSealer derives the sealing key from secret.
func NewSealer(secret string) *Sealer {
	return &Sealer{key: sha256.Sum256([]byte(secret))}
}

// Seal encodes session as URL-safe base64 ciphertext.
func (s *Sealer) Seal(session domain.Session) (string, error) {
	return s.SealValue(session)
}

// Open decodes a blob produced by Seal. Any failure, including corrupt or
// foreign ciphertext, yields an empty session and false.
func (s *Sealer) Open(blob string) (domain.Session, bool) {
	var session domain.Session
	if err := s.OpenValue(blob, &session); err != nil || session.Empty() {
		return domain.Session{}, false
	}
	return session, true
}

// SealValue seals any JSON-encodable value.
func (s *Sealer) SealValue(v any) (string, error) {
	plain, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var nonce [nonceSize]byte
	if _, err = io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	out := secretbox.Seal(nonce[:], plain, &nonce, &s.key)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// OpenValue reverses SealValue into v.
func (s *Sealer) OpenValue(blob string, v any) error {
	raw, err := base64.RawURLEncoding.DecodeString(blob)
	if err != nil {
		return err
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return errShortBlob
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return errors.New("session: authentication failed")
	}
	return json.Unmarshal(plain, v)
}
