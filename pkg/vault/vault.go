package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Payment-gateway credentials are stored encrypted with AES-256-GCM.
// The nonce is generated fresh per encryption and stored alongside the
// ciphertext as "<ivBase64>:<ciphertextBase64>". The 256-bit key is
// operator-managed and supplied as a 64-character hex string.

const ivLength = 12

var keyPattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

var ErrInvalidKey = errors.New("invalid encryption key: expected 64 hex characters (32 bytes)")

// DecryptionError means the ciphertext failed authentication or was
// malformed. Money-moving callers must treat it as fatal to the
// operation, never as a silent default.
type DecryptionError struct {
	Reason string
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed: %s", e.Reason)
}

// Encrypted holds one encrypted value with its nonce, both base64.
type Encrypted struct {
	Ciphertext string
	IV         string
}

// IsValidKey reports whether key has the 64-hex-character shape. It is
// a guard against misconfiguration, not a security boundary.
func IsValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

func newGCM(hexKey string) (cipher.AEAD, error) {
	if !IsValidKey(hexKey) {
		return nil, ErrInvalidKey
	}
	keyBytes, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt encrypts plaintext with AES-256-GCM under a fresh random
// 96-bit nonce.
func Encrypt(plaintext, hexKey string) (*Encrypted, error) {
	gcm, err := newGCM(hexKey)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, []byte(plaintext), nil)
	return &Encrypted{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(iv),
	}, nil
}

// Decrypt reverses Encrypt. Any authentication-tag mismatch or
// malformed input yields a DecryptionError.
func Decrypt(ciphertext, iv, hexKey string) (string, error) {
	gcm, err := newGCM(hexKey)
	if err != nil {
		return "", err
	}

	ctBytes, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", &DecryptionError{Reason: "malformed ciphertext encoding"}
	}
	ivBytes, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return "", &DecryptionError{Reason: "malformed nonce encoding"}
	}
	if len(ivBytes) != ivLength {
		return "", &DecryptionError{Reason: "unexpected nonce length"}
	}

	plaintext, err := gcm.Open(nil, ivBytes, ctBytes, nil)
	if err != nil {
		return "", &DecryptionError{Reason: "authentication failed"}
	}
	return string(plaintext), nil
}

// EncodeField packs an encrypted value into the "<iv>:<ciphertext>"
// storage form.
func EncodeField(e *Encrypted) string {
	return e.IV + ":" + e.Ciphertext
}

// DecodeField splits a stored "<iv>:<ciphertext>" field.
func DecodeField(field string) (*Encrypted, error) {
	iv, ciphertext, ok := strings.Cut(field, ":")
	if !ok || iv == "" || ciphertext == "" {
		return nil, &DecryptionError{Reason: "malformed stored field"}
	}
	return &Encrypted{Ciphertext: ciphertext, IV: iv}, nil
}

// EncryptField encrypts plaintext and returns the storage form.
func EncryptField(plaintext, hexKey string) (string, error) {
	enc, err := Encrypt(plaintext, hexKey)
	if err != nil {
		return "", err
	}
	return EncodeField(enc), nil
}

// DecryptField decrypts a stored "<iv>:<ciphertext>" field.
func DecryptField(field, hexKey string) (string, error) {
	enc, err := DecodeField(field)
	if err != nil {
		return "", err
	}
	return Decrypt(enc.Ciphertext, enc.IV, hexKey)
}

// GenerateKey returns a new random 256-bit key as 64 hex characters.
func GenerateKey() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}
