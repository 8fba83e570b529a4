package vault

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "Typical secret key", plaintext: "sk_live_abcdefghijklmnop"},
		{name: "Empty plaintext", plaintext: ""},
		{name: "Unicode plaintext", plaintext: "секрет-₱-密钥"},
		{name: "Long plaintext", plaintext: string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Encrypt(tt.plaintext, testKey)
			assert.NoError(t, err)

			plain, err := Decrypt(enc.Ciphertext, enc.IV, testKey)
			assert.NoError(t, err)
			assert.Equal(t, tt.plaintext, plain)
		})
	}
}

func TestEncryptUsesFreshNonce(t *testing.T) {
	a, err := Encrypt("same plaintext", testKey)
	assert.NoError(t, err)
	b, err := Encrypt("same plaintext", testKey)
	assert.NoError(t, err)
	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	enc, err := Encrypt("sk_live_secret", testKey)
	assert.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(enc.Ciphertext)
	assert.NoError(t, err)
	raw[0] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = Decrypt(tampered, enc.IV, testKey)
	assert.Error(t, err)
	var decErr *DecryptionError
	assert.ErrorAs(t, err, &decErr)
}

func TestDecryptWrongKey(t *testing.T) {
	enc, err := Encrypt("sk_live_secret", testKey)
	assert.NoError(t, err)

	otherKey := "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	_, err = Decrypt(enc.Ciphertext, enc.IV, otherKey)
	var decErr *DecryptionError
	assert.ErrorAs(t, err, &decErr)
}

func TestIsValidKey(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		valid bool
	}{
		{name: "Valid lowercase", key: testKey, valid: true},
		{name: "Valid uppercase", key: "ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789", valid: true},
		{name: "Too short", key: "abcdef", valid: false},
		{name: "Too long", key: testKey + "00", valid: false},
		{name: "Non-hex characters", key: "z123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef", valid: false},
		{name: "Empty", key: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidKey(tt.key))
		})
	}
}

func TestEncryptRejectsInvalidKey(t *testing.T) {
	_, err := Encrypt("plaintext", "not-a-key")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestFieldCodec(t *testing.T) {
	field, err := EncryptField("whsec_example", testKey)
	assert.NoError(t, err)
	assert.Contains(t, field, ":")

	plain, err := DecryptField(field, testKey)
	assert.NoError(t, err)
	assert.Equal(t, "whsec_example", plain)
}

func TestDecodeFieldMalformed(t *testing.T) {
	for _, field := range []string{"", "noseparator", ":trailing", "leading:"} {
		_, err := DecodeField(field)
		var decErr *DecryptionError
		assert.ErrorAs(t, err, &decErr, "field %q", field)
	}
}

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey()
	assert.NoError(t, err)
	assert.True(t, IsValidKey(key))

	other, err := GenerateKey()
	assert.NoError(t, err)
	assert.NotEqual(t, key, other)
}
