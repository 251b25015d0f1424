// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ivSize is the length of the initialization vector prepended to every
// encrypted blob. Decryption splits the first 16 bytes off the blob.
const ivSize = 16

// cryptoService is the private implementation of [Service].
//
// Both symmetric keys are derived at construction time by hashing the
// configured master secrets with SHA-256, which guarantees exactly 32 key
// bytes (AES-256) regardless of the secret's length.
type cryptoService struct {
	fileKey  []byte
	fieldKey []byte
	hashKey  []byte
}

// NewService constructs a [Service] from the server-held secrets.
//
// Parameters:
//   - vaultMasterKey: master secret for attachment blob encryption.
//   - fieldKey: master secret for field-level encryption. May equal
//     vaultMasterKey in small deployments; separate keys are recommended.
//   - verificationHashKey: HMAC secret for verification tokens.
func NewService(vaultMasterKey, fieldKey, verificationHashKey string) Service {
	fileSum := sha256.Sum256([]byte(vaultMasterKey))
	fieldSum := sha256.Sum256([]byte(fieldKey))

	return &cryptoService{
		fileKey:  fileSum[:],
		fieldKey: fieldSum[:],
		hashKey:  []byte(verificationHashKey),
	}
}

// EncryptBlob implements [Service]. It seals plaintext with AES-256-GCM
// under the file key, using a random 16-byte nonce prepended to the
// ciphertext: blob = iv ‖ ciphertext ‖ tag. The authentication tag lets
// DecryptBlob distinguish corruption and wrong-key failures from success.
func (c *cryptoService) EncryptBlob(plaintext []byte) ([]byte, error) {
	return encrypt(c.fileKey, plaintext)
}

// DecryptBlob implements [Service]. It splits the 16-byte IV off the blob
// and opens the remainder with AES-256-GCM. Returns [ErrDecryptionFailed]
// if the blob is shorter than the IV, the ciphertext is corrupted, or the
// key is wrong (authentication-tag mismatch).
func (c *cryptoService) DecryptBlob(blob []byte) ([]byte, error) {
	return decrypt(c.fileKey, blob)
}

// EncryptField implements [Service]. The IV and ciphertext are hex-encoded
// and joined with a colon so the value fits a text column:
// "ivhex:cipherhex". Empty input is returned unchanged.
func (c *cryptoService) EncryptField(plaintext string) (string, error) {
	if plaintext == "" {
		return plaintext, nil
	}

	blob, err := encrypt(c.fieldKey, []byte(plaintext))
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(blob[:ivSize]) + ":" + hex.EncodeToString(blob[ivSize:]), nil
}

// DecryptField implements [Service]. Values without the "iv:" shape are
// returned unchanged so rows written before field encryption was enabled
// keep reading correctly.
func (c *cryptoService) DecryptField(encoded string) (string, error) {
	ivHex, cipherHex, found := strings.Cut(encoded, ":")
	if !found {
		return encoded, nil
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", fmt.Errorf("%w: decoding iv: %w", ErrDecryptionFailed, err)
	}
	ciphertext, err := hex.DecodeString(cipherHex)
	if err != nil {
		return "", fmt.Errorf("%w: decoding ciphertext: %w", ErrDecryptionFailed, err)
	}

	plaintext, err := decrypt(c.fieldKey, append(iv, ciphertext...))
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// HashPassword implements [Service] using bcrypt with the default cost.
func (c *cryptoService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword implements [Service].
func (c *cryptoService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerificationToken implements [Service]. It computes
// HMAC-SHA256(referenceNo) under the verification hash key and returns the
// hex digest. The token is infeasible to forge without the secret and
// deterministic for a given reference number.
func (c *cryptoService) VerificationToken(referenceNo string) string {
	mac := hmac.New(sha256.New, c.hashKey)
	mac.Write([]byte(referenceNo))
	return hex.EncodeToString(mac.Sum(nil))
}

// encrypt seals plaintext with AES-256-GCM under key using a fresh random
// 16-byte nonce, returning iv ‖ ciphertext.
func encrypt(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	// Prepend the IV so the decryption side can locate it.
	ciphertext := gcm.Seal(nil, iv, plaintext, nil)
	return append(iv, ciphertext...), nil
}

// decrypt reverses encrypt. All failures collapse to ErrDecryptionFailed so
// callers never confuse a bad blob with a missing one.
func decrypt(key, blob []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	if len(blob) < ivSize {
		return nil, fmt.Errorf("%w: blob shorter than iv", ErrDecryptionFailed)
	}

	// Split the blob into IV and actual ciphertext.
	iv, ciphertext := blob[:ivSize], blob[ivSize:]

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		// Tag mismatch: corrupted ciphertext or wrong master key.
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
