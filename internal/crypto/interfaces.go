package crypto

// Service bundles the cryptographic primitives of the issuance engine:
// symmetric encryption of byte blobs for the attachment vault, field-level
// encryption of short strings, one-way password hashing, and keyed hash
// generation for verification tokens.
//
// All implementations must be safe for concurrent use: every call allocates
// its own IV and no mutable state is shared between calls.
type Service interface {
	// EncryptBlob encrypts plaintext with the derived 256-bit file key.
	// The returned blob is iv (16 bytes) ‖ ciphertext.
	EncryptBlob(plaintext []byte) ([]byte, error)

	// DecryptBlob reverses EncryptBlob. Returns ErrDecryptionFailed if the
	// blob is truncated, corrupted, or was encrypted under a different key.
	DecryptBlob(blob []byte) ([]byte, error)

	// EncryptField encrypts a short sensitive string (e.g. a contact
	// number) into the "ivhex:cipherhex" storage form. Empty input is
	// returned unchanged.
	EncryptField(plaintext string) (string, error)

	// DecryptField reverses EncryptField. Input without the "iv:" shape is
	// returned unchanged, mirroring legacy plaintext rows.
	DecryptField(encoded string) (string, error)

	// HashPassword derives a one-way hash suitable for credential storage.
	HashPassword(password string) (string, error)

	// CheckPassword reports whether password matches the stored hash.
	CheckPassword(hash, password string) bool

	// VerificationToken mints the deterministic keyed hash of a reference
	// number. The same reference and server secret always yield the same
	// token, so re-verification needs nothing persisted beyond the token.
	VerificationToken(referenceNo string) string
}
