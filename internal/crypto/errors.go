package crypto

import "errors"

// ErrDecryptionFailed is returned when a blob cannot be decrypted: it is
// truncated, corrupted, or was encrypted under a different key. Callers must
// not confuse it with a missing file; the vault reports those separately.
var ErrDecryptionFailed = errors.New("decryption failed")
