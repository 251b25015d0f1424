// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

// Package vault stores request attachments encrypted at rest. Files are
// written as opaque blobs under a configured directory; names on disk carry
// the owning request's reference number so an operator can locate a file
// without decrypting anything.
package vault

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncastillo/eserbisyo/internal/crypto"
)

// StoreResult reports where an attachment landed. FellBack is set when the
// requested subdirectory could not be created and the file was written to
// the vault root instead; the write itself still succeeded.
type StoreResult struct {
	// StoredName is the name to persist on the request row. It is relative
	// to the vault root and includes the subdirectory when one was used.
	StoredName string

	FellBack bool
}

// FileVault encrypts attachments with the crypto service and keeps them
// under baseDir. Safe for concurrent use; every operation works on distinct
// files and the underlying Service is stateless.
type FileVault struct {
	baseDir string
	crypto  crypto.Service
}

// NewFileVault returns a vault rooted at baseDir. The directory is created
// eagerly so a misconfigured path fails at startup rather than on the first
// upload.
func NewFileVault(baseDir string, cryptoService crypto.Service) (*FileVault, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("create vault dir %q: %w", baseDir, err)
	}

	return &FileVault{baseDir: baseDir, crypto: cryptoService}, nil
}

// Store encrypts content and writes it under subDir (relative to the vault
// root). The on-disk name is "<reference>_<original base>-<tag><ext>.enc",
// where tag is a short random hex string: names are never reused, so a
// re-upload of the same file leaves the earlier blob intact.
//
// If subDir cannot be created the file is written to the vault root and the
// result's FellBack flag is set, so the caller can log the degradation
// without failing the upload.
func (v *FileVault) Store(content []byte, originalName, reference, subDir string) (StoreResult, error) {
	name := storedName(originalName, reference)

	blob, err := v.crypto.EncryptBlob(content)
	if err != nil {
		return StoreResult{}, fmt.Errorf("encrypt attachment: %w", err)
	}

	result := StoreResult{StoredName: name}

	dir := v.baseDir
	if subDir != "" {
		candidate := filepath.Join(v.baseDir, filepath.Clean("/"+subDir))
		if mkErr := os.MkdirAll(candidate, 0o750); mkErr != nil {
			result.FellBack = true
		} else {
			dir = candidate
			result.StoredName = filepath.ToSlash(filepath.Join(strings.Trim(filepath.Clean("/"+subDir), "/"), name))
		}
	}

	if err := os.WriteFile(filepath.Join(dir, name), blob, 0o640); err != nil {
		return StoreResult{}, fmt.Errorf("write attachment: %w", err)
	}

	return result, nil
}

// Retrieve reads and decrypts the file previously written under storedName.
// Returns ErrNotFound when the file does not exist and the crypto package's
// ErrDecryptionFailed when it exists but cannot be opened; callers rely on
// the distinction to tell a bad link from a corrupted blob.
func (v *FileVault) Retrieve(storedName string) ([]byte, error) {
	path, err := v.resolve(storedName)
	if err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, storedName)
		}
		return nil, fmt.Errorf("read attachment: %w", err)
	}

	plaintext, err := v.crypto.DecryptBlob(blob)
	if err != nil {
		return nil, fmt.Errorf("attachment %s: %w", storedName, err)
	}

	return plaintext, nil
}

// Remove deletes a stored attachment. Missing files are not an error; the
// vault is best effort on cleanup.
func (v *FileVault) Remove(storedName string) error {
	path, err := v.resolve(storedName)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove attachment: %w", err)
	}

	return nil
}

// resolve maps a stored name to an absolute path inside the vault,
// rejecting names that would escape the root.
func (v *FileVault) resolve(storedName string) (string, error) {
	if storedName == "" {
		return "", ErrInvalidName
	}

	cleaned := filepath.Clean("/" + filepath.FromSlash(storedName))
	if cleaned == "/" || cleaned == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, storedName)
	}

	return filepath.Join(v.baseDir, cleaned), nil
}

// storedName builds the on-disk file name. The original extension is kept
// so the MIME type survives a round trip; everything path-like is stripped.
// The random tag keeps a repeated upload from overwriting the earlier blob.
func storedName(originalName, reference string) string {
	base := filepath.Base(originalName)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	stem = sanitize(stem)
	if stem == "" {
		stem = "attachment"
	}

	entropy := make([]byte, 3)
	_, _ = rand.Read(entropy)

	return fmt.Sprintf("%s_%s-%s%s.enc", sanitize(reference), stem, hex.EncodeToString(entropy), ext)
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '-'
		}
	}, s)
}
