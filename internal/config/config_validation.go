// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error naming the
// incomplete group otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Vault.MasterKey == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Security.VerificationHashKey == "" {
		return ErrInvalidSecurityConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
