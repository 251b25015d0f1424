package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Security struct {
		VerificationHashKey string `json:"verification_hash_key"`
		FieldEncryptionKey  string `json:"field_encryption_key"`
	} `json:"security,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Vault struct {
			Dir       string `json:"dir"`
			MasterKey string `json:"master_key"`
		} `json:"vault,omitempty"`
	} `json:"storage,omitempty"`

	Documents struct {
		VerifyBaseURL  string   `json:"verify_base_url"`
		MaxUploadBytes int64    `json:"max_upload_bytes"`
		RenderTimeout  Duration `json:"render_timeout"`
	} `json:"documents,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Security: Security{
			VerificationHashKey: jsonCfg.Security.VerificationHashKey,
			FieldEncryptionKey:  jsonCfg.Security.FieldEncryptionKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Vault: Vault{
				Dir:       jsonCfg.Storage.Vault.Dir,
				MasterKey: jsonCfg.Storage.Vault.MasterKey,
			},
		},
		Documents: Documents{
			VerifyBaseURL:  jsonCfg.Documents.VerifyBaseURL,
			MaxUploadBytes: jsonCfg.Documents.MaxUploadBytes,
			RenderTimeout:  time.Duration(jsonCfg.Documents.RenderTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
