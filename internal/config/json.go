package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so it can be decoded from JSON strings such
// as "1h" or "30s".
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler for Duration. Accepts either a
// quoted duration string ("30s") or a bare number of nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case float64:
		d.Duration = time.Duration(v)
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", v, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value: %s", string(data))
	}
}

// jsonConfig mirrors [StructuredConfig] with JSON tags and the Duration
// wrapper, since time.Duration has no native JSON representation.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app"`
	Storage struct {
		Driver string `json:"driver"`
		DSN    string `json:"database_uri"`
	} `json:"storage"`
	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`
}

// parseJSON reads the JSON configuration file at path and converts it into
// a [StructuredConfig] suitable for merging with the other sources.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON config file: %w", err)
	}

	var fileCfg jsonConfig
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error parsing JSON config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  fileCfg.App.TokenSignKey,
			TokenIssuer:   fileCfg.App.TokenIssuer,
			TokenDuration: fileCfg.App.TokenDuration.Duration,
		},
		Storage: Storage{
			DB: DB{
				Driver: fileCfg.Storage.Driver,
				DSN:    fileCfg.Storage.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.Address,
			RequestTimeout: fileCfg.Server.RequestTimeout.Duration,
		},
	}, nil
}
