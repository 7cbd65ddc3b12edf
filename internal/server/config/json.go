package config

import (
	"encoding/json"
	"os"

	"github.com/SteveJRobertson/gatekeeper/internal/flagx"
	"github.com/SteveJRobertson/gatekeeper/internal/timex"
)

// JsonConfig is the DTO used for reading JSON configuration files. Duration
// fields accept both strings such as "5m" and integer nanoseconds; after
// unmarshalling they are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
}

// parseJson overlays values from a JSON file onto config. The file path comes
// from the -c/-config flags; when absent, nothing is loaded. Unreadable or
// invalid files panic: a server with half-applied config should not start.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
}
