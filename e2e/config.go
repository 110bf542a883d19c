package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	GatewayAddr  string `envconfig:"E2E_GATEWAY_ADDR"`
	GatewayToken string `envconfig:"E2E_GATEWAY_TOKEN"`
	GroupID      string `envconfig:"E2E_GROUP_ID"`
	// E2E_TARGET is the identifier added then removed by the bulk scenario
	Target string `envconfig:"E2E_TARGET"`
	// E2E_DEBUG_JSON allows dumping full HTTP request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
