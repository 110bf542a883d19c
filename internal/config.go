// Package internal holds process-level configuration shared by every
// subcommand.
package internal

import (
	"chat-ops/domain"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	GatewayURL     string        `env:"GATEWAY_URL,required=true" validate:"required,url"`
	GatewayToken   string        `env:"GATEWAY_TOKEN,required=true" validate:"required"`
	GatewayTimeout time.Duration `env:"GATEWAY_TIMEOUT,default=30s"`

	// Pacing. The defaults mirror what the gateway tolerates without
	// throttling a session; lowering them is at the operator's own risk.
	VerifyDelay       time.Duration `env:"VERIFY_DELAY,default=3s"`
	FallbackDelay     time.Duration `env:"FALLBACK_DELAY,default=2s"`
	BetweenItemsDelay time.Duration `env:"BETWEEN_ITEMS_DELAY,default=5s"`
	AfterFailureDelay time.Duration `env:"AFTER_FAILURE_DELAY,default=2s"`

	ResultDir        string        `env:"RESULT_DIR,default=results" validate:"required"`
	HistoryFilepath  string        `env:"HISTORY_FILEPATH,default=.chat-ops/history"`
	ProgressInterval time.Duration `env:"PROGRESS_INTERVAL,default=10s"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	Colours          bool          `env:"COLOURS,default=true"`
}

// Validate rejects configurations that would make a run unsafe rather
// than merely slow.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.VerifyDelay < 0 || c.FallbackDelay < 0 || c.BetweenItemsDelay < 0 || c.AfterFailureDelay < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	return nil
}

func (c Config) DelayPolicy() domain.DelayPolicy {
	return domain.DelayPolicy{
		Verify:       c.VerifyDelay,
		Fallback:     c.FallbackDelay,
		BetweenItems: c.BetweenItemsDelay,
		AfterFailure: c.AfterFailureDelay,
	}
}
