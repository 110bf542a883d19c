package e2e

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseGatewaySuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests.
// The whole suite is skipped when no gateway address is configured so
// the scenario only runs against a live deployment.
func (s *BaseGatewaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.GatewayAddr == "" {
		s.T().Skip("E2E_GATEWAY_ADDR not set, skipping gateway scenario")
	}
}

func (s *BaseGatewaySuite) logger() *slog.Logger {
	if s.Config.DebugJSON {
		return logs.GetLoggerFromLevel(slog.LevelDebug)
	}
	return logs.GetLoggerFromLevel(slog.LevelInfo)
}

// HTTPClient initializes a resty client with logging, colors, and JSON debugging
func (s *BaseGatewaySuite) HTTPClient(t *testing.T, name string) *resty.Client {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	// 2. Create the client with a response hook for logging
	client := resty.New().
		SetBaseURL(s.Config.GatewayAddr).
		SetAuthToken(s.Config.GatewayToken).
		SetTimeout(60 * time.Second).
		OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "HTTP %s %s [%s] in %v",
				resp.Request.Method, resp.Request.URL, resp.Status(), resp.Time())

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, resp.Request.Body)
				fmt.Fprintln(&logBuilder, "RESPONSE:")
				fmt.Fprintln(&logBuilder, string(resp.Body()))
			}
			t.Log(logBuilder.String())
			return nil
		})

	return client
}
