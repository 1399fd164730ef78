package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"sportsgate-hq/sportsgate/pkg/cli"
	"sportsgate-hq/sportsgate/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file without starting the server.

All validation errors are reported at once, not just the first one.

Examples:
  # Validate the default config
  sportsgate validate

  # Validate a specific file
  sportsgate validate --config /etc/sportsgate/config.yaml`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Printf("✗ Configuration invalid (%d errors):\n", len(verrs))
			for _, verr := range verrs {
				fmt.Printf("  - %s: %s\n", verr.Field, verr.Message)
			}
			return cli.NewConfigError("", "configuration validation failed")
		}
		return cli.NewConfigError("", err.Error())
	}

	fmt.Println("✓ Configuration valid")
	fmt.Printf("  provider:   %s\n", cfg.Provider.Name)
	fmt.Printf("  listen:     %s\n", cfg.Server.ListenAddress)
	fmt.Printf("  rate limit: %d requests / %s\n", cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	fmt.Printf("  retries:    %d\n", cfg.Retry.MaxRetries)
	if cfg.Audit.Enabled {
		fmt.Printf("  audit:      %s\n", cfg.Audit.Backend)
	} else {
		fmt.Println("  audit:      disabled")
	}
	return nil
}
