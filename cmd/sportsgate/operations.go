package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"sportsgate-hq/sportsgate/pkg/cli"
	"sportsgate-hq/sportsgate/pkg/dispatch"
	"sportsgate-hq/sportsgate/pkg/limits/ratelimit"
	"sportsgate-hq/sportsgate/pkg/operations"
	"sportsgate-hq/sportsgate/pkg/providerfactory"
	"sportsgate-hq/sportsgate/pkg/providers"
	"sportsgate-hq/sportsgate/pkg/retry"
)

var operationsFlags struct {
	output string
}

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List the registered operations and their payload contracts",
	Long: `List every operation the proxy accepts, along with the payload
fields each one requires.

Examples:
  # Human readable listing
  sportsgate operations

  # Machine readable listing
  sportsgate operations --output json`,
	RunE: listOperations,
}

func init() {
	rootCmd.AddCommand(operationsCmd)

	operationsCmd.Flags().StringVarP(&operationsFlags.output, "output", "o", "text", "output format (text, json)")
}

func listOperations(cmd *cobra.Command, args []string) error {
	// A throwaway registry is enough to enumerate the contracts; nothing
	// is dispatched here.
	provider, err := providerfactory.NewProvider(providers.ProviderConfig{Name: "openliga"})
	if err != nil {
		return cli.NewCommandError("operations", err)
	}
	registry := dispatch.NewRegistry(
		ratelimit.NewSlidingWindow(1, time.Minute),
		retry.New(retry.Policy{}),
	)
	if err := operations.RegisterAll(registry, provider); err != nil {
		return cli.NewCommandError("operations", err)
	}

	infos := registry.ListOperations()

	switch cli.OutputFormat(operationsFlags.output) {
	case cli.FormatJSON:
		formatter := &cli.JSONFormatter{Indent: true}
		return formatter.FormatTo(os.Stdout, infos)
	case cli.FormatText:
		for _, info := range infos {
			fields := make([]string, 0, len(info.Fields))
			for _, f := range info.Fields {
				fields = append(fields, fmt.Sprintf("%s (%s)", f.Name, f.Type))
			}
			if len(fields) == 0 {
				fmt.Printf("%s\n", info.Name)
			} else {
				fmt.Printf("%s\n  payload: %s\n", info.Name, strings.Join(fields, ", "))
			}
		}
		return nil
	default:
		return cli.NewConfigError("output", fmt.Sprintf("unsupported format: %s", operationsFlags.output))
	}
}
