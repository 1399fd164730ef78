/*
Package cli provides command-line utilities for the sportsgate command.

It includes typed command errors, output formatters, and signal handling
helpers shared by the subcommands.

Output Formatting:

Command results can be rendered as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Pass ctx to operations that should stop on shutdown
*/
package cli
