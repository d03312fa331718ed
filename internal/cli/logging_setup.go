package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/logging"
)

// setupLogging configures the package logger from config file, environment,
// and CLI flags. --debug forces debug level with console output.
func setupLogging(cmd *cobra.Command, cfg *config.Config) {
	loggingCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	logger = logging.ComponentLogger(logging.New(loggingCfg), "cli")
	logger.Debug().Str("command", cmd.Name()).Msg("command started")
}
