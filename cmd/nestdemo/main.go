package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/nestdemo/internal/config"
	"github.com/mark3labs/nestdemo/internal/demo"
	"github.com/mark3labs/nestdemo/internal/logger"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		_ = logger.Close()
		os.Exit(1)
	}
	_ = logger.Close()
}

var rootCmd = &cobra.Command{
	Use:   "nestdemo",
	Short: "Print a greeting, a sum and two component sums",
	Long: `nestdemo runs a fixed sequence across its packages and prints the results:

  Hello!          lib.Hello
  11              calc.Add(1, 10)
  Hello, World!   common.HelloWorld
  3               MyClass{1, 2}.Sum()
  6               SubClass{1, 2, 3}.Sum()

Logging is off unless NESTDEMO_LOG_FILE (or log_file in nestdemo.yml) is set.`,
	Args:             cobra.NoArgs,
	PersistentPreRun: applyConfig,
	RunE:             runDemo,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setupCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	return demo.Run(cmd.OutOrStdout())
}

// applyConfig loads config and feeds it to the logger. Problems are reported
// on stderr and never stop the command.
func applyConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	logger.Debug("Running %s with log level %s", cmd.CommandPath(), cfg.LogLevel)
}
