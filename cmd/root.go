package cmd

import (
	"fmt"
	"os"

	"apo-analyzer/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the apo-analyzer command.
var RootCmd = &cobra.Command{
	Use:   "apo-analyzer",
	Short: "APO remnant analyzer",
	Long: `APO remnant analyzer reads combined WASON/APOPLUS diagnostic logs,
splits them per site and flags och-inst entries no WASON call accounts for.
It runs as a one-shot CLI or as an HTTP service with stored uploads.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs RootCmd and exits with status 1 on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}
	reportFailure(err)
	os.Exit(1)
}

// reportFailure prints err through a console logger, or plainly when no
// logger can be built.
func reportFailure(err error) {
	l, logErr := logger.New(&logger.Config{Level: "error", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	l.Error("Command failed", zap.String("command", failedCommand()), zap.Error(err))
	_ = l.Sync()
}

func failedCommand() string {
	cmd, _, err := RootCmd.Find(os.Args[1:])
	if err != nil || cmd == nil {
		return RootCmd.Name()
	}
	return cmd.CommandPath()
}
