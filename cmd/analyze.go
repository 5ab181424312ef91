package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"apo-analyzer/feature/remnant"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	analyzeView  string
	analyzeJSON  bool
	analyzeSave  bool
	analyzeSites string
)

// analyzeCmd analyzes a local log file.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|->",
	Short: "Analyze a WASON/APOPLUS log for APO remnants",
	Long: `Splits the log per site, reconciles WASON call records against the
APOPLUS och-inst table and prints the flagged sites.

Examples:
  # Terminal report of every site
  analyze today.log

  # Only flagged sites, as JSON
  analyze today.log --view apo --json

  # Read stdin and keep the run in the database
  cat today.log | analyze - --save`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeView, "view", "all", "Sites to list: all, apo or clean")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the run in the database")
	analyzeCmd.Flags().StringVar(&analyzeSites, "sites", "", "YAML site table (overrides remnant.sites_file)")

	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	view, err := remnant.ParseView(analyzeView)
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.log.Sync()

	raw, source, err := readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	var db *gorm.DB
	if analyzeSave {
		if db, err = e.connectDB(true); err != nil {
			return fmt.Errorf("--save needs a database: %w", err)
		}
	}

	svc, err := e.service(nil, db, analyzeSites)
	if err != nil {
		return err
	}
	if analyzeSave {
		if err := svc.EnsureSchema(); err != nil {
			return err
		}
	}

	start := time.Now()
	a, err := svc.Analyze(ctx, raw)
	if err != nil {
		return err
	}
	report := remnant.BuildReport(a, svc.Sites(), view)
	e.log.Debug("Log analyzed",
		zap.String("source", source),
		zap.Int("bytes", len(raw)),
		zap.Duration("took", time.Since(start)),
	)

	if analyzeSave {
		run, err := svc.SaveRun(ctx, a, source, nil)
		if err != nil {
			return err
		}
		report.RunID = run.ID
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err = io.WriteString(out, remnant.Render(report))
	return err
}

// readInput reads the named file, or stdin for "-".
func readInput(stdin io.Reader, name string) ([]byte, string, error) {
	if name == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return raw, "stdin", nil
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return raw, filepath.Base(name), nil
}
