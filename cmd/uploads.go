package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"apo-analyzer/core/storage"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var uploadsDate string

// uploadsCmd is the parent command for stored log management.
var uploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "Manage raw logs kept in object storage",
}

var uploadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored logs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runUploadsList,
}

var uploadsPutCmd = &cobra.Command{
	Use:   "put <file>",
	Short: "Store a raw log",
	Args:  cobra.ExactArgs(1),
	RunE:  runUploadsPut,
}

func init() {
	uploadsListCmd.Flags().StringVar(&uploadsDate, "date", "", "Only uploads of this day (YYYY-MM-DD)")

	uploadsCmd.AddCommand(uploadsListCmd)
	uploadsCmd.AddCommand(uploadsPutCmd)
	RootCmd.AddCommand(uploadsCmd)
}

func runUploadsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.log.Sync()

	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}
	db, _ := e.connectDB(false)
	svc, err := e.service(client, db, "")
	if err != nil {
		return err
	}

	uploads, err := svc.ListUploads(ctx, uploadsDate)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "DATE", "FILE", "SIZE", "MD5", "PATH")
	for _, up := range uploads {
		t.Row(strconv.FormatUint(uint64(up.ID), 10), up.UploadDate, up.OrigFilename,
			strconv.FormatInt(up.Size, 10), up.MD5, up.StoredPath)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return err
}

func runUploadsPut(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.log.Sync()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, e.cfg.Storage.Bucket, e.cfg.Storage.Region); err != nil {
		return err
	}

	db, _ := e.connectDB(false)
	svc, err := e.service(client, db, "")
	if err != nil {
		return err
	}
	if db != nil {
		if err := svc.EnsureSchema(); err != nil {
			return err
		}
	}

	up, err := svc.Upload(ctx, filepath.Base(args[0]), f)
	if err != nil {
		return err
	}

	e.log.Info("Log stored",
		zap.Uint("id", up.ID),
		zap.String("path", up.StoredPath),
		zap.Int64("size", up.Size),
		zap.String("md5", up.MD5),
	)
	return nil
}
