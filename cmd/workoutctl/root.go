package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/2beens/workoutsheet/internal/logging"
	"github.com/2beens/workoutsheet/internal/sheets"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type sourceFlags struct {
	xlsxPath        string
	spreadsheet     string
	credentialsFile string
}

func newRootCommand() *cobra.Command {
	src := &sourceFlags{}
	var logLevel string

	root := &cobra.Command{
		Use:           "workoutctl",
		Short:         "Inspect and edit workout spreadsheets",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(logging.GetLevel(logLevel))
		},
	}

	root.PersistentFlags().StringVar(&src.xlsxPath, "xlsx", "", "path of a local .xlsx workbook")
	root.PersistentFlags().StringVar(&src.spreadsheet, "spreadsheet", "", "google spreadsheet id or url")
	root.PersistentFlags().StringVar(&src.credentialsFile, "credentials", "", "google service account credentials file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level [trace | debug | info | warn | error]")

	root.AddCommand(newWorksheetsCommand(src))
	root.AddCommand(newDumpCommand(src))
	root.AddCommand(newLocateCommand(src))
	root.AddCommand(newSetCommand(src))
	root.AddCommand(newHashPasswordCommand())

	return root
}

// open returns a client for the selected backend and a func releasing it.
func (f *sourceFlags) open(ctx context.Context) (sheets.Client, func(), error) {
	switch {
	case f.xlsxPath != "" && f.spreadsheet != "":
		return nil, nil, errors.New("use either --xlsx or --spreadsheet, not both")
	case f.xlsxPath != "":
		client, err := sheets.OpenXlsx(f.xlsxPath)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				log.Errorf("close workbook: %s", err)
			}
		}, nil
	case f.spreadsheet != "":
		if f.credentialsFile == "" {
			return nil, nil, errors.New("--credentials is required with --spreadsheet")
		}
		credentialsJSON, err := os.ReadFile(f.credentialsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("read credentials: %w", err)
		}
		client, err := sheets.NewGoogleClient(ctx, credentialsJSON, sheets.SpreadsheetIDFromURL(f.spreadsheet))
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	default:
		return nil, nil, errors.New("one of --xlsx or --spreadsheet is required")
	}
}
