package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/emp/internal/storage"
	"github.com/jacksmith/emp/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty roster",
	Long: `Create the data file with an empty roster.

The file is employees.yaml unless --file or data_file in .empconfig.yaml
names another one. A .db or .sqlite extension creates an SQLite database.

Fails if the data file already exists. Other commands create a missing data
file on first use, so init is only needed to start a roster explicitly.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}

	if !isDatabasePath(cfg.DataFile) {
		if _, err := storage.Init(cfg.DataFile, log); err != nil {
			return err
		}
		fmt.Printf("Initialized empty roster in %s\n", cfg.DataFile)
		return nil
	}

	if _, err := os.Stat(cfg.DataFile); err == nil {
		return fmt.Errorf("data file %s already exists", cfg.DataFile)
	}
	repo, err := sqlite.New(cfg.DataFile, log)
	if err != nil {
		return err
	}
	defer repo.Close()

	fmt.Printf("Initialized empty roster database in %s\n", cfg.DataFile)
	return nil
}
