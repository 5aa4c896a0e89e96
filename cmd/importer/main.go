package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wordmem/internal/app/server/config"
	"wordmem/internal/domain/word"
	"wordmem/internal/importer"
	"wordmem/internal/infrastructure/storage/postgres"
	"wordmem/internal/utils/logger"
)

var file string

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Load a word list into the shared catalog",
	Long: `Importer merges a JSON word list into the catalog.

Each entry carries a headword, a free-form part-of-speech label, an
explanation and optionally pronunciation and audio. Entries already present
in the catalog are left untouched, so the same file can be imported again
after edits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := config.NewConfig()
		log := logger.New(conf.Env)

		storage, err := postgres.New(conf)
		if err != nil {
			return fmt.Errorf("storage init: %w", err)
		}
		defer storage.Close()

		wordRepo := postgres.NewWordRepository(storage.Pool(), log)
		wordService := word.NewService(wordRepo, log)
		imp := importer.New(wordService, log)

		summary, err := imp.ImportFile(cmd.Context(), file)
		if err != nil {
			return err
		}

		color.Green("Imported %d of %d entries", summary.Imported, summary.Total)
		if summary.Skipped > 0 {
			color.Yellow("Skipped %d (duplicates or incomplete)", summary.Skipped)
		}
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "path to the JSON word list")
	_ = rootCmd.MarkFlagRequired("file")

	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
