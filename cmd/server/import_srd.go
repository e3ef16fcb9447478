package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/legends-of-revenue/internal/clients/srd"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
)

var (
	srdBaseURL    string
	srdCategories []string
	srdTimeout    time.Duration
)

var importSRDCmd = &cobra.Command{
	Use:   "import-srd",
	Short: "Convert D&D 5e SRD equipment into game items",
	Long:  `Fetch weapon and armor categories from the D&D 5e API and print the converted item definitions as JSON.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		importer, err := srd.New(&srd.Config{
			BaseURL:    srdBaseURL,
			Categories: srdCategories,
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), srdTimeout)
		defer cancel()

		return runImport(ctx, importer, os.Stdout)
	},
}

func init() {
	importSRDCmd.Flags().StringVar(&srdBaseURL, "base-url", "", "D&D 5e API base URL")
	importSRDCmd.Flags().StringSliceVar(&srdCategories, "category", nil, "Equipment category to import (repeatable)")
	importSRDCmd.Flags().DurationVar(&srdTimeout, "timeout", 2*time.Minute, "Import timeout")
}

// importReport is what import-srd prints
type importReport struct {
	Items   []*entities.ItemDefinition `json:"items"`
	Skipped []string                   `json:"skipped"`
}

func runImport(ctx context.Context, importer srd.Importer, w io.Writer) error {
	output, err := importer.Import(ctx)
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(importReport{
		Items:   output.Items,
		Skipped: output.Skipped,
	})
}
