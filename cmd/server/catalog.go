package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/legends-of-revenue/internal/clients/srd"
	"github.com/KirkDiggler/legends-of-revenue/internal/content"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// mergeSRD imports equipment and adds it to the catalog. A failed import
// leaves the catalog untouched.
func mergeSRD(ctx context.Context, catalog *content.Catalog, importer srd.Importer) (int, error) {
	output, err := importer.Import(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to import SRD equipment")
	}

	if len(output.Skipped) > 0 {
		slog.Debug("Skipped SRD equipment", "count", len(output.Skipped), "keys", output.Skipped)
	}

	if err := catalog.AddItems(output.Items...); err != nil {
		return 0, errors.Wrap(err, "failed to merge SRD equipment")
	}

	return len(output.Items), nil
}

// loadCatalog loads the built-in content, optionally enriched with SRD equipment
func loadCatalog(ctx context.Context, importSRD bool, newImporter func() (srd.Importer, error)) (*content.Catalog, error) {
	catalog, err := content.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}

	if !importSRD {
		return catalog, nil
	}

	importer, err := newImporter()
	if err != nil {
		return nil, err
	}

	added, err := mergeSRD(ctx, catalog, importer)
	if err != nil {
		slog.Warn("Continuing without SRD equipment", "error", err)
		return catalog, nil
	}

	slog.Info("Merged SRD equipment", "items", added)
	return catalog, nil
}
