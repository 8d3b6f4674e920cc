package pipeline

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/arcanaland/riftdata/internal/card"
	"github.com/arcanaland/riftdata/internal/images"
	"github.com/arcanaland/riftdata/internal/legacy"
	"github.com/arcanaland/riftdata/internal/parser"
	"github.com/arcanaland/riftdata/internal/report"
)

// Options holds the input and output paths of a rebuild
type Options struct {
	CardsCSV   string
	ImagesCSV  string
	LegacyJSON string
	Output     string
}

// Result describes a completed rebuild
type Result struct {
	Records []*card.Record
	Added   []string // Names filled in from legacy data
	Stats   report.Stats
}

// Run rebuilds the expert card data file. Progress is logged to log and the
// distribution report is printed to out. Nothing is written if the images
// CSV or the card CSV cannot be read.
func Run(opts Options, log *zap.Logger, out io.Writer) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	imageMap, err := images.LoadFile(opts.ImagesCSV)
	if err != nil {
		return nil, err
	}
	imageMap = images.WithOverrides(imageMap)
	log.Info("loaded image URLs", zap.Int("count", len(imageMap)), zap.String("path", opts.ImagesCSV))

	legacyCards, err := legacy.LoadFile(opts.LegacyJSON)
	if err != nil {
		log.Warn("could not load legacy cards", zap.Error(err))
	} else {
		log.Info("loaded legacy cards", zap.Int("count", len(legacyCards)), zap.String("path", opts.LegacyJSON))
	}

	records, err := parseCards(opts.CardsCSV, imageMap, log)
	if err != nil {
		return nil, err
	}
	log.Info("parsed cards from CSV", zap.Int("count", len(records)), zap.String("path", opts.CardsCSV))

	records, added := legacy.Reconcile(records, legacyCards)
	report.PrintAdded(out, added)

	if err := report.WriteFile(opts.Output, records); err != nil {
		return nil, err
	}
	log.Info("wrote card data", zap.Int("count", len(records)), zap.String("path", opts.Output))

	stats := report.Distribution(records)
	report.Print(out, stats)

	return &Result{
		Records: records,
		Added:   added,
		Stats:   stats,
	}, nil
}

// parseCards reads the card CSV and attaches image URLs by exact name
func parseCards(path string, imageMap images.Map, log *zap.Logger) ([]*card.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening card CSV: %w", err)
	}
	defer f.Close()

	rows, err := parser.ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing card CSV %s: %w", path, err)
	}

	var records []*card.Record
	for i, row := range rows {
		rec, ok := parser.ParseRow(row)
		if !ok {
			log.Debug("skipping row without name or collector number", zap.Int("row", i+2))
			continue
		}
		if url, ok := imageMap.Lookup(rec.Name); ok {
			rec.ImageURL = url
		}
		records = append(records, rec)
	}

	return records, nil
}
