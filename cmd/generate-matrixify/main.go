package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yumejin/matrixify-export/internal/catalog"
	"github.com/yumejin/matrixify-export/internal/config"
	"github.com/yumejin/matrixify-export/internal/export"
	"github.com/yumejin/matrixify-export/internal/images"
	"github.com/yumejin/matrixify-export/internal/sjcsv"
)

const logFileName = "matrixify-export.log"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	setupLogging()

	cfg := config.Load()
	ctx := context.Background()

	log.Info().Str("file", cfg.ProductPath()).Msg("loading products")
	productRows, err := sjcsv.ReadFile(cfg.ProductPath())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read product file")
	}
	products := catalog.LoadProducts(productRows)

	log.Info().Str("file", cfg.CategoryPath()).Msg("loading categories")
	categoryRows, err := sjcsv.ReadFile(cfg.CategoryPath())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read category file")
	}
	paths := catalog.NewPathResolver(catalog.LoadCategories(categoryRows))
	paths.ResolveAll()

	log.Info().Str("file", cfg.StockPath()).Msg("loading stocks")
	stockRows, err := sjcsv.ReadFile(cfg.StockPath())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read stock file")
	}
	stocks := catalog.LoadStocks(stockRows)

	log.Info().
		Int("products", len(products)).
		Int("poolWidth", cfg.PoolWidth).
		Msg("resolving product images")
	checker := images.NewChecker(cfg.ProbeTimeout)
	resolver := images.NewResolver(checker, cfg.MainImageBaseURL, cfg.SubImageBaseURL, cfg.PoolWidth)
	results := resolver.ResolveAll(ctx, products)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("failed to create output directory")
	}

	sheets := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"yumejin_products_matrixify_products.csv", func(w io.Writer) error {
			return export.WriteProducts(w, products, paths, results)
		}},
		{"yumejin_products_matrixify_variants.csv", func(w io.Writer) error {
			return export.WriteVariants(w, products, stocks)
		}},
		{"yumejin_products_matrixify_images.csv", func(w io.Writer) error {
			return export.WriteImages(w, products, results)
		}},
		{"yumejin_products_matrixify_missing_images.csv", func(w io.Writer) error {
			return export.WriteMissing(w, results)
		}},
	}
	for _, sheet := range sheets {
		path := filepath.Join(cfg.OutputDir, sheet.name)
		log.Info().Str("file", path).Msg("writing sheet")
		if err := writeSheet(path, sheet.write); err != nil {
			log.Fatal().Err(err).Msg("failed to write sheet")
		}
	}

	found, missing := 0, 0
	for _, r := range results {
		found += len(r.Images)
		missing += len(r.Missing)
	}
	log.Info().
		Int("products", len(products)).
		Int("imagesFound", found).
		Int("imagesMissing", missing).
		Msg("done")
}

// setupLogging logs to stderr and, best effort, to a local file.
func setupLogging() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		log.Logger = log.Output(consoleWriter)
		log.Warn().Err(err).Msg("failed to open log file, logging to stderr only")
		return
	}
	fileWriter := zerolog.ConsoleWriter{Out: logFile, NoColor: true}
	log.Logger = log.Output(io.MultiWriter(consoleWriter, fileWriter))
}

func writeSheet(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
