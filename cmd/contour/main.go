// Command contour batch-processes a directory of PDF files, writing one
// outline JSON file per input. Files whose text layer is too thin are run
// through OCR when pre-rendered page images are supplied.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/contour"
	"github.com/tsawler/contour/export"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/ocr"
	"github.com/tsawler/contour/pdfspans"
	"github.com/tsawler/contour/structure"
)

// CLI declares the command's flags. Every flag falls back to an
// environment variable so the tool drops into containers without a
// wrapper script.
type CLI struct {
	Input            string        `help:"Directory of input PDF files." short:"i" default:"./input" env:"INPUT_DIR"`
	Output           string        `help:"Directory for output JSON files." short:"o" default:"./output" env:"OUTPUT_DIR"`
	Workers          int           `help:"Number of files processed concurrently." default:"4" env:"WORKERS"`
	MaxPages         int           `help:"Maximum pages read per file (0 = all)." default:"50" env:"MAX_PAGES"`
	MaxHeadingLength int           `help:"Longest text considered a heading, in characters." default:"200" env:"MAX_HEADING_LENGTH"`
	MinHeadingScore  int           `help:"Evidence score a span needs to count as a heading." default:"2" env:"MIN_HEADING_SCORE"`
	MaxTitleLength   int           `help:"Longest extracted title, in characters." default:"200" env:"MAX_TITLE_LENGTH"`
	FallbackTiers    []float64     `help:"H1,H2,H3 font size thresholds used when a file has no usable size distribution." default:"16,14,12" env:"FALLBACK_TIERS"`
	OCRLang          string        `help:"Tesseract language(s) for the OCR fallback." default:"eng" env:"OCR_LANG"`
	PageImages       string        `help:"Directory of pre-rendered page images, one subdirectory per file stem, used for the OCR fallback." env:"PAGE_IMAGES"`
	Summary          bool          `help:"Write processing_summary.json alongside the outputs." env:"WRITE_SUMMARY"`
	TimeBudget       time.Duration `help:"Soft per-file time budget; slower files are logged." default:"10s" env:"TIME_BUDGET"`
	Verbose          bool          `help:"Enable debug logging." short:"v" env:"VERBOSE"`
}

func main() {
	cli := CLI{}
	kong.Parse(&cli,
		kong.Name("contour"),
		kong.Description("Infer titles and H1/H2/H3 outlines from PDF files."),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(context.Background(), cli, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cli CLI, logger *slog.Logger) error {
	if len(cli.FallbackTiers) != 3 {
		return fmt.Errorf("fallback tiers need exactly 3 values, got %d", len(cli.FallbackTiers))
	}
	tiers := structure.TierProfile{H1: cli.FallbackTiers[0], H2: cli.FallbackTiers[1], H3: cli.FallbackTiers[2]}
	if !tiers.Monotonic() {
		return fmt.Errorf("fallback tiers must be non-increasing, got %v", cli.FallbackTiers)
	}

	files, err := filepath.Glob(filepath.Join(cli.Input, "*.pdf"))
	if err != nil {
		return fmt.Errorf("failed to list input files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found in %s", cli.Input)
	}
	sort.Strings(files)

	if err := os.MkdirAll(cli.Output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Info("processing batch", "files", len(files), "workers", cli.Workers)
	start := time.Now()

	results := make([]export.FileSummary, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cli.Workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = processOne(cli, logger, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if cli.Summary {
		summaryPath := filepath.Join(cli.Output, "processing_summary.json")
		if err := export.SaveSummary(summaryPath, export.Summarize(results, time.Since(start))); err != nil {
			return err
		}
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	logger.Info("batch complete",
		"files", len(files),
		"failed", failed,
		"elapsed", time.Since(start).String())

	if failed == len(files) {
		return fmt.Errorf("all %d files failed", failed)
	}
	return nil
}

// processOne handles a single input file end to end: extract, optionally
// fall back to OCR, infer structure, and write the result. Failures are
// recorded in the summary and as an in-band error JSON so every input
// produces an output.
func processOne(cli CLI, logger *slog.Logger, file string) export.FileSummary {
	start := time.Now()
	log := logger.With("file", filepath.Base(file))
	outPath := filepath.Join(cli.Output, stem(file)+".json")

	outline, usedOCR, err := analyze(cli, log, file)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("processing failed", "error", err)
		if saveErr := export.SaveErrorJSON(outPath); saveErr != nil {
			log.Error("failed to write error output", "error", saveErr)
		}
		return export.NewFileSummary(file, "", 0, elapsed, usedOCR, err)
	}

	if err := export.SaveJSON(outPath, outline); err != nil {
		log.Error("failed to write output", "error", err)
		return export.NewFileSummary(file, "", 0, elapsed, usedOCR, err)
	}

	if elapsed > cli.TimeBudget {
		log.Warn("file exceeded time budget", "elapsed", elapsed.String(), "budget", cli.TimeBudget.String())
	}
	log.Info("processed",
		"title", outline.Title,
		"headings", len(outline.Outline),
		"used_ocr", usedOCR,
		"elapsed", elapsed.String())

	return export.NewFileSummary(file, outline.Title, len(outline.Outline), elapsed, usedOCR, nil)
}

func analyze(cli CLI, log *slog.Logger, file string) (model.DocumentOutline, bool, error) {
	doc, err := contour.Open(file).MaxPages(cli.MaxPages).Document()
	if err != nil {
		return model.DocumentOutline{}, false, err
	}

	extractCfg := pdfspans.DefaultConfig()
	extractCfg.MaxPages = cli.MaxPages
	if pdfspans.NeedsOCR(doc, extractCfg) {
		log.Debug("text layer too thin, trying OCR fallback")
		ocrDoc, ocrErr := recognize(cli, log, file)
		if ocrErr != nil {
			// A thin native text layer is still better than nothing.
			log.Warn("OCR fallback unavailable", "error", ocrErr)
		} else {
			outline, err := assemble(cli, ocrDoc)
			return outline, true, err
		}
	}

	outline, err := assemble(cli, doc)
	return outline, false, err
}

func assemble(cli CLI, doc model.Document) (model.DocumentOutline, error) {
	return contour.FromDocument(doc).
		MaxHeadingLength(cli.MaxHeadingLength).
		MinHeadingScore(cli.MinHeadingScore).
		MaxTitleLength(cli.MaxTitleLength).
		FallbackTiers(cli.FallbackTiers[0], cli.FallbackTiers[1], cli.FallbackTiers[2]).
		Outline()
}

// recognize OCRs the pre-rendered page images for one file. Images live in
// <page-images>/<file stem>/ and are assigned page numbers in sorted name
// order. Rendering PDF pages to images is out of scope here; any external
// rasterizer works.
func recognize(cli CLI, log *slog.Logger, file string) (model.Document, error) {
	if cli.PageImages == "" {
		return model.Document{}, fmt.Errorf("no page images directory configured")
	}

	imageDir := filepath.Join(cli.PageImages, stem(file))
	images, err := pageImages(imageDir)
	if err != nil {
		return model.Document{}, err
	}
	if len(images) == 0 {
		return model.Document{}, fmt.Errorf("no page images in %s", imageDir)
	}
	if cli.MaxPages > 0 && len(images) > cli.MaxPages {
		images = images[:cli.MaxPages]
	}

	client, err := ocr.New()
	if err != nil {
		return model.Document{}, err
	}
	defer client.Close()

	if err := client.SetLanguage(cli.OCRLang); err != nil {
		return model.Document{}, err
	}

	reflowCfg := ocr.DefaultReflowConfig()
	doc := model.Document{Pages: make([]model.Page, 0, len(images))}
	for i, image := range images {
		data, err := os.ReadFile(image)
		if err != nil {
			return model.Document{}, fmt.Errorf("failed to read page image: %w", err)
		}

		spans, err := client.RecognizePageSpans(data, i+1, reflowCfg)
		if err != nil {
			return model.Document{}, err
		}

		var text strings.Builder
		for _, s := range spans {
			text.WriteString(s.Text)
			text.WriteString("\n")
		}
		doc.Pages = append(doc.Pages, model.Page{
			Number:  i + 1,
			Spans:   spans,
			RawText: text.String(),
		})
		log.Debug("recognized page", "page", i+1, "spans", len(spans))
	}
	return doc, nil
}

func pageImages(dir string) ([]string, error) {
	var images []string
	for _, pattern := range []string{"*.png", "*.jpg", "*.jpeg", "*.tif", "*.tiff"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		images = append(images, matches...)
	}
	sort.Strings(images)
	return images, nil
}

func stem(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
