// Copyright 2026 Inklab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/inklab/docstream"
	"github.com/inklab/docstream/config"
	"github.com/inklab/docstream/core"
	"github.com/inklab/docstream/embedding"
	"github.com/inklab/docstream/extract"
	"github.com/inklab/docstream/extract/llm"
	"github.com/inklab/docstream/extract/local"
	"github.com/inklab/docstream/extract/pdf"
	"github.com/inklab/docstream/reindex"
)

func main() {
	app := &cli.App{
		Name:  "docstream",
		Usage: "Document ingestion and hybrid search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
				Value:   "docstream.yaml",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Upload files and process them through the pipeline",
				ArgsUsage: "<file> [<file> ...]",
				Action:    addCommand,
			},
			{
				Name:   "seed",
				Usage:  "Populate an empty library with example documents",
				Action: seedCommand,
			},
			{
				Name:   "list",
				Usage:  "List documents, newest first",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "filter",
						Usage: "Only show documents whose title or author contains this text",
					},
				},
			},
			{
				Name:      "show",
				Usage:     "Show a single document record",
				ArgsUsage: "<id>",
				Action:    showCommand,
			},
			{
				Name:      "search",
				Usage:     "Run a hybrid query over completed documents",
				ArgsUsage: "<query>",
				Action:    searchCommand,
			},
			{
				Name:      "related",
				Usage:     "Find documents related to the given one",
				ArgsUsage: "<id>",
				Action:    relatedCommand,
			},
			{
				Name:   "stats",
				Usage:  "Show per-status document counts",
				Action: statsCommand,
			},
			{
				Name:   "reindex",
				Usage:  "Recompute embeddings for all completed documents",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents to process in each batch",
						Value: 50,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 50,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) error {
	_ = godotenv.Load()
	return setupLogger(c)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func openLibrary(c *cli.Context) (*docstream.Library, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts := []docstream.LibraryOption{
		docstream.WithUploadDir(cfg.Intake.UploadDir),
	}
	if cfg.Storage.InMemory {
		opts = append(opts, docstream.WithInMemory())
	}

	if cfg.Extraction.Provider == "llm" {
		provider, err := newLLMProvider(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, docstream.WithProvider(provider))
	}

	return docstream.NewLibrary(cfg.Storage.Path, opts...)
}

func newLLMProvider(cfg *config.AppConfig) (extract.Provider, error) {
	if cfg.Extraction.LLM == nil {
		return nil, fmt.Errorf("extraction provider %q requires an llm configuration block", cfg.Extraction.Provider)
	}

	extractConfig := extract.NewConfig(
		extract.WithHost(cfg.Extraction.LLM.Host),
		extract.WithModel(cfg.Extraction.LLM.Model),
		extract.WithAPIKey(cfg.Extraction.LLM.APIKey()),
		extract.WithMaxKeywords(cfg.Extraction.MaxKeywords),
	)

	text := extract.NewRoutingTextExtractor(map[string]extract.TextExtractor{
		".pdf": pdf.NewTextExtractor(),
	}, local.NewTextExtractor())

	provider, err := llm.NewProvider(extractConfig, text)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm provider: %w", err)
	}
	return provider, nil
}

func addCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one file is required")
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	ctx := context.Background()
	for _, path := range c.Args().Slice() {
		record, err := lib.UploadFile(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", path, err)
		}
		fmt.Printf("uploaded %s as document %d\n", path, record.Id)
	}

	if err := lib.WaitIdle(ctx); err != nil {
		return err
	}

	docs, err := lib.Documents(ctx)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if doc.Status.Terminal() {
			fmt.Printf("%d  %-10s  %s\n", doc.Id, doc.Status, doc.Title)
		}
	}
	return nil
}

func seedCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.Seed(context.Background()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	fmt.Println("seeded example documents")
	return nil
}

func listCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	ctx := context.Background()
	var docs []*core.DocumentRecord
	if filter := c.String("filter"); filter != "" {
		docs, err = lib.Filter(ctx, filter)
	} else {
		docs, err = lib.Documents(ctx)
	}
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Printf("%-20d  %-10s  %-30s  %s\n", doc.Id, doc.Status, doc.Title, doc.Author)
	}
	return nil
}

func showCommand(c *cli.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	doc, err := lib.Document(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("Id:       %d\n", doc.Id)
	fmt.Printf("Title:    %s\n", doc.Title)
	fmt.Printf("Author:   %s\n", doc.Author)
	fmt.Printf("Status:   %s\n", doc.Status)
	fmt.Printf("Keywords: %s\n", strings.Join(doc.Keywords, ", "))
	for _, entity := range doc.Entities {
		fmt.Printf("Entity:   %s (%s)\n", entity.Text, entity.Label)
	}
	fmt.Printf("\n%s\n", doc.ExtractedText)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("a query is required")
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	results, err := lib.Search(context.Background(), query)
	if err != nil {
		return err
	}

	printResults(results)
	return nil
}

func relatedCommand(c *cli.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	results, err := lib.Related(context.Background(), id)
	if err != nil {
		return err
	}

	printResults(results)
	return nil
}

func statsCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	stats, err := lib.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Total:      %d\n", stats.Total)
	fmt.Printf("Processing: %d\n", stats.Processing)
	fmt.Printf("Completed:  %d\n", stats.Completed)
	fmt.Printf("Failed:     %d\n", stats.Failed)
	return nil
}

func reindexCommand(c *cli.Context) error {
	batchSize := c.Int("batch-size")
	reportInterval := c.Int("report-interval")
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	reindexer := reindex.NewReindexer(lib.Repository(), embedding.NewHashingEmbedder(), &reindex.Config{
		BatchSize:      batchSize,
		ReportInterval: reportInterval,
	}, os.Stderr)

	if err := reindexer.Run(context.Background()); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}
	return nil
}

func parseID(c *cli.Context) (core.ID, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("exactly one document id is required")
	}
	raw, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid document id %q", c.Args().First())
	}
	return core.ID(raw), nil
}

func printResults(results []*core.SearchResult) {
	if len(results) == 0 {
		fmt.Println("no results")
		return
	}
	for _, result := range results {
		fmt.Printf("%.3f  %-20d  %-30s  %s\n",
			result.Score, result.Record.Id, result.Record.Title, result.Record.Author)
	}
}
