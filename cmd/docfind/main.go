// Copyright 2026 Poiesic Systems
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
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/docfind"
	"github.com/poiesic/docfind/ai"
	"github.com/poiesic/docfind/core"
	"github.com/poiesic/docfind/storage/badger"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "docfind",
		Usage: "Hybrid lexical and semantic search over a local document corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add documents to the corpus",
				ArgsUsage: "FILE [FILE...]",
				Action:    addCommand,
				Flags:     append(dbFlags(), embeddingFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Search the corpus",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: append(append(dbFlags(), embeddingFlags()...),
					&cli.IntFlag{
						Name:    "k",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   5,
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Target chunk length in characters",
						Value: 500,
					},
					&cli.IntFlag{
						Name:  "overlap",
						Usage: "Character overlap between consecutive chunks",
						Value: 150,
					},
					&cli.Float64Flag{
						Name:  "semantic-weight",
						Usage: "Weight of the embedding similarity signal",
						Value: 0.7,
					},
					&cli.Float64Flag{
						Name:  "lexical-weight",
						Usage: "Weight of the BM25 signal",
						Value: 0.3,
					},
				),
			},
			{
				Name:   "list",
				Usage:  "List stored documents",
				Action: listCommand,
				Flags:  dbFlags(),
			},
			{
				Name:      "remove",
				Usage:     "Remove documents by ID",
				ArgsUsage: "ID [ID...]",
				Action:    removeCommand,
				Flags:     dbFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the corpus database directory",
			Value:   "./docfind_db",
			EnvVars: []string{"DOCFIND_DB"},
		},
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"DOCFIND_EMBEDDING_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   "embeddinggemma",
			EnvVars: []string{"DOCFIND_EMBEDDING_MODEL"},
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API token for the embedding service",
			EnvVars: []string{"DOCFIND_EMBEDDING_TOKEN"},
		},
	}
}

func openFinder(c *cli.Context) (*docfind.Finder, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithToken(c.String("token")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid embedding configuration: %w", err)
	}

	config := core.NewConfig(
		core.WithChunkSize(intOrDefault(c, "chunk-size", 500)),
		core.WithOverlap(intOrDefault(c, "overlap", 150)),
		core.WithTopK(intOrDefault(c, "k", 5)),
		core.WithWeights(
			floatOrDefault(c, "semantic-weight", 0.7),
			floatOrDefault(c, "lexical-weight", 0.3),
		),
	)

	return docfind.NewFinder(c.String("db"),
		docfind.WithAIConfig(aiConfig),
		docfind.WithConfig(config),
	)
}

// intOrDefault reads an int flag, falling back when the command doesn't
// define it (e.g. add has no chunking flags).
func intOrDefault(c *cli.Context, name string, fallback int) int {
	if c.IsSet(name) || c.Int(name) != 0 {
		return c.Int(name)
	}
	return fallback
}

func floatOrDefault(c *cli.Context, name string, fallback float64) float64 {
	if c.IsSet(name) || c.Float64(name) != 0 {
		return c.Float64(name)
	}
	return fallback
}

func addCommand(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one file path is required")
	}

	finder, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	docs, err := finder.IngestPaths(context.Background(), paths...)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Printf("added %s (%d)\n", doc.Name, doc.Id)
	}
	if skipped := len(paths) - len(docs); skipped > 0 {
		fmt.Printf("skipped %d file(s) with no extractable text\n", skipped)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("a query is required")
	}

	finder, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	results, err := finder.Search(context.Background(), query, c.Int("k"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		pct := int(math.Round(float64(hit.Score) * 100))
		fmt.Printf("%d: page %d, %d%% (%s)\n   %s\n",
			i+1, hit.Page, pct, confidenceBand(pct), hit.Chunk.Text)
	}
	return nil
}

func listCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	docs, err := repo.ListDocuments(context.Background())
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Printf("%d  %s  %d chars  added %s\n",
			doc.Id, doc.Name, len(doc.Text), doc.InsertedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("%d document(s)\n", len(docs))
	return nil
}

func removeCommand(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("at least one document ID is required")
	}

	ids := make([]core.ID, len(args))
	for i, arg := range args {
		raw, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document ID %q: %w", arg, err)
		}
		ids[i] = core.ID(raw)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	if err := repo.DeleteDocuments(context.Background(), ids...); err != nil {
		return err
	}
	fmt.Printf("removed %d document(s)\n", len(ids))
	return nil
}

// confidenceBand maps a displayed confidence percentage to a quality label.
// It takes the rounded percent, not the raw score, so the label always
// agrees with the number shown next to it.
func confidenceBand(pct int) string {
	switch {
	case pct >= 80:
		return "excellent"
	case pct >= 60:
		return "good"
	case pct >= 40:
		return "decent"
	default:
		return "weak"
	}
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
