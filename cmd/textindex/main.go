// Copyright 2025 Halcyon Labs
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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/halcyonlabs/textindex/ai/bedrock"
	"github.com/halcyonlabs/textindex/config"
	"github.com/halcyonlabs/textindex/ingest"
	"github.com/halcyonlabs/textindex/split"
	"github.com/halcyonlabs/textindex/store"
)

func main() {
	app := &cli.App{
		Name:  "textindex",
		Usage: "Load local text documents into an OpenSearch vector index",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Split, embed, and index text files under the data directory",
				Action: indexCommand,
				Flags: append(configFlags(),
					&cli.StringFlag{
						Name:    "data-dir",
						Aliases: []string{"d"},
						Usage:   "Root directory scanned for .txt files",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Bedrock embedding model identifier",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of fragments indexed per batch",
						Value: ingest.DefaultBatchSize,
					},
				),
			},
			{
				Name:   "indices",
				Usage:  "List every index with its settings and mappings",
				Action: indicesCommand,
				Flags:  configFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// configFlags are the flags shared by both commands; each overrides the
// corresponding config file value when set.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML config file",
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region",
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "AWS credentials profile",
		},
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "OpenSearch service endpoint URL",
		},
		&cli.StringFlag{
			Name:  "index",
			Usage: "Target index name",
		},
	}
}

// loadConfig builds the run configuration: defaults, then the config file
// if given, then flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v := c.String("region"); v != "" {
		cfg.Region = v
	}
	if v := c.String("profile"); v != "" {
		cfg.Profile = v
	}
	if v := c.String("endpoint"); v != "" {
		cfg.Endpoint = v
	}
	if v := c.String("index"); v != "" {
		cfg.IndexName = v
	}
	if c.IsSet("data-dir") {
		cfg.DataPath = c.String("data-dir")
	}
	if c.IsSet("embedding-model") {
		cfg.EmbeddingModel = c.String("embedding-model")
	}

	return cfg, nil
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Client construction failures are fatal: the run aborts before any
	// document is touched.
	awsCfg, err := bedrock.LoadAWSConfig(ctx, cfg.Profile, cfg.Region)
	if err != nil {
		return err
	}

	embedder, err := bedrock.NewEmbedder(bedrock.NewRuntimeClient(awsCfg), cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("create embedder: %w", err)
	}

	osClient, err := store.NewClient(cfg.Endpoint, awsCfg)
	if err != nil {
		return err
	}

	sink, err := store.NewVectorSink(osClient, embedder, cfg.IndexName)
	if err != nil {
		return err
	}

	pipeline, err := ingest.NewPipeline(split.New(), sink,
		ingest.WithBatchSize(c.Int("batch-size")))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Region: %s\n", cfg.Region)
	fmt.Fprintf(os.Stderr, "Endpoint: %s\n", cfg.Endpoint)
	fmt.Fprintf(os.Stderr, "Index: %s\n", cfg.IndexName)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", cfg.EmbeddingModel)
	fmt.Fprintf(os.Stderr, "Data path: %s\n", cfg.DataPath)

	report, err := pipeline.Run(ctx, cfg.DataPath)
	if err != nil {
		return fmt.Errorf("indexing run failed: %w", err)
	}

	report.Write(os.Stdout)
	return nil
}

func indicesCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.Endpoint == "" {
		return fmt.Errorf("config: opensearch_endpoint is required")
	}

	awsCfg, err := bedrock.LoadAWSConfig(ctx, cfg.Profile, cfg.Region)
	if err != nil {
		return err
	}

	osClient, err := store.NewClient(cfg.Endpoint, awsCfg)
	if err != nil {
		return err
	}

	return store.NewInspector(osClient).Write(ctx, os.Stdout)
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
