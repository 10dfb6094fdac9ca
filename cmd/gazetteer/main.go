// Copyright 2025 Poiesic Systems
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
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/gazetteer"
	"github.com/poiesic/gazetteer/core"
	"github.com/poiesic/gazetteer/corpus"
	"github.com/poiesic/gazetteer/store/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "gazetteer",
		Usage: "Tag documents with dictionary terms",
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
				Name:      "tag",
				Usage:     "Compile a dictionary and tag a document (file argument or stdin)",
				ArgsUsage: "[document]",
				Action:    tagCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dictionary",
						Aliases:  []string{"d"},
						Usage:    "Path to dictionary file (term<TAB>label per line, .gz supported)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "filter",
						Aliases: []string{"f"},
						Usage:   "Path to filter-word file (one word per line, .gz supported)",
					},
					&cli.BoolFlag{
						Name:  "abbreviations",
						Usage: "Also match initial-letter abbreviations of multi-token terms",
					},
					&cli.BoolFlag{
						Name:  "ngrams",
						Usage: "Also match contiguous multi-token sub-sequences of terms",
					},
					&cli.IntFlag{
						Name:  "max-term-length",
						Usage: "Longest match to consider, in tokens",
						Value: 5,
					},
					&cli.BoolFlag{
						Name:  "case-sensitive",
						Usage: "Match case-sensitively instead of lower-casing tokens",
					},
					&cli.StringFlag{
						Name:  "cache",
						Usage: "Path to BadgerDB directory caching parsed dictionaries",
					},
					&cli.BoolFlag{
						Name:  "plain",
						Usage: "Emit one line per match instead of JSON",
					},
				},
			},
			{
				Name:   "warm",
				Usage:  "Pre-parse a dictionary into the cache",
				Action: warmCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dictionary",
						Aliases:  []string{"d"},
						Usage:    "Path to dictionary file (term<TAB>label per line, .gz supported)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "cache",
						Usage:    "Path to BadgerDB directory caching parsed dictionaries",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func tagCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg := core.Config{
		ExpandAbbreviations: c.Bool("abbreviations"),
		ExpandNGrams:        c.Bool("ngrams"),
		MaxTermLength:       c.Int("max-term-length"),
		CaseSensitive:       c.Bool("case-sensitive"),
	}
	if err := core.ValidateConfig(cfg); err != nil {
		return err
	}

	var opts []gazetteer.Option
	if cachePath := c.String("cache"); cachePath != "" {
		backend, err := badger.OpenBackend(cachePath, false)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		defer backend.Close()

		cache, err := badger.NewEntryCache(backend)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}
		opts = append(opts, gazetteer.WithCache(cache))
	}

	g, err := gazetteer.New(opts...)
	if err != nil {
		return err
	}
	defer g.Close()

	if err := g.Load(ctx, c.String("dictionary"), c.String("filter"), cfg); err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	text, err := readDocument(c)
	if err != nil {
		return err
	}

	matches, err := g.Tag(ctx, text)
	if err != nil {
		return fmt.Errorf("tagging failed: %w", err)
	}

	if c.Bool("plain") {
		for i := range matches {
			fmt.Println(matches[i].String())
		}
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}

func warmCommand(c *cli.Context) error {
	ctx := context.Background()
	dictPath := c.String("dictionary")

	backend, err := badger.OpenBackend(c.String("cache"), false)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer backend.Close()

	cache, err := badger.NewEntryCache(backend)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}

	raw, err := corpus.ReadBytes(dictPath)
	if err != nil {
		return err
	}

	entries, stats, err := corpus.ReadDictionary(dictPath)
	if err != nil {
		return err
	}

	if err := cache.PutEntries(ctx, core.IDFromBytes(raw), entries); err != nil {
		return fmt.Errorf("failed to populate cache: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Dictionary: %s\n", dictPath)
	fmt.Fprintf(os.Stderr, "Cached %d entries (%d lines skipped)\n", stats.Entries, stats.Skipped)
	return nil
}

// readDocument reads the document to tag: the file named by the first
// argument, or stdin when no argument is given.
func readDocument(c *cli.Context) (string, error) {
	if c.Args().Len() > 0 {
		data, err := os.ReadFile(c.Args().First())
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
