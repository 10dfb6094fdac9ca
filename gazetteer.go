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


// Package gazetteer tags documents with dictionary terms. A dictionary of
// (term, label) pairs is compiled into a token trie, optionally expanded
// with abbreviation and n-gram variants, and documents are scanned against
// it in a single pass with a longest-match policy.
package gazetteer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/poiesic/gazetteer/compile"
	"github.com/poiesic/gazetteer/core"
	"github.com/poiesic/gazetteer/corpus"
	"github.com/poiesic/gazetteer/match"
	"github.com/poiesic/gazetteer/store"
	"github.com/poiesic/gazetteer/token"
)

// Quiet interval after the last file event before a reload fires.
const watchDebounce = 250 * time.Millisecond

// snapshot is one fully built generation: everything Tag needs, immutable
// once published.
type snapshot struct {
	matcher    *match.Matcher
	cfg        core.Config
	dictPath   string
	filterPath string
	stats      compile.Stats
}

// Gazetteer is the top-level tagger. Load compiles a dictionary into a
// new snapshot and publishes it atomically; Tag reads whichever snapshot
// is current. Loads are serialized; Tag never blocks on a load.
type Gazetteer struct {
	current  atomic.Pointer[snapshot]
	compiler *compile.Compiler
	cache    store.EntryCache
	logger   *slog.Logger

	mu        sync.Mutex // serializes Load/Reload and guards watcher state
	watcher   *fsnotify.Watcher
	watchDone chan struct{}
}

// Option configures a Gazetteer.
type Option func(*Gazetteer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gazetteer) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// WithCache sets a parsed-dictionary cache consulted by Load. The cache
// is keyed by the content hash of the raw dictionary file, so edits are
// never served stale. The caller keeps ownership and closes the cache.
func WithCache(cache store.EntryCache) Option {
	return func(g *Gazetteer) error {
		g.cache = cache
		return nil
	}
}

// WithPoolSize sets the worker pool size used for term expansion during
// compilation.
func WithPoolSize(size int) Option {
	return func(g *Gazetteer) error {
		return compile.WithPoolSize(size)(g.compiler)
	}
}

// New creates a gazetteer with no dictionary loaded. Call Close when done
// with it.
func New(opts ...Option) (*Gazetteer, error) {
	compiler, err := compile.NewCompiler()
	if err != nil {
		return nil, err
	}

	g := &Gazetteer{
		compiler: compiler,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			compiler.Release()
			return nil, err
		}
	}

	return g, nil
}

// Load reads the dictionary (and optional filter file, "" for none),
// compiles a new snapshot under cfg, and publishes it. On error the
// previously published snapshot, if any, keeps serving.
func (g *Gazetteer) Load(ctx context.Context, dictPath, filterPath string, cfg core.Config) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.load(ctx, dictPath, filterPath, cfg)
}

// Reload rebuilds from the paths and configuration of the last successful
// Load. A failed reload leaves the current snapshot serving.
func (g *Gazetteer) Reload(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := g.current.Load()
	if snap == nil {
		return ErrNotLoaded
	}
	return g.load(ctx, snap.dictPath, snap.filterPath, snap.cfg)
}

// Tag scans text against the current snapshot. Matches are ordered by
// begin token index; every start index contributes at most its longest
// match.
func (g *Gazetteer) Tag(ctx context.Context, text string) ([]core.Match, error) {
	snap := g.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.matcher.Tag(ctx, text)
}

// Stats returns the compile statistics of the current snapshot, or false
// when nothing is loaded.
func (g *Gazetteer) Stats() (compile.Stats, bool) {
	snap := g.current.Load()
	if snap == nil {
		return compile.Stats{}, false
	}
	return snap.stats, true
}

// load builds and publishes a snapshot. Caller holds g.mu.
func (g *Gazetteer) load(ctx context.Context, dictPath, filterPath string, cfg core.Config) error {
	if err := core.ValidateConfig(cfg); err != nil {
		return err
	}

	tokenizer := token.NewSplitter(cfg.CaseSensitive)

	entries, err := g.readEntries(ctx, dictPath)
	if err != nil {
		return err
	}

	var filter *match.FilterSet
	if filterPath != "" {
		words, err := corpus.ReadFilter(filterPath)
		if err != nil {
			return err
		}
		filter = g.buildFilter(words, tokenizer)
	}

	start := time.Now()
	t, stats, err := g.compiler.Compile(ctx, entries, tokenizer, cfg)
	if err != nil {
		return err
	}

	matcher, err := match.NewMatcher(t, filter, tokenizer, cfg.MaxTermLength, match.WithLogger(g.logger))
	if err != nil {
		return err
	}

	g.logger.Info("dictionary compiled",
		"dictionary", dictPath,
		"entries", stats.Entries,
		"variants", stats.Variants,
		"nodes", t.NodeCount(),
		"elapsed", time.Since(start))

	g.current.Store(&snapshot{
		matcher:    matcher,
		cfg:        cfg,
		dictPath:   dictPath,
		filterPath: filterPath,
		stats:      stats,
	})
	return nil
}

// readEntries parses the dictionary, going through the cache when one is
// configured. Cache failures fall back to parsing; a miss populates.
func (g *Gazetteer) readEntries(ctx context.Context, dictPath string) ([]core.Entry, error) {
	if g.cache == nil {
		entries, rstats, err := corpus.ReadDictionary(dictPath)
		if err != nil {
			return nil, err
		}
		g.logReadStats(dictPath, rstats)
		return entries, nil
	}

	raw, err := corpus.ReadBytes(dictPath)
	if err != nil {
		return nil, err
	}
	key := core.IDFromBytes(raw)

	entries, err := g.cache.GetEntries(ctx, key)
	if err == nil {
		g.logger.Debug("dictionary cache hit", "dictionary", dictPath, "key", key)
		return entries, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		g.logger.Warn("dictionary cache read failed", "dictionary", dictPath, "err", err)
	}

	entries, rstats, err := corpus.ReadDictionary(dictPath)
	if err != nil {
		return nil, err
	}
	g.logReadStats(dictPath, rstats)

	if err := g.cache.PutEntries(ctx, key, entries); err != nil {
		g.logger.Warn("dictionary cache write failed", "dictionary", dictPath, "err", err)
	}
	return entries, nil
}

func (g *Gazetteer) logReadStats(dictPath string, rstats corpus.Stats) {
	if rstats.Skipped > 0 {
		g.logger.Warn("skipped malformed dictionary lines",
			"dictionary", dictPath, "skipped", rstats.Skipped)
	}
}

// buildFilter normalizes filter words through the tokenizer so membership
// tests see the same token forms the matcher does. A multi-token filter
// line contributes each of its tokens.
func (g *Gazetteer) buildFilter(words []string, tokenizer token.Tokenizer) *match.FilterSet {
	var tokens []string
	for _, word := range words {
		toks, _, err := tokenizer.Tokenize(word)
		if err != nil {
			continue
		}
		tokens = append(tokens, toks...)
	}
	return match.NewFilterSet(tokens)
}

// Watch starts watching the dictionary and filter files of the last
// successful Load and reloads on change, debounced. Reload failures are
// logged and the current snapshot keeps serving. Close stops the watch.
func (g *Gazetteer) Watch() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.watcher != nil {
		return ErrAlreadyWatching
	}
	snap := g.current.Load()
	if snap == nil {
		return ErrNotLoaded
	}

	watched := make(map[string]struct{})
	dirs := make(map[string]struct{})
	for _, p := range []string{snap.dictPath, snap.filterPath} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	// Watch the parent directories, not the files: editors replace files
	// by rename, which drops a direct file watch.
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	g.watcher = fw
	g.watchDone = make(chan struct{})
	go g.watchLoop(fw, watched, g.watchDone)
	return nil
}

func (g *Gazetteer) watchLoop(fw *fsnotify.Watcher, watched map[string]struct{}, done chan struct{}) {
	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := watched[abs]; !ok {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounce.Reset(watchDebounce)
			}

		case <-debounce.C:
			g.logger.Info("watched corpus changed, reloading")
			if err := g.Reload(context.Background()); err != nil {
				g.logger.Error("reload after file change failed", "err", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			g.logger.Warn("file watcher error", "err", err)

		case <-done:
			return
		}
	}
}

// Close stops any active watch and releases the compiler's worker pool.
// A configured cache is not closed; the caller owns it.
func (g *Gazetteer) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.watcher != nil {
		close(g.watchDone)
		if err := g.watcher.Close(); err != nil {
			g.logger.Error("error closing file watcher", "err", err)
		}
		g.watcher = nil
		g.watchDone = nil
	}

	g.compiler.Release()
	return nil
}
