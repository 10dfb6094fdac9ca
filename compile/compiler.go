package compile

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/gazetteer/core"
	"github.com/poiesic/gazetteer/expand"
	"github.com/poiesic/gazetteer/token"
	"github.com/poiesic/gazetteer/trie"
)

// Entries per expansion task submitted to the pool.
const shardSize = 4096

// Compiler turns dictionary entries into a frozen trie. Expansion (the
// CPU-heavy part) runs on a worker pool; insertion is single-writer, so
// the trie under construction is never shared between goroutines.
type Compiler struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Compiler.
type Option func(*Compiler) error

// WithPoolSize sets the worker pool size for parallel term expansion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(c *Compiler) error {
		if size < 1 {
			size = 1
		}

		if c.pool != nil {
			c.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		c.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewCompiler creates a compiler with its own worker pool. Call Release
// when done with it.
func NewCompiler(opts ...Option) (*Compiler, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	c := &Compiler{
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			c.Release()
			return nil, err
		}
	}

	return c, nil
}

// Release releases the worker pool. The compiler must not be used after
// calling Release.
func (c *Compiler) Release() {
	if c.pool != nil {
		c.pool.Release()
	}
}

// Stats accounts for one compilation.
type Stats struct {
	Entries    int // usable dictionary entries received
	EmptyTerms int // entries whose term tokenized to nothing, skipped
	Variants   int // token sequences inserted, expansions included
}

// insertion is one expanded token sequence waiting to go into the trie.
type insertion struct {
	tokens []string
	ann    core.Annotation
}

type shardResult struct {
	insertions []insertion
	stats      Stats
	err        error
}

// Compile expands all entries with the given tokenizer and configuration
// and builds a frozen trie. The result is deterministic: shard results
// are applied in entry order, so annotation order within a node follows
// dictionary order. A tokenizer failure fails the whole compilation.
func (c *Compiler) Compile(ctx context.Context, entries []core.Entry, tokenizer token.Tokenizer, cfg core.Config) (*trie.Trie, Stats, error) {
	if tokenizer == nil {
		return nil, Stats{}, ErrTokenizerRequired
	}
	if err := core.ValidateConfig(cfg); err != nil {
		return nil, Stats{}, err
	}

	opts := expand.Options{
		Abbreviations: cfg.ExpandAbbreviations,
		NGrams:        cfg.ExpandNGrams,
	}

	// Expansion phase: contiguous shards, results kept in shard order.
	shards := shardCount(len(entries))
	results := make([]shardResult, shards)

	var wg sync.WaitGroup
	for si := 0; si < shards; si++ {
		lo := si * shardSize
		hi := min(lo+shardSize, len(entries))
		shard := entries[lo:hi]
		out := &results[si]

		wg.Add(1)
		task := func() {
			defer wg.Done()
			*out = c.expandShard(shard, tokenizer, opts)
		}
		if err := c.pool.Submit(task); err != nil {
			wg.Done()
			wg.Wait()
			return nil, Stats{}, fmt.Errorf("submitting expansion task: %w", err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	// Insertion phase: single writer.
	builder := trie.NewBuilder()
	var stats Stats
	for si := range results {
		res := &results[si]
		if res.err != nil {
			return nil, Stats{}, res.err
		}
		stats.Entries += res.stats.Entries
		stats.EmptyTerms += res.stats.EmptyTerms
		for _, ins := range res.insertions {
			if err := builder.Insert(ins.tokens, ins.ann); err != nil {
				return nil, Stats{}, err
			}
			stats.Variants++
		}
		if err := ctx.Err(); err != nil {
			return nil, Stats{}, err
		}
	}

	if stats.EmptyTerms > 0 {
		c.logger.Warn("skipped dictionary entries with empty tokenization", "count", stats.EmptyTerms)
	}

	return builder.Freeze(), stats, nil
}

func (c *Compiler) expandShard(entries []core.Entry, tokenizer token.Tokenizer, opts expand.Options) shardResult {
	var res shardResult
	for _, entry := range entries {
		tokens, _, err := tokenizer.Tokenize(entry.Term)
		if err != nil {
			res.err = fmt.Errorf("tokenizing term %q: %w", entry.Term, err)
			return res
		}
		if len(tokens) == 0 {
			res.stats.EmptyTerms++
			continue
		}
		res.stats.Entries++

		for _, variant := range expand.Expand(tokens, opts) {
			res.insertions = append(res.insertions, insertion{
				tokens: variant.Tokens,
				ann: core.Annotation{
					Label:  entry.Label,
					Type:   variant.Type,
					Source: tokens,
				},
			})
		}
	}
	return res
}

func shardCount(n int) int {
	if n == 0 {
		return 0
	}
	return (n + shardSize - 1) / shardSize
}
