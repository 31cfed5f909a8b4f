// Command ahtctl is a small operator tool for exercising and inspecting an
// array hash table: benchmarking insert/lookup throughput, dumping a
// table's contents to a portable snapshot file, and printing summary
// statistics for one.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/atomic"

	"github.com/arrayhash/aht"
	"github.com/arrayhash/aht/hash"
)

var cli struct {
	Config string `help:"Path to a YAML config file." type:"path"`

	Bench      benchCmd      `cmd:"" help:"Benchmark insert and lookup throughput."`
	Dump       dumpCmd       `cmd:"" help:"Dump a table's live key/value pairs to a snapshot file."`
	Inspect    inspectCmd    `cmd:"" help:"Print summary statistics for a snapshot file."`
	ConfigInit configInitCmd `cmd:"config-init" help:"Write a default config file to stdout."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ahtctl"),
		kong.Description("Operator tool for the array hash table library."),
		kong.UsageOnError(),
	)

	cfg, err := loadConfig(cli.Config)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&cfg)
	ctx.FatalIfErrorf(err)
}

func hashByName(name string) (hash.Func, error) {
	switch name {
	case "xxhash":
		return hash.XXHash, nil
	case "fnv1a":
		return hash.FNV1a, nil
	default:
		return nil, fmt.Errorf("unknown hash %q (want xxhash or fnv1a)", name)
	}
}

type configInitCmd struct{}

func (c *configInitCmd) Run(_ *Config) error {
	out, err := marshalDefaultConfig()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

type dumpCmd struct {
	Keys int    `help:"Number of synthetic keys to generate and insert before dumping." default:"1000"`
	Out  string `help:"Output snapshot path." arg:""`
}

func (c *dumpCmd) Run(cfg *Config) error {
	h, err := hashByName(cfg.Hash)
	if err != nil {
		return err
	}
	t := aht.NewSized(h, cfg.InitialBuckets)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < c.Keys; i++ {
		key := []byte(fmt.Sprintf("key-%d-%d", i, rng.Int63()))
		ref, err := t.Get(key)
		if err != nil {
			return err
		}
		ref.Store(uint64(i))
	}

	id, n, err := dumpTable(t, c.Out)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s records (session %s) to %s\n", humanize.Comma(int64(n)), id, c.Out)
	return nil
}

type inspectCmd struct {
	In string `help:"Snapshot path to inspect." arg:""`
}

func (c *inspectCmd) Run(cfg *Config) error {
	h, err := hashByName(cfg.Hash)
	if err != nil {
		return err
	}
	t := aht.NewSized(h, cfg.InitialBuckets)

	id, n, err := loadTable(c.In, t)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"session", id})
	table.Append([]string{"records", humanize.Comma(int64(n))})
	table.Append([]string{"buckets", humanize.Comma(int64(t.Buckets()))})
	table.Append([]string{"size", humanize.Comma(int64(t.Size()))})
	table.Render()
	return nil
}

type benchCmd struct {
	Keys    int `help:"Number of keys per worker." default:"100000"`
	Workers int `help:"Number of concurrent tables to benchmark in parallel." default:"4"`
}

func (c *benchCmd) Run(cfg *Config) error {
	h, err := hashByName(cfg.Hash)
	if err != nil {
		return err
	}

	var (
		wg          sync.WaitGroup
		totalInsert atomic.Duration
		totalLookup atomic.Duration
	)

	for w := 0; w < c.Workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()

			t := aht.NewSized(h, cfg.InitialBuckets)
			rng := rand.New(rand.NewSource(seed))
			keys := make([][]byte, c.Keys)
			for i := range keys {
				keys[i] = []byte(fmt.Sprintf("k-%d-%d", seed, rng.Int63()))
			}

			start := time.Now()
			for i, key := range keys {
				ref, err := t.Get(key)
				if err != nil {
					continue
				}
				ref.Store(uint64(i))
			}
			totalInsert.Add(time.Since(start))

			start = time.Now()
			for _, key := range keys {
				_, _, _ = t.TryGet(key)
			}
			totalLookup.Add(time.Since(start))
		}(int64(w + 1))
	}
	wg.Wait()

	totalKeys := int64(c.Keys * c.Workers)
	fmt.Printf("inserted %s keys across %d workers in %s (%s/op)\n",
		humanize.Comma(totalKeys), c.Workers, totalInsert.Load(),
		time.Duration(int64(totalInsert.Load())/totalKeys))
	fmt.Printf("looked up %s keys across %d workers in %s (%s/op)\n",
		humanize.Comma(totalKeys), c.Workers, totalLookup.Load(),
		time.Duration(int64(totalLookup.Load())/totalKeys))
	return nil
}
