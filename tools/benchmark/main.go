package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
)

const (
	defaultItems = 10000

	// hashChunkSize is how many products one pool task hashes, so pool
	// overhead stays out of the measured rate
	hashChunkSize = 512
)

type Config struct {
	Items         int
	UpdatePercent int // Percentage of the baseline mutated into updates
	RemovePercent int // Percentage of the baseline dropped from the next batch
	CreatePercent int // Percentage of new items added to the next batch
	Concurrency   int // Number of concurrent hash workers
	Seed          int64
	Debug         bool
	OutputFile    string // Output markdown file path (optional)
}

// BenchmarkStats captures one full generate/hash/diff cycle
type BenchmarkStats struct {
	BaselineItems int
	CurrentItems  int
	Concurrency   int
	Seed          int64

	GenerateDuration time.Duration
	BaselineDuration time.Duration
	RehashDuration   time.Duration
	DiffDuration     time.Duration
	TotalDuration    time.Duration

	HashErrors int

	Created   int
	Updated   int
	Unchanged int
	Removed   int
	BatchHash string
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	fmt.Printf("Catalog hashing benchmark\n")
	fmt.Printf("  Items:       %d\n", cfg.Items)
	fmt.Printf("  Churn:       update %d%%, remove %d%%, create %d%%\n",
		cfg.UpdatePercent, cfg.RemovePercent, cfg.CreatePercent)
	fmt.Printf("  Concurrency: %d\n", cfg.Concurrency)
	fmt.Printf("  Seed:        %d\n\n", cfg.Seed)

	stats, err := runBenchmark(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nBenchmark interrupted before completion, no results to report")
			return
		}
		fmt.Printf("Error running benchmark: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("BENCHMARK RESULTS")
	fmt.Println(strings.Repeat("=", 80))
	printBenchmarkStats(stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.IntVar(&cfg.Items, "items", defaultItems, "Number of synthetic products in the baseline batch")
	flag.IntVar(&cfg.UpdatePercent, "update-percent", 10, "Percentage of the baseline mutated into updates (default: 10)")
	flag.IntVar(&cfg.RemovePercent, "remove-percent", 5, "Percentage of the baseline dropped from the next batch (default: 5)")
	flag.IntVar(&cfg.CreatePercent, "create-percent", 5, "Percentage of new items added to the next batch (default: 5)")
	flag.IntVar(&cfg.Concurrency, "concurrency", 0, "Number of concurrent hash workers (0 = number of CPUs)")
	flag.Int64Var(&cfg.Seed, "seed", 42, "Seed for the synthetic catalog generator")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	configFile := flag.String("config", "", "Path to config file (optional)")
	saveConfig := flag.Bool("save-config", false, "Persist items and concurrency as defaults")

	flag.Parse()

	// Load from config file if specified
	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Printf("Warning: failed to load config file: %v\n", err)
		} else {
			// Override with file values if not set via flags
			if cfg.Items == defaultItems && fileCfg.Items > 0 {
				cfg.Items = fileCfg.Items
			}
			if cfg.Concurrency == 0 && fileCfg.Concurrency > 0 {
				cfg.Concurrency = fileCfg.Concurrency
			}
		}
	}

	if cfg.Items <= 0 {
		cfg.Items = defaultItems
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.NumCPU()
	}
	cfg.UpdatePercent = clampPercent(cfg.UpdatePercent)
	cfg.RemovePercent = clampPercent(cfg.RemovePercent)
	cfg.CreatePercent = clampPercent(cfg.CreatePercent)
	if cfg.UpdatePercent+cfg.RemovePercent > 100 {
		fmt.Println("Error: update-percent and remove-percent cannot exceed 100 combined")
		flag.Usage()
		os.Exit(1)
	}

	if *saveConfig {
		path := *configFile
		if path == "" {
			path = GetDefaultConfigPath()
		}
		if err := SaveConfig(path, &BenchmarkConfig{Items: cfg.Items, Concurrency: cfg.Concurrency}); err != nil {
			fmt.Printf("Warning: failed to save config file: %v\n", err)
		}
	}

	return cfg
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// runBenchmark measures the full change detection pipeline: generate a
// baseline batch, hash it, apply churn, hash the next batch and diff the two
// hash maps the way a sync run does.
func runBenchmark(ctx context.Context, cfg *Config) (*BenchmarkStats, error) {
	hasher := canonical.NewHasher(adapter.NewJSON(), adapter.NewJCS())
	rng := rand.New(rand.NewSource(cfg.Seed))

	stats := &BenchmarkStats{
		Concurrency: cfg.Concurrency,
		Seed:        cfg.Seed,
	}
	benchStart := time.Now()

	fmt.Printf("⏳ Generating %d synthetic products...\n", cfg.Items)
	phaseStart := time.Now()
	baseline := generateProducts(rng, 0, cfg.Items)
	stats.GenerateDuration = time.Since(phaseStart)
	stats.BaselineItems = len(baseline)
	fmt.Printf("✓ Generated in %s\n", formatDuration(stats.GenerateDuration))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fmt.Printf("⏳ Hashing baseline batch (%d workers)...\n", cfg.Concurrency)
	phaseStart = time.Now()
	baselineHashes, hashErrors := hashAll(ctx, hasher, baseline, cfg)
	stats.BaselineDuration = time.Since(phaseStart)
	stats.HashErrors += hashErrors
	fmt.Printf("✓ Baseline hashed in %s (%s)\n",
		formatDuration(stats.BaselineDuration), formatRate(stats.BaselineItems, stats.BaselineDuration))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	current := applyChurn(rng, baseline, cfg)
	stats.CurrentItems = len(current)

	fmt.Printf("⏳ Hashing next batch (%d items)...\n", stats.CurrentItems)
	phaseStart = time.Now()
	currentHashes, hashErrors := hashAll(ctx, hasher, current, cfg)
	stats.RehashDuration = time.Since(phaseStart)
	stats.HashErrors += hashErrors
	fmt.Printf("✓ Next batch hashed in %s (%s)\n",
		formatDuration(stats.RehashDuration), formatRate(stats.CurrentItems, stats.RehashDuration))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fmt.Printf("⏳ Diffing batches...\n")
	phaseStart = time.Now()
	stats.Created, stats.Updated, stats.Unchanged, stats.Removed = diffHashes(baselineHashes, currentHashes)
	itemHashes := make([]string, 0, len(currentHashes))
	for _, h := range currentHashes {
		itemHashes = append(itemHashes, h)
	}
	stats.BatchHash = hasher.HashBatch(itemHashes)
	stats.DiffDuration = time.Since(phaseStart)

	stats.TotalDuration = time.Since(benchStart)
	return stats, nil
}

// hashAll hashes every product through a bounded worker pool and returns the
// catalog_id to content hash map plus the number of hash failures.
func hashAll(ctx context.Context, hasher canonical.Hasher, products []*domain.CanonicalProduct, cfg *Config) (map[string]string, int) {
	hashes := make(map[string]string, len(products))
	var mu sync.Mutex
	var hashErrors atomic.Int32

	pool := pond.NewPool(cfg.Concurrency, pond.WithContext(ctx))

	for start := 0; start < len(products); start += hashChunkSize {
		chunk := products[start:min(start+hashChunkSize, len(products))]
		pool.Submit(func() {
			local := make(map[string]string, len(chunk))
			for _, p := range chunk {
				h, err := hasher.HashProduct(p)
				if err != nil {
					if cfg.Debug {
						fmt.Printf("[DEBUG] Hash failure for %s: %v\n", p.CatalogID, err)
					}
					hashErrors.Add(1)
					continue
				}
				local[p.CatalogID] = h
			}
			mu.Lock()
			for id, h := range local {
				hashes[id] = h
			}
			mu.Unlock()
		})
	}

	pool.StopAndWait()
	return hashes, int(hashErrors.Load())
}

// applyChurn derives the next batch from the baseline: the head of the kept
// range is mutated into updates, the tail of the baseline is dropped, and
// freshly generated items are appended.
func applyChurn(rng *rand.Rand, baseline []*domain.CanonicalProduct, cfg *Config) []*domain.CanonicalProduct {
	updates := len(baseline) * cfg.UpdatePercent / 100
	removes := len(baseline) * cfg.RemovePercent / 100
	creates := len(baseline) * cfg.CreatePercent / 100

	kept := baseline[:len(baseline)-removes]
	if updates > len(kept) {
		updates = len(kept)
	}

	current := make([]*domain.CanonicalProduct, 0, len(kept)+creates)
	for i, p := range kept {
		if i < updates {
			// Name is a tracked field, so the clone hashes differently
			clone := *p
			clone.Name = clone.Name + " II"
			current = append(current, &clone)
			continue
		}
		current = append(current, p)
	}

	return append(current, generateProducts(rng, len(baseline), creates)...)
}

// diffHashes classifies the next batch against the baseline by content hash
func diffHashes(baseline, current map[string]string) (created, updated, unchanged, removed int) {
	for id, hash := range current {
		prev, ok := baseline[id]
		switch {
		case !ok:
			created++
		case prev != hash:
			updated++
		default:
			unchanged++
		}
	}
	for id := range baseline {
		if _, ok := current[id]; !ok {
			removed++
		}
	}
	return created, updated, unchanged, removed
}

var (
	benchBrands    = []string{"Moscot", "Shuron", "OptiClear", "IrisLine", "Casewerk"}
	benchMaterials = []string{"acetate", "titanium", "stainless steel"}
	benchColors    = []string{"tortoise", "matte black", "crystal", "gold", "navy"}
	benchAngles    = []string{"front", "side", "detail"}
)

// generateProducts builds count synthetic products with ids starting at
// startID. The mix leans on frames the way the production catalog does, with
// the other categories represented enough to exercise every attribute shape.
func generateProducts(rng *rand.Rand, startID, count int) []*domain.CanonicalProduct {
	products := make([]*domain.CanonicalProduct, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, generateProduct(rng, startID+i))
	}
	return products
}

func generateProduct(rng *rand.Rand, n int) *domain.CanonicalProduct {
	brand := benchBrands[rng.Intn(len(benchBrands))]
	model := fmt.Sprintf("Model %04d", n)

	p := &domain.CanonicalProduct{
		CatalogID: fmt.Sprintf("bench-%06d", n),
		Brand:     brand,
		Model:     model,
		Name:      fmt.Sprintf("%s %s", brand, model),
		Source: domain.Source{
			Supplier:   strings.ToLower(brand),
			Confidence: domain.ConfidenceVerified,
			LastSyncAt: time.Now(),
		},
	}

	switch rng.Intn(10) {
	case 0:
		p.Category = domain.CategoryLenses
		p.Variants = []domain.Variant{{
			ID: "v-1",
			Lens: &domain.LensAttributes{
				Design:   "single_vision",
				Index:    1.61,
				Coatings: []string{"anti_reflective", "blue_light"},
			},
		}}
	case 1:
		p.Category = domain.CategoryContacts
		p.Variants = []domain.Variant{{
			ID: "v-1",
			Contact: &domain.ContactAttributes{
				PowerMin:     -10.0,
				PowerMax:     6.0,
				BaseCurve:    floatPtr(8.6),
				DiameterMM:   floatPtr(14.2),
				WearSchedule: "daily",
				PackSize:     30,
			},
		}}
	case 2:
		p.Category = domain.CategoryAccessories
		p.Variants = []domain.Variant{{
			ID: "v-1",
			Accessory: &domain.AccessoryAttributes{
				Kind:       "case",
				Dimensions: strPtr("160x65x40mm"),
			},
		}}
	default:
		p.Category = domain.CategoryFrames
		variantCount := 1 + rng.Intn(3)
		for v := 0; v < variantCount; v++ {
			p.Variants = append(p.Variants, domain.Variant{
				ID:    fmt.Sprintf("v-%d", v+1),
				SKU:   strPtr(fmt.Sprintf("%s-%06d-%d", strings.ToUpper(brand[:3]), n, v+1)),
				Color: strPtr(benchColors[rng.Intn(len(benchColors))]),
				Frame: &domain.FrameAttributes{
					LensWidthMM: floatPtr(float64(44 + rng.Intn(8))),
					BridgeMM:    floatPtr(float64(20 + rng.Intn(6))),
					TempleMM:    floatPtr(float64(140 + rng.Intn(11))),
					Material:    strPtr(benchMaterials[rng.Intn(len(benchMaterials))]),
				},
			})
		}
	}

	photoCount := rng.Intn(3)
	for j := 0; j < photoCount; j++ {
		p.Photos = append(p.Photos, domain.Photo{
			URL:   fmt.Sprintf("https://cdn.lensport.io/bench/%s/%d.jpg", p.CatalogID, j+1),
			Angle: strPtr(benchAngles[j%len(benchAngles)]),
			Hero:  j == 0,
		})
	}

	return p
}

func printBenchmarkStats(stats *BenchmarkStats) {
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Pipeline:\n")
	fmt.Printf("  Baseline items: %d\n", stats.BaselineItems)
	fmt.Printf("  Next batch:     %d\n", stats.CurrentItems)
	fmt.Printf("  Concurrency:    %d\n", stats.Concurrency)
	fmt.Printf("  Generate:       %s\n", formatDuration(stats.GenerateDuration))
	fmt.Printf("  Baseline hash:  %s (%s)\n",
		formatDuration(stats.BaselineDuration), formatRate(stats.BaselineItems, stats.BaselineDuration))
	fmt.Printf("  Rehash:         %s (%s)\n",
		formatDuration(stats.RehashDuration), formatRate(stats.CurrentItems, stats.RehashDuration))
	fmt.Printf("  Diff:           %s\n", formatDuration(stats.DiffDuration))
	fmt.Printf("  Total:          %s\n", formatDuration(stats.TotalDuration))
	fmt.Println()

	hashed := stats.BaselineItems + stats.CurrentItems - stats.HashErrors
	fmt.Printf("Hashing:\n")
	fmt.Printf("  %s Hashed: %d, failures: %d\n", statusEmoji(hashed, stats.HashErrors), hashed, stats.HashErrors)
	fmt.Println()

	fmt.Printf("Changeset:\n")
	fmt.Printf("  Created:    %d (%s)\n", stats.Created, percentageString(stats.Created, stats.CurrentItems))
	fmt.Printf("  Updated:    %d (%s)\n", stats.Updated, percentageString(stats.Updated, stats.CurrentItems))
	fmt.Printf("  Unchanged:  %d (%s)\n", stats.Unchanged, percentageString(stats.Unchanged, stats.CurrentItems))
	fmt.Printf("  Removed:    %d (%s of baseline)\n", stats.Removed, percentageString(stats.Removed, stats.BaselineItems))
	fmt.Printf("  Batch hash: %s\n", stats.BatchHash)
	fmt.Println(strings.Repeat("-", 80))
}

// writeMarkdownReport writes a markdown report of the benchmark results
func writeMarkdownReport(filepath string, stats *BenchmarkStats) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	_, _ = fmt.Fprintf(file, "# Catalog Hashing Benchmark Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(file, "## Run\n\n")
	_, _ = fmt.Fprintf(file, "| Property | Value |\n")
	_, _ = fmt.Fprintf(file, "|----------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Baseline Items** | %d |\n", stats.BaselineItems)
	_, _ = fmt.Fprintf(file, "| **Next Batch Items** | %d |\n", stats.CurrentItems)
	_, _ = fmt.Fprintf(file, "| **Concurrency** | %d |\n", stats.Concurrency)
	_, _ = fmt.Fprintf(file, "| **Seed** | %d |\n", stats.Seed)
	_, _ = fmt.Fprintf(file, "| **Hash Failures** | %d |\n", stats.HashErrors)
	_, _ = fmt.Fprintf(file, "| **Total Duration** | %s |\n", formatDuration(stats.TotalDuration))
	_, _ = fmt.Fprintf(file, "\n")

	_, _ = fmt.Fprintf(file, "## Phases\n\n")
	_, _ = fmt.Fprintf(file, "| Phase | Duration | Rate |\n")
	_, _ = fmt.Fprintf(file, "|-------|----------|------|\n")
	_, _ = fmt.Fprintf(file, "| Generate | %s | %s |\n",
		formatDuration(stats.GenerateDuration), formatRate(stats.BaselineItems, stats.GenerateDuration))
	_, _ = fmt.Fprintf(file, "| Baseline hash | %s | %s |\n",
		formatDuration(stats.BaselineDuration), formatRate(stats.BaselineItems, stats.BaselineDuration))
	_, _ = fmt.Fprintf(file, "| Rehash | %s | %s |\n",
		formatDuration(stats.RehashDuration), formatRate(stats.CurrentItems, stats.RehashDuration))
	_, _ = fmt.Fprintf(file, "| Diff | %s | - |\n", formatDuration(stats.DiffDuration))
	_, _ = fmt.Fprintf(file, "\n")

	_, _ = fmt.Fprintf(file, "## Changeset\n\n")
	_, _ = fmt.Fprintf(file, "| Change | Count | Share |\n")
	_, _ = fmt.Fprintf(file, "|--------|-------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Created** | %d | %s |\n", stats.Created, percentageString(stats.Created, stats.CurrentItems))
	_, _ = fmt.Fprintf(file, "| **Updated** | %d | %s |\n", stats.Updated, percentageString(stats.Updated, stats.CurrentItems))
	_, _ = fmt.Fprintf(file, "| **Unchanged** | %d | %s |\n", stats.Unchanged, percentageString(stats.Unchanged, stats.CurrentItems))
	_, _ = fmt.Fprintf(file, "| **Removed** | %d | %s of baseline |\n", stats.Removed, percentageString(stats.Removed, stats.BaselineItems))
	_, _ = fmt.Fprintf(file, "\nBatch hash: `%s`\n\n", stats.BatchHash)

	// Add metadata section for scripted consumers
	_, _ = fmt.Fprintf(file, "---\n\n")
	_, _ = fmt.Fprintf(file, "## Metadata\n\n")
	_, _ = fmt.Fprintf(file, "```json\n")
	_, _ = fmt.Fprintf(file, "{\n")
	_, _ = fmt.Fprintf(file, "  \"baseline_items\": %d,\n", stats.BaselineItems)
	_, _ = fmt.Fprintf(file, "  \"current_items\": %d,\n", stats.CurrentItems)
	_, _ = fmt.Fprintf(file, "  \"concurrency\": %d,\n", stats.Concurrency)
	_, _ = fmt.Fprintf(file, "  \"seed\": %d,\n", stats.Seed)
	_, _ = fmt.Fprintf(file, "  \"hash_errors\": %d,\n", stats.HashErrors)
	_, _ = fmt.Fprintf(file, "  \"generate_seconds\": %.3f,\n", stats.GenerateDuration.Seconds())
	_, _ = fmt.Fprintf(file, "  \"baseline_hash_seconds\": %.3f,\n", stats.BaselineDuration.Seconds())
	_, _ = fmt.Fprintf(file, "  \"rehash_seconds\": %.3f,\n", stats.RehashDuration.Seconds())
	_, _ = fmt.Fprintf(file, "  \"diff_seconds\": %.3f,\n", stats.DiffDuration.Seconds())
	_, _ = fmt.Fprintf(file, "  \"total_seconds\": %.3f,\n", stats.TotalDuration.Seconds())
	_, _ = fmt.Fprintf(file, "  \"created\": %d,\n", stats.Created)
	_, _ = fmt.Fprintf(file, "  \"updated\": %d,\n", stats.Updated)
	_, _ = fmt.Fprintf(file, "  \"unchanged\": %d,\n", stats.Unchanged)
	_, _ = fmt.Fprintf(file, "  \"removed\": %d,\n", stats.Removed)
	_, _ = fmt.Fprintf(file, "  \"batch_hash\": \"%s\"\n", stats.BatchHash)
	_, _ = fmt.Fprintf(file, "}\n")
	_, _ = fmt.Fprintf(file, "```\n")

	return nil
}
