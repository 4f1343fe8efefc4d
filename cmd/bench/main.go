// Command bench runs a synthetic Zipf workload against LFU engines and
// exposes optional pprof/Prometheus endpoints.
//
// Keys are routed to partitions by hash. Every partition is a separate
// engine owned by exactly one worker goroutine, so no engine is ever touched
// concurrently.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"time"

	"github.com/IvanBrykalov/lfucache/cache"
	"github.com/IvanBrykalov/lfucache/internal/util"
	pmet "github.com/IvanBrykalov/lfucache/metrics/prom"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// op is one generated request; read=false means Set.
type op struct {
	key  string
	read bool
}

// result is what a worker reports once its partition channel is drained.
type result struct {
	reads, writes uint64
	stats         cache.Stats
	len           int
}

// stdLogger adapts the standard log package to cache.Logger.
type stdLogger struct{ debug bool }

func (l stdLogger) Debug(msg string, kv ...any) {
	if l.debug {
		log.Println(append([]any{"DEBUG", msg}, kv...)...)
	}
}
func (l stdLogger) Info(msg string, kv ...any)  { log.Println(append([]any{"INFO", msg}, kv...)...) }
func (l stdLogger) Warn(msg string, kv ...any)  { log.Println(append([]any{"WARN", msg}, kv...)...) }
func (l stdLogger) Error(msg string, kv ...any) { log.Println(append([]any{"ERROR", msg}, kv...)...) }

func main() {
	// ---- Flags ----
	var (
		capacity   = flag.Int("cap", 100_000, "total capacity (entries), split across partitions")
		partitions = flag.Int("partitions", 0, "number of partitions/workers (0=auto)")
		duration   = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct    = flag.Int("reads", 80, "read percentage [0..100]")
		batch      = flag.Int("batch", 256, "ops per partition batch")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr; empty = disabled")
		dump        = flag.Bool("dump", false, "print partition 0 layout at the end")
		verbose     = flag.Bool("v", false, "log engine debug events")
	)
	flag.Parse()

	if *keys < 1 || *batch < 1 {
		log.Fatalf("keys and batch must be positive (keys=%d batch=%d)", *keys, *batch)
	}

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "lfu", "bench", nil)
	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- Build one engine per partition ----
	parts := *partitions
	if parts <= 0 {
		parts = util.ReasonablePartitionCount()
	}
	perPartCap := (*capacity + parts - 1) / parts // ceil
	logger := stdLogger{debug: *verbose}

	engines := make([]*cache.LFU[string, string], parts)
	for i := range engines {
		c, err := cache.New[string, string](cache.Options[string, string]{
			Capacity: perPartCap,
			Metrics:  metrics,
			Logger:   logger,
		})
		if err != nil {
			log.Fatalf("partition %d: %v", i, err)
		}
		engines[i] = c
	}

	// ---- Preload to get a realistic hit-rate (single goroutine, before workers start) ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		engines[util.Partition(k, parts)].Set(k, "v"+strconv.Itoa(i))
	}

	// ---- Load generation ----
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	inbox := make([]chan []op, parts)
	for i := range inbox {
		inbox[i] = make(chan []op, 4)
	}
	results := make([]result, parts)

	g, gctx := errgroup.WithContext(context.Background())

	// Producer: one Zipf stream, routed by key hash.
	g.Go(func() error {
		defer func() {
			for _, ch := range inbox {
				close(ch)
			}
		}()
		r := rand.New(rand.NewSource(*seed))
		zipf := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))
		pending := make([][]op, parts)

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			k := "k:" + strconv.FormatUint(zipf.Uint64(), 10)
			p := util.Partition(k, parts)
			pending[p] = append(pending[p], op{key: k, read: int(r.Int31n(100)) < *readPct})
			if len(pending[p]) < *batch {
				continue
			}
			select {
			case inbox[p] <- pending[p]:
				pending[p] = make([]op, 0, *batch)
			case <-ctx.Done():
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	// Workers: each owns engines[i] exclusively.
	start := time.Now()
	for i := 0; i < parts; i++ {
		g.Go(func() error {
			c := engines[i]
			res := &results[i]
			for ops := range inbox[i] {
				for _, o := range ops {
					if o.read {
						res.reads++
						c.Get(o.key)
					} else {
						res.writes++
						c.Set(o.key, o.key)
					}
				}
				if c.Len() > c.Capacity() {
					return fmt.Errorf("partition %d: len %d exceeds capacity %d", i, c.Len(), c.Capacity())
				}
			}
			res.stats = c.Stats()
			res.len = c.Len()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("bench: %v", err)
	}
	elapsed := time.Since(start)

	// ---- Report ----
	var total result
	for _, r := range results {
		total.reads += r.reads
		total.writes += r.writes
		total.stats.Hits += r.stats.Hits
		total.stats.Misses += r.stats.Misses
		total.stats.Evictions += r.stats.Evictions
		total.len += r.len
	}
	ops := total.reads + total.writes

	fmt.Printf("cap=%d partitions=%d keys=%d dur=%v seed=%d\n",
		*capacity, parts, *keys, elapsed, *seed)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), total.reads, total.writes)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%  evictions=%d\n",
		total.stats.Hits, total.stats.Misses, total.stats.HitRatio()*100, total.stats.Evictions)
	fmt.Printf("Len()=%d\n", total.len)

	if *dump {
		fmt.Print(engines[0].Dump())
	}
}
