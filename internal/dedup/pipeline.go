// Copyright 2025 James Ross
package dedup

import (
	"time"

	"github.com/jamesross/textdedup/internal/config"
	"github.com/jamesross/textdedup/internal/obs"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// StageReport captures one pipeline stage's timing, logged and emitted to
// obs.StageDuration once the stage completes.
type StageReport struct {
	Name     string
	Duration time.Duration
}

// RunReport summarizes one full pipeline invocation.
type RunReport struct {
	Engine   string
	Total    int
	Kept     int
	Dropped  int
	Clusters int
	Stages   []StageReport
}

func timeStage(name string, fn func()) StageReport {
	start := time.Now()
	fn()
	d := time.Since(start)
	obs.StageDuration.WithLabelValues(name).Observe(d.Seconds())
	return StageReport{Name: name, Duration: d}
}

// RunExact executes the exact-hash dedup engine end to end: load, digest
// (in parallel), resolve (sequentially, lowest id wins), emit.
func RunExact(cfg *config.Config, src RecordSource, sink Sink, logger *zap.Logger) RunReport {
	n := src.Len()
	report := RunReport{Engine: "exact", Total: n}
	engine := NewExactEngine(string(cfg.Exact.HashFunc))
	digests := make([]string, n)

	report.Stages = append(report.Stages, timeStage("digest", func() {
		batches := Batches(n, cfg.Exact.BatchSize)
		for bi, batch := range batches {
			start, end := batch[0], batch[1]
			MapIndices(end-start, cfg.Workers, func(j int) {
				i := start + j
				rec := src.Record(i)
				d, err := engine.Digest(rec.Content)
				if err != nil {
					logger.Warn("digest failed", obs.Int("idx", i), obs.Err(err))
					d = ""
				}
				digests[i] = d
				obs.RecordsProcessed.WithLabelValues("digest").Inc()
			})
			logger.Debug("digest batch complete", obs.Int("batch", bi+1), obs.Int("of", len(batches)))
		}
	}))

	var results []Result
	report.Stages = append(report.Stages, timeStage("resolve", func() {
		results = engine.Resolve(digests)
	}))

	report.Stages = append(report.Stages, timeStage("emit", func() {
		for i, res := range results {
			if res.IsDuplicate {
				sink.Drop(i, res.DuplicateOf)
				obs.DuplicatesFound.WithLabelValues("exact").Inc()
				report.Dropped++
			} else {
				sink.Keep(i)
				report.Kept++
			}
		}
	}))

	logger.Info("exact dedup complete",
		obs.Int("total", report.Total),
		obs.Int("kept", report.Kept),
		obs.Int("dropped", report.Dropped))
	return report
}

// RunFuzzy executes the MinHash-LSH fuzzy dedup engine end to end: load,
// fingerprint (in parallel), band-index + cluster, pick one representative
// per cluster (its minimum member), emit.
func RunFuzzy(cfg *config.Config, src RecordSource, sink Sink, logger *zap.Logger) RunReport {
	n := src.Len()
	report := RunReport{Engine: "fuzzy", Total: n}

	bands, rows := OptimalParam(cfg.MinHash.Threshold, cfg.MinHash.NumPerm, cfg.MinHash.FalsePositiveW, cfg.MinHash.FalseNegativeW)
	logger.Debug("lsh parameters chosen", obs.Int("bands", bands), obs.Int("rows", rows))

	perm := NewPermTable(cfg.MinHash.NumPerm, cfg.MinHash.Seed)
	fingerprints := make([]Fingerprint, n)

	limiter := rate.NewLimiter(rate.Every(config.StatsInterval), 1)

	report.Stages = append(report.Stages, timeStage("fingerprint", func() {
		MapIndices(n, cfg.Workers, func(i int) {
			rec := src.Record(i)
			fingerprints[i] = FingerprintRecord(i, rec.Content, cfg.MinHash.NGram, cfg.MinHash.MinTokens, perm, bands, rows)
			obs.RecordsProcessed.WithLabelValues("fingerprint").Inc()
			if limiter.Allow() {
				logger.Info("fingerprinting in progress", obs.Int("done", i+1), obs.Int("total", n))
			}
		})
	}))

	index := NewLSHIndex(bands)
	uf := NewUnionFind(n)
	BucketSizeObserver = func(size int) { obs.BucketSize.Observe(float64(size)) }

	report.Stages = append(report.Stages, timeStage("index", func() {
		for _, fp := range fingerprints {
			index.Insert(fp)
		}
	}))

	var clusters map[int][]int
	report.Stages = append(report.Stages, timeStage("cluster", func() {
		index.Cluster(uf)
		clusters = Clusters(uf, n)
	}))

	report.Clusters = len(clusters)
	obs.ClustersFormed.Set(float64(report.Clusters))

	dupOf := make(map[int]int)
	for root, members := range clusters {
		for _, m := range members {
			if m != root {
				dupOf[m] = root
			}
		}
	}

	report.Stages = append(report.Stages, timeStage("emit", func() {
		for i := 0; i < n; i++ {
			if rep, ok := dupOf[i]; ok {
				sink.Drop(i, rep)
				obs.DuplicatesFound.WithLabelValues("fuzzy").Inc()
				report.Dropped++
			} else {
				sink.Keep(i)
				report.Kept++
			}
		}
	}))

	logger.Info("fuzzy dedup complete",
		obs.Int("total", report.Total),
		obs.Int("kept", report.Kept),
		obs.Int("dropped", report.Dropped),
		obs.Int("clusters", report.Clusters))
	return report
}
