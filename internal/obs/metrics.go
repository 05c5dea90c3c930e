// Copyright 2025 James Ross
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecordsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "records_processed_total",
		Help: "Total number of records processed, by pipeline stage",
	}, []string{"stage"})
	DuplicatesFound = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "duplicates_found_total",
		Help: "Total number of records dropped as duplicates, by engine",
	}, []string{"engine"})
	StageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stage_duration_seconds",
		Help:    "Wall-clock duration of each pipeline stage",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
	BucketSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "lsh_bucket_size",
		Help:    "Distribution of LSH bucket sizes observed during clustering",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
	ClustersFormed = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clusters_formed",
		Help: "Number of non-trivial clusters formed in the most recent fuzzy run",
	})
)

func init() {
	prometheus.MustRegister(RecordsProcessed, DuplicatesFound, StageDuration, BucketSize, ClustersFormed)
}
