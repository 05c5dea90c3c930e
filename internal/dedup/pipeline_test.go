// Copyright 2025 James Ross
package dedup

import (
	"testing"

	"github.com/jamesross/textdedup/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Column:  "text",
		Workers: 4,
		Exact: config.ExactConfig{
			HashFunc:  config.HashXXH3,
			BatchSize: 100,
		},
		MinHash: config.MinHashConfig{
			NGram:          3,
			MinTokens:      3,
			NumPerm:        64,
			Threshold:      0.7,
			Seed:           42,
			FalsePositiveW: 0.5,
			FalseNegativeW: 0.5,
		},
		Observability: config.Observability{LogLevel: "error", MetricsPort: 9090},
	}
	return cfg
}

func TestRunExactDropsExactDuplicates(t *testing.T) {
	cfg := testConfig()
	src := &InMemorySource{Contents: []string{
		"alpha record one",
		"beta record two",
		"alpha record one",
		"gamma record three",
	}}
	sink := NewInMemorySink()
	report := RunExact(cfg, src, sink, zap.NewNop())

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 3, report.Kept)
	assert.Equal(t, 1, report.Dropped)
	assert.Equal(t, 0, sink.Dropped[2])
}

func TestRunExactNoDuplicatesKeepsAll(t *testing.T) {
	cfg := testConfig()
	src := &InMemorySource{Contents: []string{"one", "two", "three"}}
	sink := NewInMemorySink()
	report := RunExact(cfg, src, sink, zap.NewNop())

	assert.Equal(t, 3, report.Kept)
	assert.Equal(t, 0, report.Dropped)
}

func TestRunFuzzyClustersNearDuplicates(t *testing.T) {
	cfg := testConfig()
	src := &InMemorySource{Contents: []string{
		"the quick brown fox jumps over the lazy dog near the river bank",
		"the quick brown fox jumps over the lazy dog near the river shore",
		"completely unrelated content about orbital mechanics and thrust vectors",
	}}
	sink := NewInMemorySink()
	report := RunFuzzy(cfg, src, sink, zap.NewNop())

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Dropped)
	assert.Equal(t, 2, report.Kept)
	assert.Equal(t, 0, sink.Dropped[1])
}

func TestRunFuzzyDissimilarContentAllKept(t *testing.T) {
	cfg := testConfig()
	src := &InMemorySource{Contents: []string{
		"aardvark beetle caterpillar dragonfly elephant falcon giraffe",
		"hydrogen helium lithium beryllium boron carbon nitrogen oxygen",
		"sonata concerto symphony overture nocturne prelude fugue",
	}}
	sink := NewInMemorySink()
	report := RunFuzzy(cfg, src, sink, zap.NewNop())

	assert.Equal(t, 3, report.Kept)
	assert.Equal(t, 0, report.Dropped)
}

func TestRunExactEmptySourceProducesEmptyReport(t *testing.T) {
	cfg := testConfig()
	src := &InMemorySource{Contents: nil}
	sink := NewInMemorySink()
	report := RunExact(cfg, src, sink, zap.NewNop())

	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0, report.Kept)
	assert.Equal(t, 0, report.Dropped)
}
