// Copyright 2025 James Ross
package dedup

import "sync"

// shardCount is the number of seen-set shards the exact engine keys
// digests into, by the digest's first byte. Digest computation never
// touches the shards, and bucket distribution is never load-bearing for
// correctness.
const shardCount = 64

// shard is one partition of the seen-digest set, guarded by its own mutex
// so claims on different shards do not share a single lock.
type shard struct {
	mu   sync.Mutex
	seen map[string]int // digest -> id of the record that claimed it
}

// ExactEngine deduplicates records by exact content digest: the first
// occurrence (lowest id) of a digest survives, every later occurrence is
// marked a duplicate of it. Digest computation runs across workers;
// claiming a digest is inherently sequential in id order, since "lowest id
// wins" is only well-defined if claims happen in that order.
type ExactEngine struct {
	hashFunc string
	shards   [shardCount]*shard
}

// NewExactEngine builds an engine for the given content hash function.
func NewExactEngine(hashFunc string) *ExactEngine {
	e := &ExactEngine{hashFunc: hashFunc}
	for i := range e.shards {
		e.shards[i] = &shard{seen: make(map[string]int)}
	}
	return e
}

func (e *ExactEngine) shardFor(digest string) *shard {
	if len(digest) == 0 {
		return e.shards[0]
	}
	return e.shards[digest[0]%shardCount]
}

// Batches splits [0, n) into S = ceil(n / batchSize) contiguous, half-open
// ranges. The digest stage processes one batch at a time so a run's peak
// in-flight work is bounded by batchSize regardless of corpus size,
// matching batch_size's role as the unit the pipeline chunks work into.
func Batches(n, batchSize int) [][2]int {
	if batchSize < 1 {
		batchSize = 1
	}
	var batches [][2]int
	for start := 0; start < n; start += batchSize {
		end := start + batchSize
		if end > n {
			end = n
		}
		batches = append(batches, [2]int{start, end})
	}
	return batches
}

// Digest computes the content digest for one record. It touches no shared
// state and is safe to call from any worker goroutine.
func (e *ExactEngine) Digest(content string) (string, error) {
	return ContentDigest(e.hashFunc, content)
}

// Result reports, per record index, whether it is a duplicate and if so
// which earlier index it duplicates.
type Result struct {
	IsDuplicate bool
	DuplicateOf int
}

// Resolve claims each digest in ascending id order against its shard,
// producing one Result per record. digests[i] must be the digest already
// computed for record i (by Digest, typically run in parallel beforehand).
// Passing digests out of id order would break the lowest-id-wins
// guarantee, so this function always walks 0..len(digests)-1 in order.
func (e *ExactEngine) Resolve(digests []string) []Result {
	results := make([]Result, len(digests))
	for i, d := range digests {
		sh := e.shardFor(d)
		sh.mu.Lock()
		if firstID, ok := sh.seen[d]; ok {
			results[i] = Result{IsDuplicate: true, DuplicateOf: firstID}
		} else {
			sh.seen[d] = i
			results[i] = Result{IsDuplicate: false}
		}
		sh.mu.Unlock()
	}
	return results
}
