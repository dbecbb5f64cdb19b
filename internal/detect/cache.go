package detect

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 4096

type cachedResult struct {
	lang       Language
	confidence float64
}

// CachedDetector memoizes another Detector behind an LRU keyed by a hash of
// the run text. Repeated runs (headers, boilerplate, repeated fields) are
// common in indexing workloads, and detection dominates classifier cost.
type CachedDetector struct {
	inner Detector
	cache *lru.Cache[uint64, cachedResult]
}

// NewCachedDetector wraps inner with an LRU of the given size. A size of
// zero or less uses a default.
func NewCachedDetector(inner Detector, size int) *CachedDetector {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[uint64, cachedResult](size)
	if err != nil {
		// lru.New only fails on a non-positive size, which is guarded above.
		panic(err)
	}
	return &CachedDetector{inner: inner, cache: cache}
}

// Detect implements Detector.
func (d *CachedDetector) Detect(text string) (Language, float64) {
	key := xxhash.Sum64String(text)
	if hit, ok := d.cache.Get(key); ok {
		return hit.lang, hit.confidence
	}

	lang, confidence := d.inner.Detect(text)
	d.cache.Add(key, cachedResult{lang: lang, confidence: confidence})
	return lang, confidence
}
