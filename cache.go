package hufftext

import (
	"fmt"
	"sync"

	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/errs"
)

// CodecCache caches trained codecs keyed by the xxHash64 of their training
// corpus, so drivers that repeatedly see the same corpus train once and
// reuse the codec.
//
// The zero value is not usable; create caches with NewCodecCache. All
// methods are safe for concurrent use.
type CodecCache struct {
	mu      sync.RWMutex
	codecs  map[uint64]*codec.Codec // ID → trained codec
	corpora map[uint64]string       // ID → corpus, for collision detection
}

// NewCodecCache creates an empty codec cache.
func NewCodecCache() *CodecCache {
	return &CodecCache{
		codecs:  make(map[uint64]*codec.Codec),
		corpora: make(map[uint64]string),
	}
}

// Get returns the codec trained on sample, training and caching it on first
// use.
//
// Returns errs.ErrCorpusCollision if a different corpus already occupies
// the sample's hash slot. A cache keyed by hash cannot hold both corpora;
// with 64-bit IDs this is effectively unreachable in practice.
func (cc *CodecCache) Get(sample string) (*codec.Codec, error) {
	return cc.GetByID(CodecID(sample), sample)
}

// GetByID behaves like Get for callers that precompute IDs with CodecID.
// The id must be the hash of sample.
func (cc *CodecCache) GetByID(id uint64, sample string) (*codec.Codec, error) {
	cc.mu.RLock()
	cached, ok := cc.codecs[id]
	corpus := cc.corpora[id]
	cc.mu.RUnlock()

	if ok {
		if corpus != sample {
			return nil, fmt.Errorf("%w: id %016x", errs.ErrCorpusCollision, id)
		}

		return cached, nil
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()

	// Another goroutine may have trained while the write lock was pending.
	if cached, ok := cc.codecs[id]; ok {
		if cc.corpora[id] != sample {
			return nil, fmt.Errorf("%w: id %016x", errs.ErrCorpusCollision, id)
		}

		return cached, nil
	}

	c := codec.New(sample)
	cc.codecs[id] = c
	cc.corpora[id] = sample

	return c, nil
}

// Len returns the number of cached codecs.
func (cc *CodecCache) Len() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	return len(cc.codecs)
}

// Reset clears all cached codecs. Map capacity is preserved so a reused
// cache does not reallocate.
func (cc *CodecCache) Reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	for k := range cc.codecs {
		delete(cc.codecs, k)
	}
	for k := range cc.corpora {
		delete(cc.corpora, k)
	}
}
