package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Gateway provides read-modify-write access to the single knowledge
// document. All higher-level operations express their mutations as one
// Update call, which keeps multi-entity transitions atomic from the
// perspective of a single caller.
//
// The mutex serializes callers within this process. Across processes the
// blob contract offers no isolation: two writers racing on
// read-transform-write lose the earlier update, last writer wins.
type Gateway struct {
	blob Blob
	log  *zap.Logger

	mu    sync.Mutex
	cache *Document
	subs  []func()
}

// NewGateway wraps a blob. A nil logger falls back to a no-op logger.
func NewGateway(blob Blob, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{blob: blob, log: log}
}

// Read returns the current document, serving a cached copy when one is
// present. Callers must treat the result as read-only; mutation goes
// through Update.
func (g *Gateway) Read(ctx context.Context) (*Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cache != nil {
		return g.cache, nil
	}
	doc, err := g.load(ctx)
	if err != nil {
		return nil, err
	}
	g.cache = doc
	return doc, nil
}

// Update reads the latest document, applies fn, and persists the result.
// If fn returns an error nothing is written. On success the cache is
// refreshed and subscribers are notified.
func (g *Gateway) Update(ctx context.Context, fn func(*Document) error) error {
	g.mu.Lock()
	doc, err := g.load(ctx)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	if err := fn(doc); err != nil {
		g.mu.Unlock()
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		g.mu.Unlock()
		return fmt.Errorf("serialize document: %w", err)
	}
	if err := g.blob.Set(ctx, data); err != nil {
		g.mu.Unlock()
		return err
	}
	g.cache = doc
	subs := append([]func(){}, g.subs...)
	g.mu.Unlock()

	for _, notify := range subs {
		notify()
	}
	return nil
}

// Subscribe registers a callback invoked after every successful Update.
// Dependent views use this to invalidate whatever they derived from a
// previous Read.
func (g *Gateway) Subscribe(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs = append(g.subs, fn)
}

// Invalidate drops the cached document so the next Read hits the blob.
func (g *Gateway) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cache = nil
}

// load deserializes the blob, substituting an empty default document when
// the blob is missing or malformed. Corruption is recovered locally and
// logged, never surfaced: the application stays usable.
func (g *Gateway) load(ctx context.Context) (*Document, error) {
	data, ok, err := g.blob.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || len(data) == 0 {
		return NewDocument(), nil
	}
	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		g.log.Warn("malformed knowledge document, starting from empty state",
			zap.Error(err),
			zap.Int("bytes", len(data)))
		return NewDocument(), nil
	}
	return doc, nil
}
