// Package cache memoizes derived dashboards keyed on catalog version and selection.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/clinicops/notes-dashboard/internal/analytics"
	"github.com/clinicops/notes-dashboard/internal/catalog"
	"github.com/clinicops/notes-dashboard/internal/domain"
	"github.com/clinicops/notes-dashboard/internal/observability"
)

const keyPrefix = "notes-dashboard:dashboard:"

// Memo returns derived dashboards from an in-process LRU, then from Redis when
// configured, and derives on a miss. Returned dashboards are shared and must
// not be modified.
type Memo struct {
	local   *lru.Cache[string, analytics.Dashboard]
	shared  *redis.Client
	ttl     time.Duration
	logger  *zap.Logger
	metrics *observability.Metrics
}

// Options configures a Memo. Shared may be nil.
type Options struct {
	Size    int
	TTL     time.Duration
	Shared  *redis.Client
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// NewMemo builds the memo cache.
func NewMemo(opts Options) (*Memo, error) {
	size := opts.Size
	if size <= 0 {
		size = 128
	}
	local, err := lru.New[string, analytics.Dashboard](size)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Memo{
		local:   local,
		shared:  opts.Shared,
		ttl:     opts.TTL,
		logger:  logger,
		metrics: opts.Metrics,
	}, nil
}

// Key identifies sel over the catalog with the given version. Id order does not matter.
func Key(catalogVersion string, sel domain.Selection) string {
	h := xxhash.New()
	_, _ = h.WriteString(strings.Join(sel.Departments.Sorted(), "\x1f"))
	_, _ = h.WriteString("\x1e")
	_, _ = h.WriteString(strings.Join(sel.Doctors.Sorted(), "\x1f"))
	return keyPrefix + catalogVersion + ":" + strconv.FormatUint(h.Sum64(), 16)
}

// Derive returns the dashboard for sel over c.
func (m *Memo) Derive(ctx context.Context, c *catalog.Catalog, sel domain.Selection) analytics.Dashboard {
	key := Key(c.Version(), sel)

	if d, ok := m.local.Get(key); ok {
		m.metrics.RecordCacheLookup("lru", "hit")
		return d
	}
	m.metrics.RecordCacheLookup("lru", "miss")

	if d, ok := m.getShared(ctx, key); ok {
		m.local.Add(key, d)
		return d
	}

	d := analytics.Derive(c, sel)
	m.local.Add(key, d)
	m.setShared(ctx, key, d)
	return d
}

// Purge drops every locally cached dashboard.
func (m *Memo) Purge() {
	m.local.Purge()
}

// Len returns the number of locally cached dashboards.
func (m *Memo) Len() int {
	return m.local.Len()
}

func (m *Memo) getShared(ctx context.Context, key string) (analytics.Dashboard, bool) {
	var d analytics.Dashboard
	if m.shared == nil {
		return d, false
	}

	raw, err := m.shared.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		m.metrics.RecordCacheLookup("redis", "miss")
		return d, false
	}
	if err != nil {
		m.metrics.RecordCacheLookup("redis", "error")
		m.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		return d, false
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		m.metrics.RecordCacheLookup("redis", "error")
		m.logger.Warn("dashboard cache entry unreadable", zap.String("key", key), zap.Error(err))
		return d, false
	}
	m.metrics.RecordCacheLookup("redis", "hit")
	return d, true
}

func (m *Memo) setShared(ctx context.Context, key string, d analytics.Dashboard) {
	if m.shared == nil {
		return
	}
	raw, err := json.Marshal(d)
	if err != nil {
		m.logger.Warn("dashboard cache encode failed", zap.Error(err))
		return
	}
	if err := m.shared.Set(ctx, key, raw, m.ttl).Err(); err != nil {
		m.logger.Debug("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
