package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"nexus.regintel.org/internal/kvstore"
	"nexus.regintel.org/internal/logging"
	"nexus.regintel.org/internal/metrics"
	"nexus.regintel.org/internal/models"
)

// ErrNotFound is returned when an entity id is not in the catalog.
var ErrNotFound = errors.New("catalog: not found")

// Store is the subset of the key-value store the catalog needs.
type Store interface {
	Get(ctx context.Context, key string, out any) error
	MSet(ctx context.Context, entries map[string]any) error
}

type Config struct {
	// CacheTTL bounds how long a decoded list is reused. Zero disables caching.
	CacheTTL time.Duration
}

// Catalog serves the seeded feeds and marketplace listings. Slices it returns are
// shared with its cache and must not be modified.
type Catalog struct {
	store   Store
	cache   *cache.Cache
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// InitCatalog builds a Catalog over store and seeds it. A failed seed is logged and
// reads fall back to the built-in sample data.
func InitCatalog(ctx context.Context, config Config, store Store, logger *slog.Logger, m *metrics.Metrics) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{
		store:   store,
		ttl:     config.CacheTTL,
		logger:  logger.With(slog.String("component", "catalog")),
		metrics: m,
	}
	if c.ttl > 0 {
		c.cache = cache.New(c.ttl, 2*c.ttl)
	}

	start := time.Now()
	if err := c.Seed(ctx); err != nil {
		logging.LogError(c.logger, "failed to seed catalog", err)
	} else {
		logging.LogOperation(c.logger, "catalog_seeded",
			slog.Int("keys", 4),
			slog.Duration("duration", time.Since(start)))
	}

	return c
}

// Seed writes the sample data into the store and drops any cached lists.
func (c *Catalog) Seed(ctx context.Context) error {
	err := c.store.MSet(ctx, map[string]any{
		FeedsKey:       SampleFeeds(),
		VendorsKey:     SampleVendors(),
		ConsultantsKey: SampleConsultants(),
		CROsKey:        SampleCROs(),
	})
	if c.cache != nil {
		c.cache.Flush()
	}
	return err
}

// load reads key through the cache. A store failure falls back to sample and is
// not cached, so the next read tries the store again.
func load[T any](ctx context.Context, c *Catalog, key string, sample func() []T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if c.cache != nil {
		if v, ok := c.cache.Get(key); ok {
			return v.([]T), nil
		}
	}

	var items []T
	err := c.store.Get(ctx, key, &items)
	if err != nil || items == nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err == nil || errors.Is(err, kvstore.ErrNotFound) {
			c.logger.Warn("catalog key missing, serving sample data", slog.String("key", key))
		} else {
			logging.LogError(c.logger, "failed to read catalog key, serving sample data", err, slog.String("key", key))
		}
		c.metrics.StoreFallback(key)
		return sample(), nil
	}

	if c.cache != nil {
		c.cache.SetDefault(key, items)
	}
	return items, nil
}

func (c *Catalog) Feeds(ctx context.Context) ([]models.RegulatoryFeed, error) {
	return load(ctx, c, FeedsKey, SampleFeeds)
}

func (c *Catalog) Vendors(ctx context.Context) ([]models.Vendor, error) {
	return load(ctx, c, VendorsKey, SampleVendors)
}

func (c *Catalog) Consultants(ctx context.Context) ([]models.Consultant, error) {
	return load(ctx, c, ConsultantsKey, SampleConsultants)
}

func (c *Catalog) CROs(ctx context.Context) ([]models.CRO, error) {
	return load(ctx, c, CROsKey, SampleCROs)
}

func (c *Catalog) Feed(ctx context.Context, id string) (models.RegulatoryFeed, error) {
	feeds, err := c.Feeds(ctx)
	if err != nil {
		return models.RegulatoryFeed{}, err
	}
	for _, f := range feeds {
		if f.ID == id {
			return f, nil
		}
	}
	return models.RegulatoryFeed{}, ErrNotFound
}

func (c *Catalog) Vendor(ctx context.Context, id string) (models.Vendor, error) {
	vendors, err := c.Vendors(ctx)
	if err != nil {
		return models.Vendor{}, err
	}
	for _, v := range vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

func (c *Catalog) Consultant(ctx context.Context, id string) (models.Consultant, error) {
	consultants, err := c.Consultants(ctx)
	if err != nil {
		return models.Consultant{}, err
	}
	for _, v := range consultants {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Consultant{}, ErrNotFound
}

func (c *Catalog) CRO(ctx context.Context, id string) (models.CRO, error) {
	cros, err := c.CROs(ctx)
	if err != nil {
		return models.CRO{}, err
	}
	for _, v := range cros {
		if v.ID == id {
			return v, nil
		}
	}
	return models.CRO{}, ErrNotFound
}

func (c *Catalog) SearchFeeds(ctx context.Context, filter FeedFilter) ([]models.RegulatoryFeed, error) {
	feeds, err := c.Feeds(ctx)
	if err != nil {
		return nil, err
	}
	return FilterFeeds(feeds, filter), nil
}

func (c *Catalog) SearchVendors(ctx context.Context, filter MarketplaceFilter) ([]models.Vendor, error) {
	vendors, err := c.Vendors(ctx)
	if err != nil {
		return nil, err
	}
	return FilterVendors(vendors, filter), nil
}

func (c *Catalog) SearchConsultants(ctx context.Context, filter MarketplaceFilter) ([]models.Consultant, error) {
	consultants, err := c.Consultants(ctx)
	if err != nil {
		return nil, err
	}
	return FilterConsultants(consultants, filter), nil
}

func (c *Catalog) SearchCROs(ctx context.Context, filter MarketplaceFilter) ([]models.CRO, error) {
	cros, err := c.CROs(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCROs(cros, filter), nil
}

// GlobalSearch returns up to GlobalSearchLimit matches of each kind.
func (c *Catalog) GlobalSearch(ctx context.Context, query string) (models.GlobalSearchResult, error) {
	feeds, err := c.Feeds(ctx)
	if err != nil {
		return models.GlobalSearchResult{}, err
	}
	vendors, err := c.Vendors(ctx)
	if err != nil {
		return models.GlobalSearchResult{}, err
	}
	consultants, err := c.Consultants(ctx)
	if err != nil {
		return models.GlobalSearchResult{}, err
	}
	cros, err := c.CROs(ctx)
	if err != nil {
		return models.GlobalSearchResult{}, err
	}
	return SearchAll(feeds, vendors, consultants, cros, query), nil
}

// Stats summarizes the feeds relative to now.
func (c *Catalog) Stats(ctx context.Context, now time.Time) (FeedStats, error) {
	feeds, err := c.Feeds(ctx)
	if err != nil {
		return FeedStats{}, err
	}
	return ComputeFeedStats(feeds, now), nil
}
