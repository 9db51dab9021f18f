package apiclient

import (
	"context"
	"slices"
	"time"

	"nexus.regintel.org/internal/catalog"
	"nexus.regintel.org/internal/models"
)

// DefaultMockDelay imitates network latency.
const DefaultMockDelay = 300 * time.Millisecond

// MockClient answers from the built-in sample data after a fixed delay.
type MockClient struct {
	delay time.Duration
}

var _ Client = (*MockClient)(nil)

// NewMockClient returns a mock that waits delay before every answer. A
// negative delay uses DefaultMockDelay.
func NewMockClient(delay time.Duration) *MockClient {
	if delay < 0 {
		delay = DefaultMockDelay
	}
	return &MockClient{delay: delay}
}

// wait sleeps for the configured delay or until ctx is done.
func (m *MockClient) wait(ctx context.Context) error {
	if m.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func mockList[T any](ctx context.Context, m *MockClient, items func() []T) (Response[[]T], error) {
	if err := m.wait(ctx); err != nil {
		return failed[[]T](err.Error()), err
	}
	return ok(items()), nil
}

func mockFind[T any](ctx context.Context, m *MockClient, kind string, items []T, match func(T) bool) (Response[T], error) {
	if err := m.wait(ctx); err != nil {
		return failed[T](err.Error()), err
	}
	i := slices.IndexFunc(items, match)
	if i < 0 {
		return failed[T](kind + " not found"), nil
	}
	return ok(items[i]), nil
}

func (m *MockClient) GetFeeds(ctx context.Context) (Response[[]models.RegulatoryFeed], error) {
	return mockList(ctx, m, catalog.SampleFeeds)
}

func (m *MockClient) GetFeed(ctx context.Context, id string) (Response[models.RegulatoryFeed], error) {
	return mockFind(ctx, m, "Feed", catalog.SampleFeeds(), func(f models.RegulatoryFeed) bool { return f.ID == id })
}

func (m *MockClient) SearchFeeds(ctx context.Context, filter catalog.FeedFilter) (Response[[]models.RegulatoryFeed], error) {
	return mockList(ctx, m, func() []models.RegulatoryFeed {
		return catalog.FilterFeeds(catalog.SampleFeeds(), filter)
	})
}

func (m *MockClient) GetVendors(ctx context.Context) (Response[[]models.Vendor], error) {
	return mockList(ctx, m, catalog.SampleVendors)
}

func (m *MockClient) GetVendor(ctx context.Context, id string) (Response[models.Vendor], error) {
	return mockFind(ctx, m, "Vendor", catalog.SampleVendors(), func(v models.Vendor) bool { return v.ID == id })
}

func (m *MockClient) SearchVendors(ctx context.Context, filter catalog.MarketplaceFilter) (Response[[]models.Vendor], error) {
	return mockList(ctx, m, func() []models.Vendor {
		return catalog.FilterVendors(catalog.SampleVendors(), filter)
	})
}

func (m *MockClient) GetConsultants(ctx context.Context) (Response[[]models.Consultant], error) {
	return mockList(ctx, m, catalog.SampleConsultants)
}

func (m *MockClient) GetConsultant(ctx context.Context, id string) (Response[models.Consultant], error) {
	return mockFind(ctx, m, "Consultant", catalog.SampleConsultants(), func(c models.Consultant) bool { return c.ID == id })
}

func (m *MockClient) SearchConsultants(ctx context.Context, filter catalog.MarketplaceFilter) (Response[[]models.Consultant], error) {
	return mockList(ctx, m, func() []models.Consultant {
		return catalog.FilterConsultants(catalog.SampleConsultants(), filter)
	})
}

func (m *MockClient) GetCROs(ctx context.Context) (Response[[]models.CRO], error) {
	return mockList(ctx, m, catalog.SampleCROs)
}

func (m *MockClient) GetCRO(ctx context.Context, id string) (Response[models.CRO], error) {
	return mockFind(ctx, m, "CRO", catalog.SampleCROs(), func(c models.CRO) bool { return c.ID == id })
}

func (m *MockClient) SearchCROs(ctx context.Context, filter catalog.MarketplaceFilter) (Response[[]models.CRO], error) {
	return mockList(ctx, m, func() []models.CRO {
		return catalog.FilterCROs(catalog.SampleCROs(), filter)
	})
}

func (m *MockClient) GlobalSearch(ctx context.Context, query string) (Response[models.GlobalSearchResult], error) {
	if err := m.wait(ctx); err != nil {
		return failed[models.GlobalSearchResult](err.Error()), err
	}
	return ok(catalog.SearchAll(catalog.SampleFeeds(), catalog.SampleVendors(), catalog.SampleConsultants(), catalog.SampleCROs(), query)), nil
}
