// Package apiclient is the Go client for the Nexus REST API. MockClient serves
// the built-in sample data in-process; HTTPClient talks to a running server.
package apiclient

import (
	"context"

	"nexus.regintel.org/internal/catalog"
	"nexus.regintel.org/internal/models"
)

// Response mirrors the server envelope.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// Client is implemented by MockClient and HTTPClient. A lookup that finds
// nothing is reported in the Response, not as an error.
type Client interface {
	GetFeeds(ctx context.Context) (Response[[]models.RegulatoryFeed], error)
	GetFeed(ctx context.Context, id string) (Response[models.RegulatoryFeed], error)
	SearchFeeds(ctx context.Context, filter catalog.FeedFilter) (Response[[]models.RegulatoryFeed], error)

	GetVendors(ctx context.Context) (Response[[]models.Vendor], error)
	GetVendor(ctx context.Context, id string) (Response[models.Vendor], error)
	SearchVendors(ctx context.Context, filter catalog.MarketplaceFilter) (Response[[]models.Vendor], error)

	GetConsultants(ctx context.Context) (Response[[]models.Consultant], error)
	GetConsultant(ctx context.Context, id string) (Response[models.Consultant], error)
	SearchConsultants(ctx context.Context, filter catalog.MarketplaceFilter) (Response[[]models.Consultant], error)

	GetCROs(ctx context.Context) (Response[[]models.CRO], error)
	GetCRO(ctx context.Context, id string) (Response[models.CRO], error)
	SearchCROs(ctx context.Context, filter catalog.MarketplaceFilter) (Response[[]models.CRO], error)

	GlobalSearch(ctx context.Context, query string) (Response[models.GlobalSearchResult], error)
}

func ok[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

func failed[T any](text string) Response[T] {
	return Response[T]{Success: false, Error: text}
}
