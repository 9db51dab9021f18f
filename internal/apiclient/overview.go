package apiclient

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"nexus.regintel.org/internal/models"
)

// OverviewData is the four catalog lists, fetched together.
type OverviewData struct {
	Feeds       []models.RegulatoryFeed `json:"feeds"`
	Vendors     []models.Vendor         `json:"vendors"`
	Consultants []models.Consultant     `json:"consultants"`
	CROs        []models.CRO            `json:"cros"`
}

// Overview fetches the four lists concurrently. The first failure cancels the
// others and is returned.
func Overview(ctx context.Context, c Client) (OverviewData, error) {
	var out OverviewData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp, err := c.GetFeeds(ctx)
		out.Feeds, err = unwrap("feeds", resp, err)
		return err
	})
	g.Go(func() error {
		resp, err := c.GetVendors(ctx)
		out.Vendors, err = unwrap("vendors", resp, err)
		return err
	})
	g.Go(func() error {
		resp, err := c.GetConsultants(ctx)
		out.Consultants, err = unwrap("consultants", resp, err)
		return err
	})
	g.Go(func() error {
		resp, err := c.GetCROs(ctx)
		out.CROs, err = unwrap("cros", resp, err)
		return err
	})

	if err := g.Wait(); err != nil {
		return OverviewData{}, err
	}
	return out, nil
}

// unwrap turns an unsuccessful envelope into an error.
func unwrap[T any](what string, resp Response[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, fmt.Errorf("error fetching %s: %w", what, err)
	}
	if !resp.Success {
		var zero T
		return zero, fmt.Errorf("error fetching %s: %s", what, resp.Error)
	}
	return resp.Data, nil
}
