package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"nexus.regintel.org/internal/apiclient"
	"nexus.regintel.org/internal/appconf"
	"nexus.regintel.org/internal/catalog"
)

type globalFlags struct {
	config    string
	mock      bool
	mockDelay time.Duration
	url       string
	token     string
	timeout   time.Duration
}

func (g *globalFlags) client() apiclient.Client {
	if g.mock {
		return apiclient.NewMockClient(g.mockDelay)
	}
	return apiclient.NewHTTPClient(g.url, g.token, apiclient.WithTimeout(g.timeout))
}

// applyConfig fills the flags left unset from the server config file: the
// local port, the first API key and the mock delay.
func (g *globalFlags) applyConfig(flags *pflag.FlagSet) error {
	if g.config == "" {
		return nil
	}
	cfg, err := appconf.LoadFile(g.config, appconf.Default())
	if err != nil {
		return err
	}
	if !flags.Changed("url") {
		g.url = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	if !flags.Changed("token") && len(cfg.ApiKeys) > 0 {
		g.token = cfg.ApiKeys[0]
	}
	if !flags.Changed("mock-delay") {
		g.mockDelay = cfg.MockDelay
	}
	return nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "nexusctl",
		Short: "Query Nexus regulatory feeds and marketplace listings",
		Long: `nexusctl reads regulatory feeds, vendors, consultants and CROs from a
Nexus API server and prints them as JSON.

With --mock the built-in sample data is used and no server is needed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.applyConfig(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.config, "config", "", "Server YAML config to take defaults from")
	pf.BoolVar(&g.mock, "mock", false, "Serve from the built-in sample data")
	pf.DurationVar(&g.mockDelay, "mock-delay", apiclient.DefaultMockDelay, "Simulated latency in --mock mode")
	pf.StringVar(&g.url, "url", "http://localhost:4000", "Base URL of the API server")
	pf.StringVar(&g.token, "token", "test", "API key sent as a bearer token")
	pf.DurationVar(&g.timeout, "timeout", apiclient.DefaultTimeout, "Per request timeout")

	root.AddCommand(
		newFeedsCmd(g),
		newFeedCmd(g),
		newMarketplaceCmd(g, "vendors", "List or filter vendors", func(ctx context.Context, c apiclient.Client, f catalog.MarketplaceFilter) (any, error) {
			return unwrap(c.SearchVendors(ctx, f))
		}),
		newMarketplaceCmd(g, "consultants", "List or filter consultants", func(ctx context.Context, c apiclient.Client, f catalog.MarketplaceFilter) (any, error) {
			return unwrap(c.SearchConsultants(ctx, f))
		}),
		newMarketplaceCmd(g, "cros", "List or filter contract research organizations", func(ctx context.Context, c apiclient.Client, f catalog.MarketplaceFilter) (any, error) {
			return unwrap(c.SearchCROs(ctx, f))
		}),
		newSearchCmd(g),
		newOverviewCmd(g),
	)
	return root
}

func newFeedsCmd(g *globalFlags) *cobra.Command {
	var f catalog.FeedFilter
	cmd := &cobra.Command{
		Use:   "feeds",
		Short: "List or filter regulatory feeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printResult(cmd, g, func(ctx context.Context, c apiclient.Client) (any, error) {
				if f == (catalog.FeedFilter{}) {
					return unwrap(c.GetFeeds(ctx))
				}
				return unwrap(c.SearchFeeds(ctx, f))
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.Query, "query", "q", "", "Match title, summary, content or tags")
	fl.StringVar(&f.Category, "category", "", "Exact category")
	fl.StringVar(&f.Region, "region", "", "Exact region")
	fl.StringVar(&f.Urgency, "urgency", "", "High, Medium or Low")
	fl.StringVar(&f.Agency, "agency", "", "Exact agency")
	fl.StringVar(&f.DateFrom, "from", "", "Earliest date, YYYY-MM-DD")
	fl.StringVar(&f.DateTo, "to", "", "Latest date, YYYY-MM-DD")
	return cmd
}

func newFeedCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "feed <id>",
		Short: "Show one regulatory feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, g, func(ctx context.Context, c apiclient.Client) (any, error) {
				return unwrap(c.GetFeed(ctx, args[0]))
			})
		},
	}
}

type marketplaceFetch func(ctx context.Context, c apiclient.Client, f catalog.MarketplaceFilter) (any, error)

func newMarketplaceCmd(g *globalFlags, use, short string, fetch marketplaceFetch) *cobra.Command {
	var f catalog.MarketplaceFilter
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(f.MinScore >= 0 && f.MinScore <= 100) {
				return fmt.Errorf("--min-score must be between 0 and 100")
			}
			return printResult(cmd, g, func(ctx context.Context, c apiclient.Client) (any, error) {
				return fetch(ctx, c, f)
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.Query, "query", "q", "", "Match name or specialties")
	fl.StringVar(&f.Category, "category", "", "Exact category")
	fl.Float64Var(&f.MinScore, "min-score", 0, "Minimum fit score (0-100)")
	return cmd
}

func newSearchCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search feeds and all marketplace listings at once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, g, func(ctx context.Context, c apiclient.Client) (any, error) {
				return unwrap(c.GlobalSearch(ctx, args[0]))
			})
		},
	}
}

func newOverviewCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Fetch every catalog list concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printResult(cmd, g, func(ctx context.Context, c apiclient.Client) (any, error) {
				return apiclient.Overview(ctx, c)
			})
		},
	}
}

func unwrap[T any](resp apiclient.Response[T], err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.New(resp.Error)
	}
	return resp.Data, nil
}

func printResult(cmd *cobra.Command, g *globalFlags, fetch func(context.Context, apiclient.Client) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	data, err := fetch(ctx, g.client())
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), data)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
