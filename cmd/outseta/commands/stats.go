package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ResourceStat is the record count of one resource.
type ResourceStat struct {
	Resource string        `json:"resource"        yaml:"resource"`
	Total    int           `json:"total"           yaml:"total"`
	Latency  time.Duration `json:"latency_ns"      yaml:"latency_ns"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// countFunc reports the total number of records behind a list endpoint.
type countFunc func(ctx context.Context) (int, error)

type statSource struct {
	name  string
	path  string
	count countFunc
}

// countOf requests a single-item page and reads the total from its metadata.
func countOf[T any](list listFunc[T]) countFunc {
	return func(ctx context.Context) (int, error) {
		page, err := outseta.NewPageRequest().PageSize(1).Build()
		if err != nil {
			return 0, err
		}

		result, err := list(ctx, page)
		if err != nil {
			return 0, err
		}

		return result.Metadata.Total, nil
	}
}

func statSources(client outseta.Client) []statSource {
	return []statSource{
		{name: "accounts", path: "/crm/accounts", count: countOf(client.Accounts().List)},
		{name: "people", path: "/crm/people", count: countOf(client.People().List)},
		{name: "deals", path: "/crm/deals", count: countOf(client.Deals().List)},
		{name: "activities", path: "/activities", count: countOf(client.Activities().List)},
		{name: "plans", path: "/billing/plans", count: countOf(client.Plans().List)},
		{name: "plan-families", path: "/billing/planfamilies", count: countOf(client.PlanFamilies().List)},
		{name: "subscriptions", path: "/billing/subscriptions", count: countOf(client.Subscriptions().List)},
		{name: "addons", path: "/billing/addons", count: countOf(client.AddOns().List)},
		{name: "email-lists", path: "/email/lists", count: countOf(client.Marketing().Lists)},
		{name: "support-cases", path: "/support/cases", count: countOf(client.Support().List)},
	}
}

// collectStats runs every source with at most limit requests in flight.
// A failing source is reported in its row and does not stop the others.
func collectStats(ctx context.Context, sources []statSource, limit int, latency func(path string) time.Duration) ([]ResourceStat, error) {
	stats := make([]ResourceStat, len(sources))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	var mu sync.Mutex

	for i, source := range sources {
		group.Go(func() error {
			total, err := source.count(ctx)

			stat := ResourceStat{Resource: source.name, Total: total}
			if err != nil {
				stat.Error = err.Error()
				currentLogger().Warn("failed to count resource", map[string]interface{}{
					"resource": source.name,
					"error":    err.Error(),
				})
			}

			if latency != nil {
				stat.Latency = latency(source.path)
			}

			mu.Lock()
			stats[i] = stat
			mu.Unlock()

			return ctx.Err()
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("collecting stats: %w", err)
	}

	return stats, nil
}

// endpointLatency tracks the latest latency seen per request path.
type endpointLatency struct {
	mu     sync.Mutex
	byPath map[string]time.Duration
}

func newEndpointLatency(collector *outseta.MetricsCollector) *endpointLatency {
	tracker := &endpointLatency{byPath: make(map[string]time.Duration)}

	collector.SetOnChange(func(endpoint string, metrics outseta.Metrics) {
		path := endpoint
		if index := strings.IndexByte(path, '?'); index >= 0 {
			path = path[:index]
		}

		tracker.mu.Lock()
		tracker.byPath[path] = metrics.AverageLatency
		tracker.mu.Unlock()
	})

	return tracker
}

func (e *endpointLatency) lookup(path string) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	for endpoint, latency := range e.byPath {
		if strings.HasSuffix(endpoint, path) {
			return latency
		}
	}

	return 0
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show record counts",
		Long:  "Count the records of every resource concurrently and report request latency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if concurrency < 1 {
				concurrency = constants.DefaultConcurrencyLimit
			}

			collector := outseta.NewMetricsCollector()
			tracker := newEndpointLatency(collector)

			chain := outseta.NewInterceptorChain()
			chain.AddRequestInterceptor(outseta.MetricsRequestInterceptor())
			chain.AddResponseInterceptor(outseta.MetricsResponseInterceptor(collector))

			client, err := createClientWithInterceptors(chain)
			if err != nil {
				return err
			}

			stats, err := collectStats(cmd.Context(), statSources(client), concurrency, tracker.lookup)
			if err != nil {
				return err
			}

			return renderStats(cmd.OutOrStdout(), stats)
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrencyLimit, "maximum concurrent requests")

	return cmd
}

func renderStats(out io.Writer, stats []ResourceStat) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return StandardJSONRenderer(out, stats)
	case constants.FormatYAML:
		return StandardYAMLRenderer(out, stats)
	}

	table := tablewriter.NewWriter(out)
	table.Header("Resource", "Total", "Latency")

	for _, stat := range stats {
		total := strconv.Itoa(stat.Total)
		if stat.Error != "" {
			total = "error: " + stat.Error
		}

		latency := constants.NotAvailable
		if stat.Latency > 0 {
			latency = stat.Latency.Round(time.Millisecond).String()
		}

		_ = table.Append(stat.Resource, total, latency)
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
