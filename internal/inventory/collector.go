package inventory

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"ec2inv/internal/provider"
	"ec2inv/pkg/logging"
)

// Collector gathers and normalizes every instance of a single region.
type Collector struct {
	factory    provider.ClientFactory
	available  []string
	attributes []string
	tag        string
	widths     *WidthTable
}

// NewCollector creates a collector. The width table is shared with the caller:
// every normalized instance grows it, across all regions of the run.
func NewCollector(factory provider.ClientFactory, available, attributes []string, tag string, widths *WidthTable) *Collector {
	return &Collector{
		factory:    factory,
		available:  available,
		attributes: attributes,
		tag:        tag,
		widths:     widths,
	}
}

// Collect drives the region's pagination loop and returns its records sorted
// ascending by the sort-tag value. Any failure (unknown region, client
// construction, page fetch) fails the whole region: there is no partial
// result below region granularity. An empty slice with a nil error is the
// valid "region has zero instances" outcome, distinct from failure.
func (c *Collector) Collect(ctx context.Context, region string) ([]Record, error) {
	if !slices.Contains(c.available, region) {
		return nil, fmt.Errorf("region %q is not one of the available regions", region)
	}

	client, err := c.factory.NewClient(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("there was a problem creating a client for region %q: %w", region, err)
	}

	records := []Record{}
	nextToken := ""
	for page := 1; ; page++ {
		resp, err := client.DescribePage(ctx, nextToken)
		if err != nil {
			// Discard everything collected so far: a page failure fails the region.
			return nil, fmt.Errorf("there was a problem getting the instances in region %q: %w", region, err)
		}

		count := 0
		for _, reservation := range resp.Reservations {
			for _, instance := range reservation.Instances {
				if record := Normalize(instance, c.attributes, c.tag, c.widths); record != nil {
					records = append(records, record)
					count++
				}
			}
		}
		logging.Debug("Collector", "region %s: page %d returned %d instances", region, page, count)

		nextToken = resp.NextToken
		if nextToken == "" {
			break
		}
	}

	// Stable sort: instances with equal tag values keep their page order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i][c.tag] < records[j][c.tag]
	})
	return records, nil
}
