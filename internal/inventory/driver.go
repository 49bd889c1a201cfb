package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ec2inv/internal/provider"
)

// regionBannerWidth is the length of the star rule printed above each region.
const regionBannerWidth = 80

// DriverOptions configures an inventory run.
type DriverOptions struct {
	// Factory constructs per-region describe clients.
	Factory provider.ClientFactory
	// Available is the region set the provider advertises.
	Available []string
	// Attributes are the attribute columns, in display order.
	Attributes []string
	// Tag is the sort tag, rendered as the first column.
	Tag string
	// Out receives the report (stdout in the CLI). Warnings about failed
	// regions go here too, not to a separate error stream.
	Out io.Writer
}

// Driver walks the configured regions in order and prints one table section
// per region. Per-region failures are isolated: a failed region prints a
// warning and the run continues with the next one.
type Driver struct {
	opts      DriverOptions
	columns   []string
	widths    *WidthTable
	collector *Collector
}

// NewDriver wires the collector and the run-wide width table. The width table
// is created once here and shared by every region's normalization and render.
func NewDriver(opts DriverOptions) *Driver {
	columns := make([]string, 0, len(opts.Attributes)+1)
	columns = append(columns, opts.Tag)
	columns = append(columns, opts.Attributes...)

	widths := NewWidthTable(columns)
	return &Driver{
		opts:      opts,
		columns:   columns,
		widths:    widths,
		collector: NewCollector(opts.Factory, opts.Available, opts.Attributes, opts.Tag, widths),
	}
}

// Run inventories every region in the order given. It returns an error only
// for fatal configuration problems, all detected before any region is
// processed; after that point nothing stops the run.
func (d *Driver) Run(ctx context.Context, regions []string) error {
	if len(d.opts.Available) == 0 {
		return errors.New("no available regions were returned")
	}
	if len(regions) == 0 {
		return errors.New("list of regions is empty")
	}
	if len(d.opts.Attributes) == 0 {
		return errors.New("list of attributes is empty")
	}

	for _, region := range regions {
		fmt.Fprintln(d.opts.Out, strings.Repeat("*", regionBannerWidth))
		fmt.Fprintf(d.opts.Out, "REGION: %s\n", region)

		records, err := d.collector.Collect(ctx, region)
		if err != nil {
			fmt.Fprintf(d.opts.Out, "WARNING: %s\n", err)
			continue
		}

		fmt.Fprintf(d.opts.Out, "Instances: %d\n", len(records))
		Render(d.opts.Out, d.columns, d.widths, records)
	}
	return nil
}
