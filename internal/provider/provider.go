// Package provider defines the narrow contracts the inventory core uses to
// talk to the cloud provider, plus their EC2 implementations. The core never
// mutates remote state: everything here is read-only description calls.
package provider

import "context"

// Tag is one key/value label attached to an instance. Value is nil when the
// provider returned an entry without a value.
type Tag struct {
	Key   string
	Value *string
}

// Instance is a duck-typed view of one raw provider instance. The set of
// attributes to display is only known at run time, so fields are looked up by
// name instead of through a fixed structural type.
type Instance interface {
	// Field returns the named attribute's value and whether the instance has it.
	Field(name string) (any, bool)
	// Tags returns the instance's tag list.
	Tags() []Tag
}

// Reservation groups the instances the provider reports together in one
// reservation block of a describe response.
type Reservation struct {
	Instances []Instance
}

// Page is one page of a paginated describe call. An empty NextToken means no
// further pages remain.
type Page struct {
	Reservations []Reservation
	NextToken    string
}

// DescribeClient issues paginated instance-description requests for a single
// region.
type DescribeClient interface {
	// DescribePage fetches one page of results. Pass an empty token for the
	// first page, then the token of the previous response.
	DescribePage(ctx context.Context, nextToken string) (Page, error)
}

// ClientFactory constructs a DescribeClient bound to a region.
type ClientFactory interface {
	NewClient(ctx context.Context, region string) (DescribeClient, error)
}

// RegionCatalog lists the regions the provider advertises for the service.
type RegionCatalog interface {
	AvailableRegions(ctx context.Context) ([]string, error)
}
