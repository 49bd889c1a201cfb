package provider

import (
	"context"
	"fmt"
	"reflect"

	"ec2inv/pkg/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// bootstrapRegion is used for the region catalog call when the environment
// does not resolve a region of its own. DescribeRegions is not region-bound,
// but the SDK requires some region to sign the request against.
const bootstrapRegion = "us-east-1"

// Catalog lists the available EC2 regions via ec2:DescribeRegions.
type Catalog struct{}

// NewCatalog creates the EC2 region catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// AvailableRegions fetches every region EC2 advertises, including opt-in
// regions that are not enabled for the account.
func (c *Catalog) AvailableRegions(ctx context.Context) ([]string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = bootstrapRegion
	}

	client := ec2.NewFromConfig(cfg)
	out, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("describing regions: %w", err)
	}

	regions := make([]string, 0, len(out.Regions))
	for _, region := range out.Regions {
		if region.RegionName != nil {
			regions = append(regions, *region.RegionName)
		}
	}
	logging.Debug("Catalog", "provider advertised %d regions", len(regions))
	return regions, nil
}

// Factory builds per-region EC2 describe clients.
type Factory struct{}

// NewFactory creates the EC2 client factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewClient constructs an EC2 client bound to the given region. A construction
// failure is a region-level failure, not a fatal one: the caller skips the
// region and moves on.
func (f *Factory) NewClient(ctx context.Context, region string) (DescribeClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration for region %s: %w", region, err)
	}
	return &describeClient{api: ec2.NewFromConfig(cfg)}, nil
}

// describeAPI is the slice of the EC2 API the describe client needs. Narrowed
// to an interface so tests can fake the SDK call.
type describeAPI interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

type describeClient struct {
	api describeAPI
}

// DescribePage fetches one page of DescribeInstances results and maps it onto
// the provider-neutral Page shape.
func (c *describeClient) DescribePage(ctx context.Context, nextToken string) (Page, error) {
	input := &ec2.DescribeInstancesInput{}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	out, err := c.api.DescribeInstances(ctx, input)
	if err != nil {
		return Page{}, err
	}

	page := Page{NextToken: aws.ToString(out.NextToken)}
	for _, reservation := range out.Reservations {
		r := Reservation{Instances: make([]Instance, 0, len(reservation.Instances))}
		for _, instance := range reservation.Instances {
			r.Instances = append(r.Instances, awsInstance{raw: instance})
		}
		page.Reservations = append(page.Reservations, r)
	}
	return page, nil
}

// awsInstance adapts an ec2types.Instance to the duck-typed Instance view.
// Attribute names are resolved by reflection over the SDK struct because the
// attribute set is only known at run time.
type awsInstance struct {
	raw ec2types.Instance
}

func (a awsInstance) Field(name string) (any, bool) {
	v := reflect.ValueOf(a.raw).FieldByName(name)
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	if v.Kind() == reflect.Pointer {
		// A nil pointer means the provider omitted the field.
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	return v.Interface(), true
}

func (a awsInstance) Tags() []Tag {
	tags := make([]Tag, 0, len(a.raw.Tags))
	for _, t := range a.raw.Tags {
		tags = append(tags, Tag{Key: aws.ToString(t.Key), Value: t.Value})
	}
	return tags
}
