package inventory

import (
	"context"

	"ec2inv/internal/provider"
)

// fakeInstance is a map-backed provider.Instance for tests.
type fakeInstance struct {
	fields map[string]any
	tags   []provider.Tag
}

func (f fakeInstance) Field(name string) (any, bool) {
	value, ok := f.fields[name]
	return value, ok
}

func (f fakeInstance) Tags() []provider.Tag {
	return f.tags
}

func strPtr(s string) *string {
	return &s
}

// pageResult is one canned DescribePage response.
type pageResult struct {
	page provider.Page
	err  error
}

// fakeClient replays canned pages in order and records the tokens it was
// asked for.
type fakeClient struct {
	pages  []pageResult
	calls  int
	tokens []string
}

func (c *fakeClient) DescribePage(ctx context.Context, nextToken string) (provider.Page, error) {
	c.tokens = append(c.tokens, nextToken)
	result := c.pages[c.calls]
	c.calls++
	return result.page, result.err
}

// fakeFactory hands out per-region fake clients.
type fakeFactory struct {
	clients map[string]*fakeClient
	err     error
	calls   []string
}

func (f *fakeFactory) NewClient(ctx context.Context, region string) (provider.DescribeClient, error) {
	f.calls = append(f.calls, region)
	if f.err != nil {
		return nil, f.err
	}
	return f.clients[region], nil
}

// reservationOf wraps instances into a single-reservation page helper.
func reservationOf(instances ...provider.Instance) provider.Reservation {
	return provider.Reservation{Instances: instances}
}

// taggedInstance builds an instance carrying an id field and one Owner-style
// tag value.
func taggedInstance(tagKey, tagValue, id string) fakeInstance {
	return fakeInstance{
		fields: map[string]any{"InstanceId": id},
		tags:   []provider.Tag{{Key: tagKey, Value: strPtr(tagValue)}},
	}
}
