package inventory

import (
	"testing"
	"time"

	"ec2inv/internal/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_KeySetIsExactlyTagPlusAttributes(t *testing.T) {
	attributes := []string{"InstanceId", "InstanceType"}
	widths := NewWidthTable([]string{"Owner", "InstanceId", "InstanceType"})
	inst := fakeInstance{
		fields: map[string]any{
			"InstanceId":   "i-1",
			"InstanceType": "t3.micro",
			"Extra":        "ignored", // not requested, must not leak into the record
		},
		tags: []provider.Tag{{Key: "Owner", Value: strPtr("alice")}},
	}

	record := Normalize(inst, attributes, "Owner", widths)

	require.NotNil(t, record)
	assert.Len(t, record, 3)
	assert.Contains(t, record, "Owner")
	assert.Contains(t, record, "InstanceId")
	assert.Contains(t, record, "InstanceType")
	assert.NotContains(t, record, "Extra")
}

func TestNormalize_MissingAttributeGetsPlaceholder(t *testing.T) {
	widths := NewWidthTable([]string{"Owner", "Platform"})
	inst := fakeInstance{fields: map[string]any{}}

	record := Normalize(inst, []string{"Platform"}, "Owner", widths)

	assert.Equal(t, "(no attribute key)", record["Platform"])
}

func TestNormalize_MissingTagIsUnknown(t *testing.T) {
	widths := NewWidthTable([]string{"Owner", "InstanceId"})
	inst := fakeInstance{
		fields: map[string]any{"InstanceId": "i-1"},
		tags:   []provider.Tag{{Key: "Team", Value: strPtr("infra")}},
	}

	record := Normalize(inst, []string{"InstanceId"}, "Owner", widths)

	assert.Equal(t, "unknown", record["Owner"])
}

func TestNormalize_TagEntryWithoutValueIsUnknown(t *testing.T) {
	widths := NewWidthTable([]string{"Owner", "InstanceId"})
	inst := fakeInstance{
		fields: map[string]any{"InstanceId": "i-1"},
		tags:   []provider.Tag{{Key: "Owner", Value: nil}},
	}

	record := Normalize(inst, []string{"InstanceId"}, "Owner", widths)

	assert.Equal(t, "unknown", record["Owner"])
}

func TestNormalize_TagValueIsExtracted(t *testing.T) {
	widths := NewWidthTable([]string{"Owner", "InstanceId"})
	inst := fakeInstance{
		fields: map[string]any{"InstanceId": "i-1"},
		tags: []provider.Tag{
			{Key: "Team", Value: strPtr("infra")},
			{Key: "Owner", Value: strPtr("alice")},
		},
	}

	record := Normalize(inst, []string{"InstanceId"}, "Owner", widths)

	assert.Equal(t, "alice", record["Owner"])
}

func TestNormalize_TimestampUsesCtimeLayout(t *testing.T) {
	widths := NewWidthTable([]string{"Owner", "LaunchTime"})
	launched := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	inst := fakeInstance{fields: map[string]any{"LaunchTime": launched}}

	record := Normalize(inst, []string{"LaunchTime"}, "Owner", widths)

	assert.Equal(t, "Fri Mar  1 09:30:00 2024", record["LaunchTime"])
}

func TestNormalize_NonStringValuesAreStringified(t *testing.T) {
	widths := NewWidthTable([]string{"Owner", "AmiLaunchIndex"})
	inst := fakeInstance{fields: map[string]any{"AmiLaunchIndex": int32(7)}}

	record := Normalize(inst, []string{"AmiLaunchIndex"}, "Owner", widths)

	assert.Equal(t, "7", record["AmiLaunchIndex"])
}

func TestNormalize_NilInstanceIsNoOp(t *testing.T) {
	widths := NewWidthTable([]string{"Owner", "InstanceId"})

	record := Normalize(nil, []string{"InstanceId"}, "Owner", widths)

	assert.Nil(t, record)
	// And the widths are untouched.
	assert.Equal(t, len("InstanceId"), widths.Width("InstanceId"))
}

func TestNormalize_GrowsWidthsForObservedValues(t *testing.T) {
	widths := NewWidthTable([]string{"Owner", "InstanceId"})
	inst := fakeInstance{
		fields: map[string]any{"InstanceId": "i-0123456789abcdef0"},
		tags:   []provider.Tag{{Key: "Owner", Value: strPtr("a-rather-long-owner-name")}},
	}

	Normalize(inst, []string{"InstanceId"}, "Owner", widths)

	assert.Equal(t, len("i-0123456789abcdef0"), widths.Width("InstanceId"))
	assert.Equal(t, len("a-rather-long-owner-name"), widths.Width("Owner"))
}
