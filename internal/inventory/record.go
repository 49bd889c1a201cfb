package inventory

import (
	"fmt"
	"time"

	"ec2inv/internal/provider"
)

// Placeholder values for data the provider did not return. Missing attributes
// and missing tags are not errors: they render as fixed placeholder text and
// produce no log output.
const (
	missingAttribute = "(no attribute key)"
	unknownTagValue  = "unknown"
)

// Record is one normalized instance: a flat mapping from column name to the
// string that will be rendered. Every record produced during a run holds
// exactly the sort-tag column plus the configured attribute columns.
type Record map[string]string

// Normalize flattens one raw instance into a Record and grows the width table
// for every column it touches. A nil instance is a no-op returning a nil
// record, not an error that would abort the run.
func Normalize(inst provider.Instance, attributes []string, tag string, widths *WidthTable) Record {
	if inst == nil {
		return nil
	}

	record := make(Record, len(attributes)+1)

	for _, attribute := range attributes {
		value, ok := inst.Field(attribute)
		if !ok {
			record[attribute] = missingAttribute
		} else {
			record[attribute] = stringifyField(value)
		}
		widths.Observe(attribute, record[attribute])
	}

	record[tag] = unknownTagValue
	for _, t := range inst.Tags() {
		if t.Key != tag {
			continue
		}
		if t.Value != nil {
			record[tag] = *t.Value
		} else {
			// A tag entry without a value sorts and renders as unknown too.
			record[tag] = unknownTagValue
		}
	}
	widths.Observe(tag, record[tag])

	return record
}

// stringifyField renders a raw attribute value as text. Timestamps get the
// canonical ctime-style layout; everything else uses its default formatting.
func stringifyField(value any) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.ANSIC)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
