package config

import "strings"

// Built-in defaults applied when neither a flag nor the config file supplies a
// value. The region default (every available region) depends on the provider
// catalog and is resolved by the caller once the catalog has been fetched.
const DefaultTag = "Owner"

// DefaultAttributes returns the attribute columns shown when none are
// configured.
func DefaultAttributes() []string {
	return []string{"InstanceId", "InstanceType", "LaunchTime"}
}

// Config holds the run options for an inventory run. Values may come from the
// config file, from flags, or from built-in defaults, in that order of
// increasing precedence.
type Config struct {
	Regions    []string `yaml:"regions,omitempty"`    // Regions to inventory; empty means all available regions
	Tag        string   `yaml:"tag,omitempty"`        // Tag to display and sort by
	Attributes []string `yaml:"attributes,omitempty"` // Instance attributes to display, in column order
}

// Overrides carries the raw flag values. An empty string means the flag was
// not provided on the command line.
type Overrides struct {
	Regions    string
	Tag        string
	Attributes string
}

// Resolve merges flag overrides over file-supplied values and fills in the
// built-in defaults for the tag and attribute list.
func Resolve(file Config, o Overrides) Config {
	cfg := file
	if o.Regions != "" {
		cfg.Regions = SplitList(o.Regions)
	}
	if o.Tag != "" {
		cfg.Tag = o.Tag
	}
	if o.Attributes != "" {
		cfg.Attributes = SplitList(o.Attributes)
	}
	if cfg.Tag == "" {
		cfg.Tag = DefaultTag
	}
	if len(cfg.Attributes) == 0 {
		cfg.Attributes = DefaultAttributes()
	}
	return cfg
}

// SplitList splits a comma-separated flag value into its entries, trimming
// surrounding whitespace from each.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
