package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

// outputFormat selects how listings are rendered.
type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

var (
	_          pflag.Value = (*outputFormat)(nil)
	allFormats             = []outputFormat{formatTable, formatJSON, formatYAML}
)

// Set implements pflag.Value.
func (f *outputFormat) Set(v string) error {
	for _, format := range allFormats {
		if v == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format %q, valid values are %q, %q or %q", v, formatTable, formatJSON, formatYAML)
}

// String implements pflag.Value.
func (f *outputFormat) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *outputFormat) Type() string {
	return "format"
}
