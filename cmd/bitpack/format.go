package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

const (
	formatBinary = "binary"
	formatHex    = "hex"
	formatUTF16  = "utf16"
	formatText   = "text"
)

// formatFlag is a string flag restricted to a set of names.
type formatFlag struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*formatFlag)(nil)

func newFormatFlag(value string, allowed ...string) *formatFlag {
	return &formatFlag{
		value:   value,
		allowed: allowed,
	}
}

func (f *formatFlag) String() string {
	return f.value
}

func (f *formatFlag) Set(s string) error {
	s = strings.ToLower(s)
	if !slices.Contains(f.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(f.allowed, "|"))
	}

	f.value = s

	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}

func (f *formatFlag) usage(what string) string {
	return fmt.Sprintf("%s format (%s)", what, strings.Join(f.allowed, "|"))
}
