package cli

import (
	"strconv"

	"github.com/spf13/pflag"
)

// useDefault is what pflag stores when a count flag is given without a value
const useDefault = "default"

// countFlag is an optional-value integer flag. Parsing is deferred until
// the config defaults are known so the error can carry query.ErrInvalidValue.
type countFlag struct {
	raw string
	set bool
}

var _ pflag.Value = (*countFlag)(nil)

func (c *countFlag) String() string { return c.raw }

func (c *countFlag) Set(v string) error {
	c.raw = v
	c.set = true
	return nil
}

func (c *countFlag) Type() string { return "n" }

// value returns the parsed count, or def when no value was given
func (c *countFlag) value(def int) (int, error) {
	if c.raw == useDefault {
		return def, nil
	}
	return strconv.Atoi(c.raw)
}
