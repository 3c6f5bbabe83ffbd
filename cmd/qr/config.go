package main

import (
	"strings"

	"github.com/BurntSushi/toml"
)

// config holds defaults read from a TOML file.  Flags given on the
// command line take precedence.
//
//	level  = "m"
//	scale  = 10
//	border = 4
//	format = "png"
type config struct {
	Level  string `toml:"level"`
	Scale  *int   `toml:"scale"`
	Border *int   `toml:"border"`
	Format string `toml:"format"`
}

// loadConfig reads the config file fn.  It returns the names of keys
// it does not know alongside the config.
func loadConfig(fn string) (*config, []string, error) {
	var c config
	md, err := toml.DecodeFile(fn, &c)
	if err != nil {
		return nil, nil, err
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return &c, unknown, nil
}

// apply sets fields of o from c unless the corresponding flag was
// given.
func (c *config) apply(o *options) error {
	if c.Level != "" && !o.seen['l'] {
		if err := o.setLevel(c.Level); err != nil {
			return err
		}
	}
	if c.Scale != nil && !o.seen['s'] {
		o.scale = *c.Scale
	}
	if c.Border != nil && !o.seen['m'] {
		o.border = *c.Border
	}
	if c.Format != "" && !o.seen['t'] {
		if err := o.setFormat(strings.TrimSpace(c.Format)); err != nil {
			return err
		}
	}
	return nil
}
