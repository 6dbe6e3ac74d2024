package app

import "flag"

// Config represents the command-line parameters for the demo application.
type Config struct {
	Font  string
	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 3, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Font, "font", c.Font, "path to a TTF for the overlay text (embedded face when empty)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}
