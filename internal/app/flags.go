package app

import (
	"flag"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/errgo.v1"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Chunk   int
	Verbose bool
	Set     Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 4, TPS: 60, Seed: 1337, Width: 256, Height: 160, Chunk: 16}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Chunk, "chunk", c.Chunk, "activity chunk edge length in cells")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log per-tick statistics")
	fs.Var(&c.Set, "set", "override a simulation parameter (key=value, repeatable)")
}

// SimConfig returns the string map understood by the simulation factories.
// Explicit -set overrides win over the dedicated flags.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"chunk": strconv.Itoa(c.Chunk),
		"seed":  strconv.FormatInt(c.Seed, 10),
	}
	for k, v := range c.Set {
		cfg[k] = v
	}
	return cfg
}

// Overrides collects repeated key=value flags.
type Overrides map[string]string

// String implements flag.Value.
func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value. A comma separates several pairs in one flag.
func (o *Overrides) Set(s string) error {
	if *o == nil {
		*o = Overrides{}
	}
	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return errgo.Newf("invalid override %q: want key=value", pair)
		}
		(*o)[key] = strings.TrimSpace(value)
	}
	return nil
}

// NewLogger returns a text logger writing to w. Verbose raises the level to
// Debug so per-tick statistics are emitted.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
