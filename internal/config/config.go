// Package config provides configuration for the cheese command and its
// collaborators.
package config

import (
	"fmt"
	"io"
	"os"
)

// Verbosity levels for Logf.
const (
	Silent     = 0
	Summary    = 1
	Commentary = 2
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Output *OutputConfig
	Replay *ReplayConfig
	Filter *FilterConfig

	// Input
	SnapshotFile string
	StartFEN     string
	ECOFile      string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     NewOutputConfig(),
		Replay:     NewReplayConfig(),
		Filter:     NewFilterConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
	if n := len(format); n == 0 || format[n-1] != '\n' {
		fmt.Fprintln(c.LogFile)
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Filter.Validate()
}
