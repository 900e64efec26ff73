package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGlyphs sets the board glyph set.
func (b *ConfigBuilder) WithGlyphs(glyphs GlyphSet) *ConfigBuilder {
	b.cfg.Output.Glyphs = glyphs
	return b
}

// WithNotation sets the move notation style.
func (b *ConfigBuilder) WithNotation(style NotationStyle) *ConfigBuilder {
	b.cfg.Output.Notation = style
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithAttackedOverlay marks attacked squares on rendered boards.
func (b *ConfigBuilder) WithAttackedOverlay(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowAttacked = enabled
	return b
}

// WithLabels controls the file and rank labels on rendered boards.
func (b *ConfigBuilder) WithLabels(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLabels = enabled
	return b
}

// WithWorkers sets the replay concurrency.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithPlyLimit stops replays after n moves.
func (b *ConfigBuilder) WithPlyLimit(n int) *ConfigBuilder {
	b.cfg.Replay.MaxPlies = n
	return b
}

// WithStartFEN sets the position games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
