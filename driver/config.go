package driver

import "github.com/npillmayer/schuko/gconf"

// Config threads process-wide options into a Driver, the way gorgo's
// runtime package threads options into a Runtime. A nil *Config is
// equivalent to the zero value: no iteration ceiling.
type Config struct {
	// IterationCeiling, when positive, is copied into every stage's
	// Pass.MaxIterations that doesn't already declare one of its own,
	// aborting a stage that never reaches a fixed point rather than
	// looping forever. It does not change rewrite semantics.
	IterationCeiling int
}

// ConfigFromGlobal builds a Config from schuko's process-wide
// configuration, reading the "rewrite-iteration-ceiling" key (0, the
// zero value, if unset).
func ConfigFromGlobal() *Config {
	return &Config{IterationCeiling: gconf.GetInt("rewrite-iteration-ceiling")}
}
