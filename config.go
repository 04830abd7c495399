package bucketsort

// Config holds configuration settings for bucketsort
type Config struct {
	NumNodes           int    // number of simulated nodes, one bucket per node; must be >= 1
	OutputChanBuffSize int    // buffer size for passing records to the output chan of Chan
	Logger             Logger // optional, nil discards all events
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		NumNodes:           5,
		OutputChanBuffSize: 10,
		Logger:             nopLogger{},
	}
}

// mergeConfig takes a provided config and replaces any optional values not set with the defaults.
// NumNodes is never defaulted on a non-nil config since an invalid node count must be reported.
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if merged.OutputChanBuffSize < 0 {
		merged.OutputChanBuffSize = d.OutputChanBuffSize
	}
	if merged.Logger == nil {
		merged.Logger = d.Logger
	}
	return &merged
}

// validate checks the preconditions of a run
func (c *Config) validate() error {
	return validateNumNodes(c.NumNodes)
}

func validateNumNodes(numNodes int) error {
	if numNodes <= 0 {
		return NewConfigError("NumNodes", numNodes, "must be at least 1")
	}
	return nil
}
