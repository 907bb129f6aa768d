package rx

// Config controls how an Observable reports the lifecycle of its subscriptions.
// The zero value is ready to use.
type Config struct {
	// Name identifies the observable in log records.
	// Omitted from records when empty.
	Name string

	// Logger receives lifecycle records.
	// Defaults to the logger set with SetDefaultLogger at construction time.
	Logger Logger

	// DisableLogging silences all lifecycle records, including the
	// teardown notification of From.
	DisableLogging bool
}

func (c Config) parse() Config {
	switch {
	case c.DisableLogging:
		c.Logger = nopLogger{}
	case c.Logger == nil:
		c.Logger = loadDefaultLogger()
	}
	return c
}

func (c Config) args() []any {
	if c.Name == "" {
		return nil
	}
	return []any{"observable", c.Name}
}
