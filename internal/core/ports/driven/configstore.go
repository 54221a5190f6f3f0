package driven

// ConfigStore provides persistent key-value configuration.
// Keys use dotted notation, e.g. "search.debounce_ms".
type ConfigStore interface {
	// Get retrieves a raw configuration value.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if unset.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if unset.
	GetInt(key string) int

	// GetFloat retrieves a float value, or 0 if unset.
	GetFloat(key string) float64

	// Set stores a configuration value in memory.
	Set(key string, value any)

	// Save persists the current values.
	Save() error
}
