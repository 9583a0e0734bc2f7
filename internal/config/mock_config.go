package config

type mockConfig struct {
	conf map[string]string
}

// NewMockConfig returns a Config backed by configMap, for tests.
func NewMockConfig(configMap map[string]string) Config {
	if configMap == nil {
		configMap = make(map[string]string)
	}

	return &mockConfig{conf: configMap}
}

// Get returns the value for key, or "" when unset.
func (m *mockConfig) Get(key string) string {
	return m.conf[key]
}

// GetOrDefault returns the value for key, or defaultValue when unset or empty.
func (m *mockConfig) GetOrDefault(key, defaultValue string) string {
	if v, ok := m.conf[key]; ok && v != "" {
		return v
	}

	return defaultValue
}
