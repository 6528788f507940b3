package config

import "testing"

// Override makes Get return cfg until the test ends. cfg is used as given:
// HOSTLOG_* variables are not applied on top, unlike Load. Commands that
// call Init or Reload still read config.toml from HOSTLOG_CONFIG_DIR, and
// the cached value before Override comes back on cleanup.
func Override(t testing.TB, cfg Config) {
	t.Helper()
	configMu.RLock()
	prev := globalConfig
	configMu.RUnlock()

	set(cfg)
	t.Cleanup(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig = prev
	})
}
