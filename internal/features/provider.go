package features

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// Provider evaluates boolean feature flags
type Provider interface {
	Enabled(key string) bool
}

// EnvProvider resolves flags from FLAG_<KEY> environment variables at
// each call, so flags can be flipped on a running process. Static
// overrides take priority (used by tests and ops tooling).
type EnvProvider struct {
	mu        sync.RWMutex
	overrides map[string]bool
}

// NewEnvProvider creates the environment-backed flag provider
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{
		overrides: make(map[string]bool),
	}
}

// Enabled evaluates a flag: override, then environment, then default.
// Unknown keys without an override or environment value are false.
func (p *EnvProvider) Enabled(key string) bool {
	p.mu.RLock()
	if v, ok := p.overrides[key]; ok {
		p.mu.RUnlock()
		return v
	}
	p.mu.RUnlock()

	if envVal := os.Getenv(envKey(key)); envVal != "" {
		if v, err := strconv.ParseBool(envVal); err == nil {
			return v
		}
	}

	return defaults[key]
}

// SetOverride pins a flag value in-process, shadowing the environment
func (p *EnvProvider) SetOverride(key string, value bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overrides[key] = value
}

// ClearOverride removes an in-process override
func (p *EnvProvider) ClearOverride(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.overrides, key)
}

func envKey(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// Static is a fixed-map Provider for tests
type Static map[string]bool

// Enabled returns the mapped value, false for unknown keys
func (s Static) Enabled(key string) bool {
	return s[key]
}
