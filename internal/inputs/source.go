package inputs

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// DefaultEnvPrefix is the prefix workflow runners put in front of step input names.
const DefaultEnvPrefix = "INPUT_"

// Source supplies raw input values by key. Keys are matched case-sensitively.
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(key string) (string, bool)

// Lookup calls f(key).
func (f SourceFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// MapSource keeps inputs in memory and guards access with a RWMutex.
type MapSource struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapSource initialises a source with a copy of values.
func NewMapSource(values map[string]string) *MapSource {
	s := &MapSource{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Lookup returns the value stored for key.
func (s *MapSource) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *MapSource) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
}

// Keys returns the stored keys in sorted order.
func (s *MapSource) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnvSource reads inputs from environment variables the way workflow runners
// expose them: run_tests is read from INPUT_RUN_TESTS and surrounding
// whitespace is trimmed.
type EnvSource struct {
	prefix    string
	lookupEnv func(string) (string, bool)
}

// NewEnvSource creates an EnvSource. An empty prefix selects DefaultEnvPrefix
// and a nil lookupEnv selects os.LookupEnv.
func NewEnvSource(prefix string, lookupEnv func(string) (string, bool)) *EnvSource {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &EnvSource{prefix: prefix, lookupEnv: lookupEnv}
}

// Lookup returns the trimmed value of the variable mapped from key.
func (s *EnvSource) Lookup(key string) (string, bool) {
	v, ok := s.lookupEnv(s.Variable(key))
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Variable returns the environment variable name key is read from.
func (s *EnvSource) Variable(key string) string {
	return s.prefix + strings.ToUpper(strings.ReplaceAll(key, " ", "_"))
}

// Layered consults sources in order and returns the first non-empty value.
type Layered []Source

// Lookup walks the layers in precedence order.
func (l Layered) Lookup(key string) (string, bool) {
	found := false
	for _, src := range l {
		if src == nil {
			continue
		}
		v, ok := src.Lookup(key)
		if !ok {
			continue
		}
		if v != "" {
			return v, true
		}
		found = true
	}
	return "", found
}
