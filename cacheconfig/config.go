// Package cacheconfig recognizes the cache's constructor-level settings
// (eviction_policy, scan_interval_ms, max_items, max_bytes) from struct
// defaults, environment variables, and JSON/YAML files, validates the
// policy name, and turns the result into a cache.Options. It is the
// Go-native realization of spec §6's "configuration recognized at
// construction", grounded on the reference corpus's generic koanf-based
// configloader.
package cacheconfig

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/bellirodrigo2/flexcache/cache"
	"github.com/bellirodrigo2/flexcache/policy"
	"github.com/bellirodrigo2/flexcache/policy/fifo"
	"github.com/bellirodrigo2/flexcache/policy/lru"
	"github.com/bellirodrigo2/flexcache/policy/random"
)

// Spec is the raw, host-facing configuration shape. Its field tags match
// the names spec §6 assigns each recognized setting.
type Spec struct {
	EvictionPolicy string `koanf:"eviction_policy"`
	ScanIntervalMs uint64 `koanf:"scan_interval_ms"`
	MaxItems       int64  `koanf:"max_items"`
	MaxBytes       int64  `koanf:"max_bytes"`
}

// DefaultSpec is the configuration a Cache gets when nothing overrides it:
// LRU, no scan throttle, no capacity limits.
var DefaultSpec = Spec{EvictionPolicy: "lru"}

// Loader accumulates configuration sources (in increasing precedence:
// defaults, file, environment) and produces a Spec. Load does not check
// the policy name; ResolvePolicy and ToCacheOptions reject unknown names.
type Loader struct {
	k   *koanf.Koanf
	log zerolog.Logger
	err error
}

// NewLoader creates a Loader seeded with defaults.
func NewLoader(defaults Spec, log zerolog.Logger) *Loader {
	l := &Loader{k: koanf.New("."), log: log}
	if err := l.k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		l.err = fmt.Errorf("cacheconfig: load defaults: %w", err)
	}
	return l
}

// WithFile layers a JSON or YAML file on top of the current configuration,
// chosen by the file's extension.
func (l *Loader) WithFile(path string) *Loader {
	if l.err != nil {
		return l
	}
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		parser = json.Parser()
	}
	if err := l.k.Load(file.Provider(path), parser); err != nil {
		l.err = fmt.Errorf("cacheconfig: load file %q: %w", path, err)
		l.log.Error().Err(l.err).Msg("cacheconfig: file load failed")
	}
	return l
}

// WithEnv layers environment variables with the given prefix on top of the
// current configuration. CACHE_EVICTION_POLICY maps to eviction_policy,
// CACHE_MAX_ITEMS to max_items, and so on.
func (l *Loader) WithEnv(prefix string) *Loader {
	if l.err != nil {
		return l
	}
	err := l.k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, prefix))
	}), nil)
	if err != nil {
		l.err = fmt.Errorf("cacheconfig: load env: %w", err)
		l.log.Error().Err(l.err).Msg("cacheconfig: env load failed")
	}
	return l
}

// Load unmarshals the accumulated sources into a Spec.
func (l *Loader) Load() (Spec, error) {
	var s Spec
	if l.err != nil {
		return s, l.err
	}
	if err := l.k.Unmarshal("", &s); err != nil {
		return s, fmt.Errorf("cacheconfig: unmarshal: %w", err)
	}
	return s, nil
}

// ErrUnknownPolicy is returned by ResolvePolicy (and transitively by
// ToCacheOptions) when the eviction_policy value does not name one of the
// registered built-ins.
type ErrUnknownPolicy struct{ Name string }

func (e *ErrUnknownPolicy) Error() string {
	return fmt.Sprintf("cacheconfig: unrecognized eviction policy %q", e.Name)
}

// ResolvePolicy maps a policy name to its implementation, case-insensitive.
// rng is only consulted for "random"; it may be nil to use the default
// source. An empty name resolves to LRU.
func ResolvePolicy(name string, rng random.Source) (policy.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lru":
		return lru.New(), nil
	case "fifo":
		return fifo.New(), nil
	case "random":
		return random.New(rng), nil
	default:
		return nil, &ErrUnknownPolicy{Name: name}
	}
}

// ToCacheOptions resolves the eviction policy named by s and assembles a
// cache.Options. Callers typically layer their own fields (Clock,
// KeyCopy/ValueCopy, OnRemove, ...) onto the result before calling
// cache.New.
func (s Spec) ToCacheOptions(rng random.Source) (cache.Options, error) {
	p, err := ResolvePolicy(s.EvictionPolicy, rng)
	if err != nil {
		return cache.Options{}, err
	}
	return cache.Options{
		Policy:       p,
		MaxItems:     s.MaxItems,
		MaxBytes:     s.MaxBytes,
		ScanInterval: time.Duration(s.ScanIntervalMs) * time.Millisecond,
	}, nil
}
