// File: registry.go
// Title: OFX Aggregate Registry
// Description: Thread-safe registry of known OFX aggregate definitions.
//              The converter consults the registry to decide which tags
//              are convertible, which carry repeated sub-aggregates, and
//              how to build typed aggregates from flattened attributes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial registry implementation

package registry

import (
	"sort"
	"strings"
	"sync"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	"github.com/msto63/mOFX/foundation/core/log"
	mofxstringx "github.com/msto63/mOFX/foundation/utils/stringx"
)

// Options configures a Registry
type Options struct {
	// Logger for registry diagnostics. Uses the default logger when nil.
	Logger *log.Logger
}

// Registry holds the known aggregate definitions keyed by uppercase tag.
// All methods are safe for concurrent use.
type Registry struct {
	definitions map[string]*Definition
	logger      *log.Logger
	mutex       sync.RWMutex
}

// New creates a new empty registry
func New(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	return &Registry{
		definitions: make(map[string]*Definition),
		logger:      logger.WithField("component", "ofx-registry"),
	}
}

// Register adds an aggregate definition. Tag names are normalized to
// uppercase; registering the same tag twice is an error.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return mofxerror.New("aggregate definition cannot be nil").
			WithCode(mofxerror.CodeValidationFailed).
			WithOperation("registry.Register")
	}

	if mofxstringx.IsBlank(def.Name) {
		return mofxerror.New("aggregate name cannot be empty").
			WithCode(mofxerror.CodeValidationFailed).
			WithOperation("registry.Register")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	name := strings.ToUpper(def.Name)
	def.Name = name

	if _, exists := r.definitions[name]; exists {
		return mofxerror.Newf("aggregate %s already registered", name).
			WithCode(mofxerror.CodeValidationFailed).
			WithOperation("registry.Register").
			WithTag(name)
	}

	for _, list := range def.Lists {
		if mofxstringx.IsBlank(list.Tag) || mofxstringx.IsBlank(list.ItemTag) {
			return mofxerror.Newf("aggregate %s has an incomplete list specification", name).
				WithCode(mofxerror.CodeValidationFailed).
				WithOperation("registry.Register").
				WithTag(name)
		}
	}

	r.definitions[name] = def

	r.logger.Debug("OFX aggregate registered", log.Fields{
		"name":     name,
		"lists":    len(def.Lists),
		"currency": def.CurrencyBearing,
		"typed":    def.New != nil,
	})

	return nil
}

// MustRegister registers a definition and panics on failure. Intended for
// the built-in definition set, where a registration failure is a defect.
func (r *Registry) MustRegister(def *Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition for a tag
func (r *Registry) Lookup(name string) (*Definition, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, exists := r.definitions[strings.ToUpper(name)]
	if !exists {
		return nil, mofxerror.Newf("aggregate %s not found in registry", strings.ToUpper(name)).
			WithCode(mofxerror.CodeUnknownAggregate).
			WithOperation("registry.Lookup").
			WithTag(strings.ToUpper(name))
	}

	return def, nil
}

// Has checks whether a tag is registered
func (r *Registry) Has(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.definitions[strings.ToUpper(name)]
	return exists
}

// Names returns the sorted list of registered tags
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Definitions returns a copy of all registered definitions
func (r *Registry) Definitions() map[string]*Definition {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	defs := make(map[string]*Definition, len(r.definitions))
	for k, v := range r.definitions {
		defs[k] = v
	}

	return defs
}

// Len returns the number of registered definitions
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.definitions)
}
