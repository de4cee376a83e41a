// Package validation runs ordered rule pipelines against values bound from a
// nested submission payload, accumulating the first failure per field into a
// localizable error map.
package validation

import (
	"github.com/nimblemvc/go-form/pkg/fieldpath"
)

// Errors maps a field path to the first failure message recorded for it.
type Errors map[string]string

// RuleSpec is an ordered mapping from field path to its rule list. Field
// declaration order is the evaluation order of Run.
type RuleSpec struct {
	entries []specEntry
	index   map[string]int
}

type specEntry struct {
	path  string
	rules []Rule
}

// NewRuleSpec constructs an empty spec.
func NewRuleSpec() *RuleSpec {
	return &RuleSpec{index: make(map[string]int)}
}

// Field appends rules for a path, keeping the path's original position when
// it was already declared. Returns the spec for chaining.
func (s *RuleSpec) Field(path string, rules ...Rule) *RuleSpec {
	if path == "" || len(rules) == 0 {
		return s
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if at, ok := s.index[path]; ok {
		s.entries[at].rules = append(s.entries[at].rules, rules...)
		return s
	}
	s.index[path] = len(s.entries)
	s.entries = append(s.entries, specEntry{path: path, rules: rules})
	return s
}

// Len reports the number of declared field paths.
func (s *RuleSpec) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// EngineOption customises an Engine.
type EngineOption func(*Engine)

// WithCatalog swaps the message catalog used by built-in rules.
func WithCatalog(catalog *Catalog) EngineOption {
	return func(e *Engine) {
		if catalog != nil {
			e.catalog = catalog
		}
	}
}

// Engine evaluates a RuleSpec against one submission payload snapshot. Both
// inputs are read-only; Run may be called any number of times and always
// yields the same result for the same inputs.
type Engine struct {
	spec    *RuleSpec
	data    map[string]any
	catalog *Catalog
}

// NewEngine constructs an Engine for the given spec and payload snapshot.
// The English catalog is used unless WithCatalog overrides it.
func NewEngine(spec *RuleSpec, data map[string]any, options ...EngineOption) *Engine {
	engine := &Engine{
		spec:    spec,
		data:    data,
		catalog: defaultCatalog(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(engine)
	}
	return engine
}

// Run evaluates every declared field in order. Rules for a field run in
// their declared order and stop at the first failure; the failure message is
// recorded and evaluation moves on to the next field. Fields with no failing
// rule contribute no entry. Run always completes and returns a (possibly
// empty) map.
func (e *Engine) Run() Errors {
	errs := make(Errors)
	if e.spec == nil {
		return errs
	}

	for _, entry := range e.spec.entries {
		value := Absent
		if raw, ok := fieldpath.Resolve(entry.path, e.data); ok {
			value = Bound(raw)
		}

		for _, rule := range entry.rules {
			if rule == nil {
				continue
			}
			err := rule.Validate(value, e.catalog)
			if err == nil {
				continue
			}
			errs[entry.path] = err.Error()
			break
		}
	}
	return errs
}
