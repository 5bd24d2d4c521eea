package streamfmt

import (
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Report is a point-in-time capture of a registry's state: the fixed
// resolution order, the types with registered formatters, and the
// range-classification overrides. Entries are sorted so output is
// deterministic.
type Report struct {
	Precedence []string        `yaml:"precedence"`
	Formatters []string        `yaml:"formatters,omitempty"`
	RangeKinds []RangeOverride `yaml:"range_kinds,omitempty"`
}

// RangeOverride is one explicit range-classification entry.
type RangeOverride struct {
	Type string `yaml:"type"`
	Kind string `yaml:"kind"`
}

// Snapshot captures the registry's state for diagnostics: which types
// have registered formatters, which classifications are overridden, and
// the resolution order they are subject to.
func (r *Registry) Snapshot() Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep := Report{}
	for _, rule := range Precedence() {
		rep.Precedence = append(rep.Precedence, string(rule))
	}
	for t := range r.funcs {
		rep.Formatters = append(rep.Formatters, t.String())
	}
	sort.Strings(rep.Formatters)
	for t, k := range r.kinds {
		rep.RangeKinds = append(rep.RangeKinds, RangeOverride{Type: t.String(), Kind: k.String()})
	}
	sort.Slice(rep.RangeKinds, func(i, j int) bool {
		return rep.RangeKinds[i].Type < rep.RangeKinds[j].Type
	})
	return rep
}

// WriteYAML encodes the report to w.
func (rep Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
