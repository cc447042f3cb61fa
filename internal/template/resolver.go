// Package template implements the placeholder dictionary used to expand
// {placeholder} references in automaton edge labels.
//
// The dictionary is loaded from YAML. Nested mappings flatten to dotted
// keys, and a leaf may be a single string or a list of strings:
//
//	file_type: [file, folder]
//	apps:
//	  browser: "{apps.browser_name} browser"
//	  browser_name: [chrome, firefox]
//
// A substitution candidate may itself reference other placeholders;
// resolution expands these depth-first and fails on reference cycles.
package template

import (
	"fmt"
	"os"
	"regexp"

	"github.com/mitchellh/mapstructure"
	"github.com/voxkit/voxdoc/pkg/domain"
	"gopkg.in/yaml.v3"
)

// maxVariants bounds the number of strings one label can expand to. Labels
// with many placeholders explode combinatorially; the enumerator only ever
// keeps 16 phrases, so truncating here (deterministically, first-first)
// keeps expansion cheap without changing observable output.
const maxVariants = 64

var placeholderRe = regexp.MustCompile(`\{([A-Za-z0-9_.-]+)\}`)

// Resolver maps placeholder names to ordered substitution candidates.
// It is read-only after loading and safe for concurrent use.
type Resolver struct {
	entries map[string][]string
}

// New returns an empty resolver.
func New() *Resolver {
	return &Resolver{entries: make(map[string][]string)}
}

// Load reads a YAML dictionary file and returns a resolver over it.
func Load(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template dictionary %s: %w", path, err)
	}
	r := New()
	if err := r.MergeYAML(data); err != nil {
		return nil, fmt.Errorf("parse template dictionary %s: %w", path, err)
	}
	return r, nil
}

// MergeYAML parses a YAML dictionary and merges its entries into the
// resolver, later entries winning on key collisions. Must not be called
// once the resolver is shared across goroutines.
func (r *Resolver) MergeYAML(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	return r.flatten("", raw)
}

// Merge adds literal entries, later entries winning on key collisions.
func (r *Resolver) Merge(entries map[string][]string) {
	for k, v := range entries {
		r.entries[k] = v
	}
}

func (r *Resolver) flatten(prefix string, node map[string]any) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			if err := r.flatten(key, child); err != nil {
				return err
			}
			continue
		}
		// Leaf: a string or a list of strings. Weakly typed decoding folds
		// a single scalar into a one-element slice.
		var candidates []string
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &candidates,
		})
		if err != nil {
			return err
		}
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		r.entries[key] = candidates
	}
	return nil
}

// Resolve returns the fully expanded substitution candidates for name.
// An unknown name yields *domain.UnresolvedPlaceholderError; a reference
// cycle yields *domain.TemplateCycleError.
func (r *Resolver) Resolve(name string) ([]string, error) {
	return r.resolve(name, make(map[string]bool), nil)
}

// Expand substitutes every {placeholder} in s, producing one string per
// combination of candidates: first candidate first, depth-first over the
// remaining placeholders. A string with no placeholders expands to itself.
func (r *Resolver) Expand(s string) ([]string, error) {
	return r.expand(s, make(map[string]bool), nil)
}

func (r *Resolver) resolve(name string, visiting map[string]bool, chain []string) ([]string, error) {
	if visiting[name] {
		cycle := append(append([]string{}, chain...), name)
		return nil, &domain.TemplateCycleError{Chain: cycle}
	}
	candidates, ok := r.entries[name]
	if !ok {
		return nil, &domain.UnresolvedPlaceholderError{Placeholder: name}
	}

	visiting[name] = true
	defer delete(visiting, name)
	chain = append(chain, name)

	var out []string
	for _, c := range candidates {
		expanded, err := r.expand(c, visiting, chain)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
		if len(out) >= maxVariants {
			return out[:maxVariants], nil
		}
	}
	return out, nil
}

func (r *Resolver) expand(s string, visiting map[string]bool, chain []string) ([]string, error) {
	loc := placeholderRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return []string{s}, nil
	}

	name := s[loc[2]:loc[3]]
	candidates, err := r.resolve(name, visiting, chain)
	if err != nil {
		return nil, err
	}

	prefix, rest := s[:loc[0]], s[loc[1]:]
	tails, err := r.expand(rest, visiting, chain)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, c := range candidates {
		for _, tail := range tails {
			out = append(out, prefix+c+tail)
			if len(out) >= maxVariants {
				return out, nil
			}
		}
	}
	return out, nil
}
