package voxdoc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/voxkit/voxdoc/internal/dot"
	"github.com/voxkit/voxdoc/internal/logging"
	"github.com/voxkit/voxdoc/internal/pipeline"
	"github.com/voxkit/voxdoc/internal/template"
	"github.com/voxkit/voxdoc/pkg/domain"
	"github.com/voxkit/voxdoc/pkg/ports"
)

// Version is reported by "voxdoc version".
const Version = "0.3.0"

// DefaultTemplatesFile is the template dictionary looked up under the
// repository root when no explicit dictionary is configured.
const DefaultTemplatesFile = "templates.yaml"

// Engine is the high-level entry point for the voxdoc library.
// It wraps the internal pipeline and provides a simplified API for
// consumers.
type Engine struct {
	root          string
	templatesPath string
	entries       map[string][]string
	loader        ports.AutomatonLoader
	renderer      ports.ImageRenderer
	localizer     ports.Localizer
	logger        *slog.Logger
	maxPhrases    int
	parallelism   int
	renderTimeout time.Duration
	registerer    prometheus.Registerer

	builder *pipeline.Builder
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRenderer injects a custom image renderer, bypassing the default
// Graphviz adapter.
func WithRenderer(r ports.ImageRenderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithLoader injects a custom automaton loader, bypassing the default DOT
// parser.
func WithLoader(l ports.AutomatonLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLocalizer sets the localization provider used by the assembler.
func WithLocalizer(loc ports.Localizer) Option {
	return func(e *Engine) {
		e.localizer = loc
	}
}

// WithTemplates sets the template dictionary file. Without this option the
// engine looks for DefaultTemplatesFile under the repository root.
func WithTemplates(path string) Option {
	return func(e *Engine) {
		e.templatesPath = path
	}
}

// WithTemplateEntries merges literal dictionary entries on top of the
// loaded template file. Mostly useful in tests.
func WithTemplateEntries(entries map[string][]string) Option {
	return func(e *Engine) {
		e.entries = entries
	}
}

// WithMaxPhrases overrides the documentation sample size per automaton
// (default 16).
func WithMaxPhrases(n int) Option {
	return func(e *Engine) {
		e.maxPhrases = n
	}
}

// WithParallelism bounds how many modules are processed concurrently.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// WithRenderTimeout bounds a single external renderer invocation.
func WithRenderTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.renderTimeout = d
	}
}

// WithMetrics registers the build counters on reg so a host can expose
// them. The CLI registers on the default registerer for "voxdoc serve".
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registerer = reg
	}
}

// New initializes an Engine over a voice-command repository root.
func New(root string, opts ...Option) (*Engine, error) {
	if root == "" {
		return nil, fmt.Errorf("repository root is required")
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	e := &Engine{root: absRoot}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}

	resolver, err := e.loadTemplates()
	if err != nil {
		return nil, err
	}

	var metrics *pipeline.Metrics
	if e.registerer != nil {
		metrics = pipeline.NewMetrics(e.registerer)
	}

	e.builder = pipeline.New(pipeline.Config{
		Root:          e.root,
		Resolver:      resolver,
		Loader:        e.loader,
		Renderer:      e.renderer,
		Localizer:     e.localizer,
		Logger:        e.logger,
		MaxPhrases:    e.maxPhrases,
		Parallelism:   e.parallelism,
		RenderTimeout: e.renderTimeout,
		Metrics:       metrics,
	})
	return e, nil
}

func (e *Engine) loadTemplates() (*template.Resolver, error) {
	path := e.templatesPath
	if path == "" {
		candidate := filepath.Join(e.root, DefaultTemplatesFile)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	var resolver *template.Resolver
	if path != "" {
		r, err := template.Load(path)
		if err != nil {
			return nil, err
		}
		resolver = r
	} else {
		resolver = template.New()
	}
	if e.entries != nil {
		resolver.Merge(e.entries)
	}
	return resolver, nil
}

// Build runs one documentation build over the repository. Failures scoped
// to a single automaton, command, or module are collected in the report;
// the returned error is reserved for an unusable repository root.
func (e *Engine) Build(ctx context.Context) (*domain.Report, error) {
	return e.builder.Build(ctx)
}

// Inspect parses a single automaton file. Used by introspection and
// visualization tooling (e.g. "voxdoc graph").
func (e *Engine) Inspect(path string) (*domain.Automaton, error) {
	if e.loader != nil {
		return e.loader.Load(path)
	}
	return dot.ParseFile(path)
}
