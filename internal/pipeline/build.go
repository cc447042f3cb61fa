// Package pipeline orchestrates one documentation build: discovery,
// per-command phrase enumeration, module composition, image rendering, and
// Markdown assembly.
//
// Modules are independent units of work and are processed concurrently
// with bounded parallelism; a module's dispatch automaton is only ever
// touched by its own task, which gives the single-writer discipline the
// in-place composition requires. Within a command, languages are
// enumerated concurrently; the module's own README is always built after
// its commands because it depends on their output.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/voxkit/voxdoc/internal/adapters/graphviz"
	"github.com/voxkit/voxdoc/internal/assemble"
	"github.com/voxkit/voxdoc/internal/compose"
	"github.com/voxkit/voxdoc/internal/discover"
	"github.com/voxkit/voxdoc/internal/dot"
	"github.com/voxkit/voxdoc/internal/enumerate"
	"github.com/voxkit/voxdoc/internal/logging"
	"github.com/voxkit/voxdoc/internal/template"
	"github.com/voxkit/voxdoc/pkg/domain"
	"github.com/voxkit/voxdoc/pkg/ports"
)

const (
	// DefaultParallelism bounds how many modules build at once.
	DefaultParallelism = 4
	// DefaultRenderTimeout bounds one external renderer invocation.
	DefaultRenderTimeout = 30 * time.Second
)

// Config carries everything a build needs. Zero-value fields fall back to
// the stock implementations.
type Config struct {
	Root          string
	Resolver      *template.Resolver
	Loader        ports.AutomatonLoader
	Renderer      ports.ImageRenderer
	Localizer     ports.Localizer
	Logger        *slog.Logger
	MaxPhrases    int
	Parallelism   int
	RenderTimeout time.Duration
	Metrics       *Metrics
}

// Builder runs documentation builds. One Builder may run several builds,
// but not concurrently against the same root (module automata are
// rewritten in place).
type Builder struct {
	cfg  Config
	enum *enumerate.Enumerator
}

// New returns a Builder with defaults applied.
func New(cfg Config) *Builder {
	if cfg.Resolver == nil {
		cfg.Resolver = template.New()
	}
	if cfg.Loader == nil {
		cfg.Loader = dot.NewLoader()
	}
	if cfg.Renderer == nil {
		cfg.Renderer = graphviz.New()
	}
	if cfg.Localizer == nil {
		cfg.Localizer = assemble.NewLocalizer()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = DefaultParallelism
	}
	if cfg.RenderTimeout <= 0 {
		cfg.RenderTimeout = DefaultRenderTimeout
	}
	return &Builder{
		cfg:  cfg,
		enum: enumerate.New(cfg.Resolver, cfg.MaxPhrases),
	}
}

// Build documents every module under the configured root. Failures scoped
// to a single automaton, command, or module are collected in the report;
// only an unreadable root aborts the build itself.
func (b *Builder) Build(ctx context.Context) (*domain.Report, error) {
	modules, err := discover.Modules(b.cfg.Root)
	if err != nil {
		return nil, err
	}

	rep := &report{}
	g := new(errgroup.Group)
	g.SetLimit(b.cfg.Parallelism)
	for _, mod := range modules {
		mod := mod
		g.Go(func() error {
			b.buildModule(ctx, mod, rep)
			return nil
		})
	}
	// Tasks record failures in the report instead of returning them, so a
	// failing module never cancels its siblings.
	_ = g.Wait()

	return &rep.r, nil
}

// report is the mutex-guarded accumulator behind domain.Report.
type report struct {
	mu sync.Mutex
	r  domain.Report
}

func (rp *report) fail(module, command, lang string, err error) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.r.Failures = append(rp.r.Failures, domain.Failure{
		Module: module, Command: command, Lang: lang, Err: err,
	})
}

func (rp *report) done(modules, commands, phrases int) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.r.Modules += modules
	rp.r.Commands += commands
	rp.r.Phrases += phrases
}

func (b *Builder) buildModule(ctx context.Context, mod domain.Module, rep *report) {
	logger := b.cfg.Logger.With("module", mod.Name)

	// Commands first: module composition and documentation depend on the
	// per-command results.
	var commandDocs []string
	for _, cmd := range mod.Commands {
		if ctx.Err() != nil {
			rep.fail(mod.Name, cmd.Name, "", ctx.Err())
			continue
		}
		md, ok := b.buildCommand(ctx, mod, cmd, rep)
		if ok {
			commandDocs = append(commandDocs, md)
			rep.done(0, 1, 0)
		}
	}

	// Rewrite the generated region of each dispatch automaton, then render
	// the rewritten graphs.
	names := mod.CommandNames()
	for _, lf := range mod.Automata {
		switch err := compose.ComposeFile(lf.Path, names); {
		case err == nil:
			b.cfg.Metrics.composed()
		case errors.Is(err, domain.ErrMarkersNotFound):
			logger.Warn("composition markers missing, automaton left unchanged", "file", lf.Path)
		default:
			rep.fail(mod.Name, "", lf.Lang, err)
			continue
		}
		b.render(ctx, lf, logger, func(err error) { rep.fail(mod.Name, "", lf.Lang, err) })
	}

	primary, ok := primaryAutomaton(mod.Automata)
	if !ok {
		logger.Warn("module has no dispatch automaton, skipping module README")
		return
	}
	a, err := b.cfg.Loader.Load(primary.Path)
	if err != nil {
		rep.fail(mod.Name, "", primary.Lang, err)
		return
	}

	md := assemble.Module(assemble.ModuleDoc{
		Name:      mod.Name,
		Title:     a.Title,
		Desc:      a.Desc,
		ImagePath: filepath.Base(primary.ImagePath),
		Commands:  commandDocs,
	}, b.cfg.Localizer)
	if err := os.WriteFile(mod.ReadmePath, []byte(md), 0644); err != nil {
		rep.fail(mod.Name, "", "", fmt.Errorf("write module README: %w", err))
		return
	}

	rep.done(1, 0, 0)
	logger.Info("module documented", "commands", len(commandDocs))
}

// langResult is the per-language outcome inside one command.
type langResult struct {
	automaton *domain.Automaton
	section   assemble.LanguageSection
	loadErr   error
	enumErr   error
	renderErr error
}

// buildCommand documents one command. It returns the command's Markdown
// and whether the command completed; a load failure aborts the command
// (sibling commands continue), while an enumeration failure drops only the
// affected language section.
func (b *Builder) buildCommand(ctx context.Context, mod domain.Module, cmd domain.Command, rep *report) (string, bool) {
	logger := b.cfg.Logger.With("module", mod.Name, "command", cmd.Name)

	results := make([]langResult, len(cmd.Automata))
	g := new(errgroup.Group)
	for i, lf := range cmd.Automata {
		i, lf := i, lf
		g.Go(func() error {
			results[i] = b.buildLanguage(ctx, lf)
			return nil
		})
	}
	_ = g.Wait() // outcomes land in results

	var (
		sections     []assemble.LanguageSection
		titleA       *domain.Automaton
		phrasesTotal int
	)
	for i, res := range results {
		lf := cmd.Automata[i]
		if res.loadErr != nil {
			rep.fail(mod.Name, cmd.Name, lf.Lang, res.loadErr)
			logger.Error("automaton failed to load, command skipped", "lang", lf.Lang, "err", res.loadErr)
			return "", false
		}
		// Title and description come from the loaded automaton even when its
		// enumeration fails; only its phrase section is dropped.
		if res.automaton != nil && (lf.Lang == "en" || titleA == nil) {
			titleA = res.automaton
		}
		if res.enumErr != nil {
			rep.fail(mod.Name, cmd.Name, lf.Lang, res.enumErr)
			logger.Error("enumeration failed, language section dropped", "lang", lf.Lang, "err", res.enumErr)
			continue
		}
		if res.renderErr != nil {
			rep.fail(mod.Name, cmd.Name, lf.Lang, res.renderErr)
		}
		phrasesTotal += len(res.section.Phrases)
		sections = append(sections, res.section)
	}

	doc := assemble.CommandDoc{Name: cmd.Name, Sections: sections}
	if titleA != nil {
		doc.Title = titleA.Title
		doc.Desc = titleA.Desc
	}
	if cmd.SourcePath != "" {
		src, err := os.ReadFile(cmd.SourcePath)
		if err != nil {
			logger.Warn("implementation source unreadable, excerpt omitted", "err", err)
		} else {
			doc.Source = string(src)
		}
	}

	md := assemble.Command(doc, b.cfg.Localizer)
	if err := os.WriteFile(cmd.ReadmePath, []byte(md), 0644); err != nil {
		rep.fail(mod.Name, cmd.Name, "", fmt.Errorf("write command README: %w", err))
		return "", false
	}

	rep.done(0, 0, phrasesTotal)
	return md, true
}

func (b *Builder) buildLanguage(ctx context.Context, lf domain.LangFile) langResult {
	a, err := b.cfg.Loader.Load(lf.Path)
	if err != nil {
		return langResult{loadErr: err}
	}
	b.cfg.Metrics.automatonParsed()

	phrases, err := b.enum.Enumerate(a)
	if err != nil {
		return langResult{automaton: a, enumErr: err}
	}
	b.cfg.Metrics.phrases(len(phrases))

	logger := b.cfg.Logger.With("automaton", lf.Path)
	var renderErr error
	b.render(ctx, lf, logger, func(err error) { renderErr = err })

	return langResult{
		automaton: a,
		renderErr: renderErr,
		section: assemble.LanguageSection{
			Lang:      lf.Lang,
			LangName:  a.LangName,
			ImagePath: filepath.Base(lf.ImagePath),
			Phrases:   phrases,
		},
	}
}

// render invokes the external renderer under the configured timeout.
// Failures are logged and reported but never abort the owning unit:
// documentation keeps the best-effort image reference (the image may be
// stale or absent).
func (b *Builder) render(ctx context.Context, lf domain.LangFile, logger *slog.Logger, onFail func(error)) {
	rctx, cancel := context.WithTimeout(ctx, b.cfg.RenderTimeout)
	defer cancel()

	err := b.cfg.Renderer.Render(rctx, lf.Path, lf.ImagePath)
	if err == nil {
		return
	}

	kind := "unknown"
	var re *domain.RenderError
	if errors.As(err, &re) {
		kind = re.Kind.String()
	}
	b.cfg.Metrics.renderFailed(kind)
	logger.Warn("image rendering failed, keeping best-effort reference",
		"file", lf.Path, "kind", kind, "err", err)
	if onFail != nil {
		onFail(err)
	}
}

// primaryAutomaton picks the automaton that supplies a module's title and
// description: English when present, otherwise the first by locale.
func primaryAutomaton(files []domain.LangFile) (domain.LangFile, bool) {
	for _, lf := range files {
		if lf.Lang == "en" {
			return lf, true
		}
	}
	if len(files) > 0 {
		return files[0], true
	}
	return domain.LangFile{}, false
}
