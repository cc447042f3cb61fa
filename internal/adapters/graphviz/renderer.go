// Package graphviz renders automaton graph files to images by shelling
// out to the Graphviz dot tool.
package graphviz

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/voxkit/voxdoc/pkg/domain"
)

// Renderer implements ports.ImageRenderer using the dot binary.
type Renderer struct {
	// Command is the renderer binary, "dot" by default. Overridable for
	// alternative layout engines (neato, fdp) and for tests.
	Command string
	// Format is the output format passed as -T, "png" by default.
	Format string
}

// New returns a Renderer with the stock dot/png configuration.
func New() *Renderer {
	return &Renderer{Command: "dot", Format: "png"}
}

// Render converts graphPath into an image at imagePath. The caller is
// expected to bound the call with a context deadline; dot can hang on
// pathological graphs.
//
// Failures come back as *domain.RenderError with the kind set so callers
// can tell a missing tool from malformed input or a timeout.
func (r *Renderer) Render(ctx context.Context, graphPath, imagePath string) error {
	cmd := exec.CommandContext(ctx, r.Command, "-T"+r.Format, "-o", imagePath, graphPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	renderErr := &domain.RenderError{
		Graph:  graphPath,
		Stderr: strings.TrimSpace(stderr.String()),
		Err:    err,
	}
	switch {
	case errors.Is(err, exec.ErrNotFound):
		renderErr.Kind = domain.RenderToolMissing
	case ctx.Err() != nil:
		renderErr.Kind = domain.RenderTimeout
		renderErr.Err = ctx.Err()
	default:
		renderErr.Kind = domain.RenderBadInput
	}
	return renderErr
}
