package ports

import "context"

// ImageRenderer converts a graph description file into an image file.
// Implementations are expected to honor ctx cancellation and deadlines;
// the pipeline wraps every call with a timeout because rendering shells out
// to an external tool that may hang.
//
// Failures are reported as *domain.RenderError so callers can distinguish
// a missing tool from malformed input or a timeout.
type ImageRenderer interface {
	Render(ctx context.Context, graphPath, imagePath string) error
}
