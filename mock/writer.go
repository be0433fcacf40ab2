package mock

import (
	"context"

	"github.com/fwojciec/vbadoc"
)

var _ vbadoc.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of vbadoc.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *vbadoc.DocumentationPage) (string, error)
}

func (w *PageWriter) WritePage(ctx context.Context, page *vbadoc.DocumentationPage) (string, error) {
	return w.WritePageFn(ctx, page)
}
