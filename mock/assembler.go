package mock

import "github.com/fwojciec/vbadoc"

var _ vbadoc.Assembler = (*Assembler)(nil)

// Assembler is a mock implementation of vbadoc.Assembler.
type Assembler struct {
	AssembleFn func(markup string, maxTokens int) string
}

func (a *Assembler) Assemble(markup string, maxTokens int) string {
	return a.AssembleFn(markup, maxTokens)
}
