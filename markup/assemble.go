package markup

import (
	"fmt"
	"strings"

	"github.com/fwojciec/vbadoc"
)

// Headings emitted by the Assembler.
const (
	DocumentTitle       = "# VBA Documentation"
	CodeExamplesHeading = "## Code Examples"
)

// Ensure Assembler implements vbadoc.Assembler at compile time.
var _ vbadoc.Assembler = (*Assembler)(nil)

// Assembler formats scanned markup as a Markdown document: a title with one
// sub-heading per header, the prose, then each code block fenced as VBA.
type Assembler struct {
	extract func(string) *vbadoc.ExtractedDocument
}

// NewAssembler creates a new Assembler.
func NewAssembler() *Assembler {
	return &Assembler{extract: Extract}
}

// Assemble implements vbadoc.Assembler.
func (a *Assembler) Assemble(markup string, maxTokens int) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = markup
		}
	}()

	doc := a.extract(markup)

	var sb strings.Builder

	if len(doc.Headers) > 0 {
		sb.WriteString(DocumentTitle + "\n\n")
		for _, header := range doc.Headers {
			fmt.Fprintf(&sb, "## %s\n\n", header)
		}
	}

	if doc.Text != "" {
		sb.WriteString(strings.TrimSpace(doc.Text) + "\n\n")
	}

	if len(doc.CodeBlocks) > 0 {
		sb.WriteString(CodeExamplesHeading + "\n\n")
		for i, block := range doc.CodeBlocks {
			fmt.Fprintf(&sb, "### Example %d\n\n", i+1)
			sb.WriteString("```vba\n")
			sb.WriteString(strings.TrimSpace(block) + "\n")
			sb.WriteString("```\n\n")
		}
	}

	return vbadoc.TruncateTokens(sb.String(), maxTokens)
}
