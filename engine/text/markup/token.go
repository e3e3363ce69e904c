package markup

import (
	"fmt"
	"strings"
)

// Kind classifies a token.
type Kind int8

// Token kinds. Everything but Text is markup and must be passed through
// unchanged.
const (
	Text   Kind = iota // character data, subject to transformation
	Tag                // `<` … `>`
	Entity             // `&name;` or `&#123;`
	Stray              // a lone `<` or `&` which does not start markup
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Tag:
		return "Tag"
	case Entity:
		return "Entity"
	case Stray:
		return "Stray"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a span of the input, either markup or text.
type Token struct {
	Kind Kind
	Raw  string
}

// IsMarkup is true for tokens which must not be transformed.
func (t Token) IsMarkup() bool {
	return t.Kind != Text
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Raw)
}

// IsOpeningTag is true for tag tokens which are neither closing tags (`</p>`)
// nor self-closing tags (`<br/>`).
func (t Token) IsOpeningTag() bool {
	return t.Kind == Tag && !strings.HasPrefix(t.Raw, "</") && !strings.HasSuffix(t.Raw, "/>")
}

// Detection selects which constructs count as markup.
type Detection int8

const (
	// Broad detection recognizes tags and character entities.
	Broad Detection = iota
	// Narrow detection recognizes tags only; entities remain text.
	Narrow
)

func (d Detection) String() string {
	if d == Narrow {
		return "narrow"
	}
	return "broad"
}

// Concat reassembles the raw text of a token sequence.
func Concat(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Raw)
	}
	return b.String()
}
