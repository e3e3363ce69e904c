package markup

import "strings"

// TagContext remembers the most recently opened tag of a single pass over
// a token stream.
//
// There is exactly one slot: no stack of open elements is kept and closing
// tags are not matched against their opening tags. A closing or self-closing
// tag leaves the slot unchanged, so text following `</code>` still sees
// `<code>` until another opening tag is seen.
//
// The zero value is an empty context, ready to use.
type TagContext struct {
	tag string
}

// Observe updates the context with a token. Only opening tags change the
// context; text, entities, stray characters and closing tags don't.
func (tc *TagContext) Observe(t Token) {
	if t.IsOpeningTag() {
		tc.tag = t.Raw
	}
}

// Tag returns the raw text of the remembered tag, or "".
func (tc *TagContext) Tag() string {
	return tc.tag
}

// IsCode is true if the remembered tag is exactly `<code>`. Tags with
// attributes, like `<code class="x">`, don't match.
func (tc *TagContext) IsCode() bool {
	return tc.tag == "<code>"
}

// IsLink is true if the remembered tag starts with `<a href`.
func (tc *TagContext) IsLink() bool {
	return strings.HasPrefix(tc.tag, "<a href")
}
