package markup

import "strings"

// HasMarkup reports whether s contains anything detection d treats as
// markup. With Broad detection this is any `<` or a well-formed entity,
// with Narrow detection any `<`.
//
// A lone `&` does not count as markup, so a string like "Q&A" is a single
// run of text under both detections.
func HasMarkup(s string, d Detection) bool {
	if strings.IndexByte(s, '<') >= 0 {
		return true
	}
	if d == Narrow {
		return false
	}
	for i := strings.IndexByte(s, '&'); i >= 0; {
		if entityLength(s[i:]) > 0 {
			return true
		}
		j := strings.IndexByte(s[i+1:], '&')
		if j < 0 {
			break
		}
		i += j + 1
	}
	return false
}

// Tokenize splits s into tokens in a single left-to-right pass.
//
// If s contains no markup at all (see HasMarkup), the result is a single
// Text token spanning s. Otherwise tags and, for Broad detection, entities
// become markup tokens, maximal runs of other characters become Text tokens,
// and every `<` or `&` which does not start markup becomes a Stray token of
// its own. Stray tokens are not merged into the surrounding text.
//
// Tokenize never fails; the empty string yields no tokens.
func Tokenize(s string, d Detection) []Token {
	if s == "" {
		return nil
	}
	if !HasMarkup(s, d) {
		return []Token{{Kind: Text, Raw: s}}
	}
	tokens := make([]Token, 0, 8)
	start := 0 // start of pending text run
	for i := 0; i < len(s); {
		c := s[i]
		if c != '<' && (c != '&' || d == Narrow) {
			i++
			continue
		}
		var n int
		var kind Kind
		if c == '<' {
			n, kind = tagLength(s[i:]), Tag
		} else {
			n, kind = entityLength(s[i:]), Entity
		}
		if n == 0 {
			n, kind = 1, Stray
		}
		if start < i {
			tokens = append(tokens, Token{Kind: Text, Raw: s[start:i]})
		}
		tokens = append(tokens, Token{Kind: kind, Raw: s[i : i+n]})
		i += n
		start = i
	}
	if start < len(s) {
		tokens = append(tokens, Token{Kind: Text, Raw: s[start:]})
	}
	tracer().Debugf("%s detection split %q into %d tokens", d, s, len(tokens))
	return tokens
}

// tagLength returns the length of the tag at the start of s, or 0.
// A tag is `<`, at least one byte other than `>`, and the first `>`
// following it.
func tagLength(s string) int {
	j := strings.IndexByte(s[1:], '>')
	if j <= 0 {
		return 0
	}
	return j + 2
}

// entityLength returns the length of the entity at the start of s, or 0.
// Entities are `&`, an optional `#`, one or more lower-case ASCII letters
// or digits, and `;`.
func entityLength(s string) int {
	i := 1
	if i < len(s) && s[i] == '#' {
		i++
	}
	body := i
	for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || s[i] >= '0' && s[i] <= '9') {
		i++
	}
	if i == body || i >= len(s) || s[i] != ';' {
		return 0
	}
	return i + 1
}
