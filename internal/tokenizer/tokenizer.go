// Package tokenizer lexes text into lowercase ASCII tokens with their
// byte and word offsets. The same tokenizer is used for documents and
// for query phrases so that lookups are symmetric: a word discovered
// while indexing a file and the same word typed into a query always
// normalize to an identical string.
package tokenizer

import "strings"

// Token is one maximal run of token characters, lowercased.
type Token struct {
	Text string
	// CharOffset is the byte index of the token's first byte in the
	// original text.
	CharOffset int
	// WordOffset is the token's 0-based rank in emission order.
	WordOffset int
}

// isTokenChar reports whether b is an ASCII alphanumeric or underscore.
func isTokenChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '_'
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Tokenize lexes text into an ordered sequence of (token, char_offset,
// word_offset) triples. A token is a maximal run of token characters,
// emitted lowercased. Empty text yields an empty, non-nil slice.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text)/4)

	var b strings.Builder
	start := -1
	word := 0

	flush := func() {
		if b.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{
			Text:       b.String(),
			CharOffset: start,
			WordOffset: word,
		})
		word++
		b.Reset()
		start = -1
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if isTokenChar(c) {
			if b.Len() == 0 {
				start = i
			}
			b.WriteByte(toLower(c))
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// Words returns just the lowercased token text, in emission order.
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}
