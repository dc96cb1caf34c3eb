package override

import (
	"strings"

	"substation/internal/tags"
)

// Parse converts one event's text into its AST. Parsing never fails:
// unrecognized syntax degrades to PlainText or Comment nodes that render
// back byte-exact.
func Parse(text string) []TextElement {
	var elements []TextElement
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			elements = append(elements, PlainText{Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '{':
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				// Unterminated block: keep the rest as visible text.
				plain.WriteString(text[i:])
				i = len(text)
				continue
			}
			flush()
			body := text[i+1 : i+1+end]
			elements = append(elements, OverrideBlock{Items: parseBlock(body)})
			i += end + 2
		case c == '\\' && i+1 < len(text):
			switch text[i+1] {
			case 'N':
				flush()
				elements = append(elements, SpecialChar{Kind: HardNewline})
				i += 2
			case 'n':
				flush()
				elements = append(elements, SpecialChar{Kind: SoftNewline})
				i += 2
			case 'h':
				flush()
				elements = append(elements, SpecialChar{Kind: HardSpace})
				i += 2
			default:
				plain.WriteByte(c)
				i++
			}
		default:
			plain.WriteByte(c)
			i++
		}
	}
	flush()
	return elements
}

// parseBlock scans the inside of one {...} group.
func parseBlock(body string) []BlockItem {
	var items []BlockItem

	for i := 0; i < len(body); {
		if body[i] != '\\' {
			// Free text up to the next tag is a comment.
			end := strings.IndexByte(body[i:], '\\')
			if end < 0 {
				end = len(body) - i
			}
			items = append(items, Comment{Text: body[i : i+end]})
			i += end
			continue
		}

		tag, consumed := matchTag(body[i:])
		if consumed == 0 {
			// Backslash run matching no known tag: comment until the next
			// backslash.
			end := strings.IndexByte(body[i+1:], '\\')
			if end < 0 {
				end = len(body) - i - 1
			}
			items = append(items, Comment{Text: body[i : i+1+end]})
			i += 1 + end
			continue
		}
		items = append(items, tag)
		i += consumed
	}
	return items
}

// matchTag tries to read one override tag at the start of s (s begins with a
// backslash). It returns the parsed tag and the number of bytes consumed, or
// zero when nothing matched.
func matchTag(s string) (OverrideTag, int) {
	rest := s[1:]
	for _, name := range tags.Names() {
		if !strings.HasPrefix(rest, name) {
			continue
		}
		def, _ := tags.Lookup(name)

		if def.Function {
			argStart := 1 + len(name)
			if argStart >= len(s) || s[argStart] != '(' {
				continue
			}
			argEnd := matchParen(s, argStart)
			var args, raw string
			if argEnd > len(s) {
				// Unclosed call: the whole remainder is the raw span.
				args = s[argStart+1:]
				raw = s
				argEnd = len(s)
			} else {
				args = s[argStart+1 : argEnd-1]
				raw = s[:argEnd]
			}
			value, err := def.Parse(args)
			if err != nil {
				return OverrideTag{}, 0
			}
			return OverrideTag{
				Name:       name,
				Value:      value,
				Raw:        raw,
				EventLevel: def.EventLevel,
				FirstWins:  def.FirstWins,
				Function:   true,
			}, argEnd
		}

		// Non-function tags read to the next backslash or block end.
		valueEnd := strings.IndexByte(rest[len(name):], '\\')
		if valueEnd < 0 {
			valueEnd = len(rest) - len(name)
		}
		rawLen := 1 + len(name) + valueEnd
		value, err := def.Parse(rest[len(name) : len(name)+valueEnd])
		if err != nil {
			// Known name with a malformed value: keep trying shorter names
			// before giving up (e.g. \frx12 failing would not block \fr).
			continue
		}
		return OverrideTag{
			Name:       name,
			Value:      value,
			Raw:        s[:rawLen],
			EventLevel: def.EventLevel,
			FirstWins:  def.FirstWins,
		}, rawLen
	}
	return OverrideTag{}, 0
}

// matchParen returns the index one past the parenthesis that closes the one
// at position open, counting nested pairs. When the call is never closed the
// result is past the end of s.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(s) + 1
}
