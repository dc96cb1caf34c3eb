package override

import (
	"strings"

	"substation/internal/tags"
)

// Render converts an AST back to event text. Elements parsed from source
// re-emit their captured raw substrings, making render(parse(x)) == x for
// any input built from recognized syntax.
func Render(elements []TextElement) string {
	var b strings.Builder
	for _, element := range elements {
		switch node := element.(type) {
		case PlainText:
			b.WriteString(node.Text)
		case SpecialChar:
			b.WriteString(node.Escape())
		case OverrideBlock:
			b.WriteByte('{')
			for _, item := range node.Items {
				b.WriteString(renderItem(item))
			}
			b.WriteByte('}')
		}
	}
	return b.String()
}

func renderItem(item BlockItem) string {
	switch node := item.(type) {
	case OverrideTag:
		if node.Raw != "" {
			return node.Raw
		}
		formatted, err := tags.Format(node.Name, node.Value)
		if err != nil {
			// Synthesized tag with a value its formatter rejects; rendering
			// never fails, so emit the bare name.
			return `\` + node.Name
		}
		return `\` + node.Name + formatted
	case Comment:
		return node.Text
	}
	return ""
}
