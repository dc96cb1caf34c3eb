package extract

import (
	"strings"

	"substation/internal/override"
	"substation/internal/tags"
)

// Compose is the documented inverse of Extract: it rebuilds an AST from a
// resolved event-tag set and ordered segments. The first segment's block
// also carries the event-level tags. Values are re-rendered through the tag
// formatters since no raw substrings exist for synthesized tags.
func Compose(eventTags *TagSet, segments []Segment) []override.TextElement {
	var elements []override.TextElement

	if len(segments) == 0 {
		if block := buildBlock(eventTags, nil); block != nil {
			elements = append(elements, *block)
		}
		return elements
	}

	for i, segment := range segments {
		var block *override.OverrideBlock
		if i == 0 {
			block = buildBlock(eventTags, segment.Tags)
		} else {
			block = buildBlock(segment.Tags, nil)
		}
		if block != nil {
			elements = append(elements, *block)
		}
		elements = append(elements, splitText(segment.Text)...)
	}
	return elements
}

// buildBlock renders two tag sets into one override block, or nil when both
// are empty.
func buildBlock(first, second *TagSet) *override.OverrideBlock {
	var items []override.BlockItem
	for _, set := range []*TagSet{first, second} {
		if set == nil {
			continue
		}
		for _, name := range set.Names() {
			value, _ := set.Get(name)
			items = append(items, buildTag(name, value))
		}
	}
	if len(items) == 0 {
		return nil
	}
	return &override.OverrideBlock{Items: items}
}

func buildTag(name string, value any) override.OverrideTag {
	tag := override.OverrideTag{Name: name, Value: value}
	if def, ok := tags.Lookup(name); ok {
		tag.EventLevel = def.EventLevel
		tag.FirstWins = def.FirstWins
		tag.Function = def.Function
	}
	return tag
}

// splitText converts segment text back into plain runs and special-character
// nodes.
func splitText(text string) []override.TextElement {
	var elements []override.TextElement
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			elements = append(elements, override.PlainText{Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		if text[i] == '\\' && i+1 < len(text) {
			var kind override.SpecialKind
			matched := true
			switch text[i+1] {
			case 'N':
				kind = override.HardNewline
			case 'n':
				kind = override.SoftNewline
			case 'h':
				kind = override.HardSpace
			default:
				matched = false
			}
			if matched {
				flush()
				elements = append(elements, override.SpecialChar{Kind: kind})
				i += 2
				continue
			}
		}
		plain.WriteByte(text[i])
		i++
	}
	flush()
	return elements
}
