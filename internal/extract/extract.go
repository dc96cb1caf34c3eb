package extract

import (
	"errors"
	"fmt"
	"strings"

	"substation/internal/override"
	"substation/internal/tags"
)

// ErrTagConflict marks a duplicate or mutually-exclusive tag found in strict
// mode.
var ErrTagConflict = errors.New("tag conflict")

// Options controls extraction behaviour.
type Options struct {
	// Strict raises ErrTagConflict on duplicate or mutually-exclusive tags
	// instead of resolving them by policy.
	Strict bool
}

// Segment is a run of visible text and the inline tags in effect for it.
// Special characters keep their escape form inside Text.
type Segment struct {
	Tags *TagSet
	Text string
}

// Result is the flat shape of one event's text.
type Result struct {
	EventTags *TagSet
	Segments  []Segment
}

// Extract runs the single forward pass over an event AST.
func Extract(elements []override.TextElement, opts Options) (Result, error) {
	eventTags := NewTagSet()
	pending := NewTagSet()
	var text strings.Builder
	var segments []Segment

	flush := func() {
		if text.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Tags: pending.Clone(), Text: text.String()})
		text.Reset()
	}

	for _, element := range elements {
		switch node := element.(type) {
		case override.PlainText:
			text.WriteString(node.Text)
		case override.SpecialChar:
			text.WriteString(node.Escape())
		case override.OverrideBlock:
			flush()
			for _, item := range node.Items {
				tag, ok := item.(override.OverrideTag)
				if !ok {
					// Comments carry no styling state.
					continue
				}
				scope := pending
				if tag.EventLevel {
					scope = eventTags
				}
				if err := applyTag(scope, tag, opts.Strict); err != nil {
					return Result{}, err
				}
			}
		}
	}
	flush()

	return Result{EventTags: eventTags, Segments: segments}, nil
}

// applyTag merges one tag into a scope under the first-wins/last-wins and
// mutual-exclusion rules.
func applyTag(scope *TagSet, tag override.OverrideTag, strict bool) error {
	if _, exists := scope.Get(tag.Name); exists {
		if strict {
			return fmt.Errorf(`%w: duplicate tag \%s`, ErrTagConflict, tag.Name)
		}
		if !tag.FirstWins {
			scope.Set(tag.Name, tag.Value)
		}
		return nil
	}

	if def, ok := tags.Lookup(tag.Name); ok {
		for _, other := range def.Excludes {
			if _, exists := scope.Get(other); !exists {
				continue
			}
			if strict {
				return fmt.Errorf(`%w: \%s conflicts with earlier \%s`, ErrTagConflict, tag.Name, other)
			}
			if tag.FirstWins {
				// The earlier exclusive sibling keeps the slot.
				return nil
			}
			scope.Delete(other)
		}
	}

	scope.Set(tag.Name, tag.Value)
	return nil
}
