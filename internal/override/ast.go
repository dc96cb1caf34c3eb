package override

// TextElement is a node of parsed dialogue text. The set is closed:
// PlainText, SpecialChar, and OverrideBlock.
type TextElement interface {
	textElement()
}

// PlainText is a run of visible characters.
type PlainText struct {
	Text string
}

func (PlainText) textElement() {}

// SpecialKind enumerates the escaped special characters.
type SpecialKind int

const (
	HardNewline SpecialKind = iota // \N
	SoftNewline                    // \n
	HardSpace                      // \h
)

// SpecialChar is one of the \N, \n, \h escapes outside a block.
type SpecialChar struct {
	Kind SpecialKind
}

func (SpecialChar) textElement() {}

// Escape returns the source form of the special character.
func (s SpecialChar) Escape() string {
	switch s.Kind {
	case SoftNewline:
		return `\n`
	case HardSpace:
		return `\h`
	default:
		return `\N`
	}
}

// OverrideBlock is one {...} group holding tags and comments in order.
type OverrideBlock struct {
	Items []BlockItem
}

func (OverrideBlock) textElement() {}

// BlockItem is a node inside an override block: OverrideTag or Comment.
type BlockItem interface {
	blockItem()
}

// OverrideTag is one recognized tag. Raw holds the exact source substring
// (including the leading backslash); the renderer prefers it, so callers
// that mutate Value must clear Raw to make the change visible.
type OverrideTag struct {
	Name       string
	Value      any
	Raw        string
	EventLevel bool
	FirstWins  bool
	Function   bool
}

func (OverrideTag) blockItem() {}

// Comment is in-block text that matched no known tag, preserved verbatim.
type Comment struct {
	Text string
}

func (Comment) blockItem() {}
