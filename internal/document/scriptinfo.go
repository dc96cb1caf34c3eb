package document

import (
	"fmt"
	"strconv"
	"strings"

	"substation/internal/fields"
)

// InfoPair is one Script Info line. Key keeps the source casing and raw
// keeps the original value text so an untouched pair re-emits byte-exact.
// Comments are the ';' lines that preceded the pair.
type InfoPair struct {
	Key      string
	Value    any
	Comments []string

	raw string
}

// Raw returns the value as it will be written: the original text when the
// pair is untouched, otherwise a formatted rendering of the typed value.
func (p *InfoPair) Raw() string {
	if p.raw != "" || p.Value == nil {
		return p.raw
	}
	return formatInfoValue(p.Value)
}

// ScriptInfo is the ordered, casing-preserving metadata block. Known keys
// carry typed values; everything else stays a string.
type ScriptInfo struct {
	pairs    []*InfoPair
	index    map[string]*InfoPair
	trailing []string
	stray    []string
}

// NewScriptInfo returns an empty block.
func NewScriptInfo() *ScriptInfo {
	return &ScriptInfo{index: map[string]*InfoPair{}}
}

// Pairs returns the entries in document order.
func (si *ScriptInfo) Pairs() []*InfoPair {
	return si.pairs
}

// Get returns the typed value stored under any casing of key.
func (si *ScriptInfo) Get(key string) (any, bool) {
	pair, ok := si.index[fields.Normalize(key)]
	if !ok {
		return nil, false
	}
	return pair.Value, true
}

// GetString returns the value rendered as a string, or "" when absent.
func (si *ScriptInfo) GetString(key string) string {
	pair, ok := si.index[fields.Normalize(key)]
	if !ok {
		return ""
	}
	if s, ok := pair.Value.(string); ok {
		return s
	}
	return pair.Raw()
}

// GetInt returns an integer value, or def when absent or untyped.
func (si *ScriptInfo) GetInt(key string, def int) int {
	if v, ok := si.Get(key); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return def
}

// Set stores a typed value, keeping the position and casing of an existing
// pair and appending a new one otherwise.
func (si *ScriptInfo) Set(key string, value any) {
	norm := fields.Normalize(key)
	if pair, ok := si.index[norm]; ok {
		pair.Value = value
		pair.raw = ""
		return
	}
	pair := &InfoPair{Key: key, Value: value}
	si.pairs = append(si.pairs, pair)
	si.index[norm] = pair
}

// Delete removes a pair. Its attached comments are dropped with it.
func (si *ScriptInfo) Delete(key string) {
	norm := fields.Normalize(key)
	if _, ok := si.index[norm]; !ok {
		return
	}
	delete(si.index, norm)
	for i, pair := range si.pairs {
		if fields.Normalize(pair.Key) == norm {
			si.pairs = append(si.pairs[:i], si.pairs[i+1:]...)
			break
		}
	}
}

// Len reports the number of pairs.
func (si *ScriptInfo) Len() int { return len(si.pairs) }

// add ingests a raw pair, converting known keys to typed values. A failed
// conversion keeps the string form and reports false.
func (si *ScriptInfo) add(key, raw string, comments []string) bool {
	norm := fields.Normalize(key)
	pair := &InfoPair{Key: key, Comments: comments, raw: raw}

	ok := true
	if convert, known := infoSchema[norm]; known {
		value, err := convert(raw)
		if err != nil {
			pair.Value = raw
			ok = false
		} else {
			pair.Value = value
		}
	} else {
		pair.Value = raw
	}

	if existing, dup := si.index[norm]; dup {
		existing.Value = pair.Value
		existing.raw = raw
		existing.Comments = append(existing.Comments, comments...)
		return ok
	}
	si.pairs = append(si.pairs, pair)
	si.index[norm] = pair
	return ok
}

// infoSchema maps normalized Script Info keys to typed converters.
var infoSchema = map[string]func(string) (any, error){
	"playresx":              infoInt,
	"playresy":              infoInt,
	"playdepth":             infoInt,
	"wrapstyle":             infoInt,
	"timer":                 infoFloat,
	"scaledborderandshadow": infoBool,
	"kerning":               infoBool,
}

func infoInt(s string) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err
}

func infoFloat(s string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err
}

func infoBool(s string) (any, error) {
	switch fields.Normalize(s) {
	case "yes", "1", "true", "on":
		return true, nil
	case "no", "0", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func formatInfoValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		if value {
			return "yes"
		}
		return "no"
	case int:
		return strconv.Itoa(value)
	case float64:
		// Timer is conventionally written with four decimals.
		return strconv.FormatFloat(value, 'f', 4, 64)
	default:
		return fmt.Sprint(value)
	}
}
