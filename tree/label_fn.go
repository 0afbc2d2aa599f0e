// Package tree provides label schemes for BasicNode trees. A label is derived
// from the node's level and its zero-based index within that level, so labels
// are deterministic for a given shape.
package tree

import (
	"fmt"
	"strconv"
)

// LabelFn renders a node label from its level and index within the level.
// It must be pure and deterministic.
type LabelFn func(level, index int) string

// levelLabel joins a level and a rendered index as "<level>.<index>".
func levelLabel(level int, index string) string {
	return strconv.Itoa(level) + "." + index
}

// DecimalLabels renders decimal indices, e.g. (0,0)→"0.0", (2,11)→"2.11".
// Never panics.
func DecimalLabels(level, index int) string {
	return levelLabel(level, strconv.Itoa(index))
}

// SymbolLabels renders the index as an uppercase Latin letter, e.g. (1,0)→"1.A".
// Panics if index < 0 or index > 25.
func SymbolLabels(level, index int) string {
	if index < 0 || index > 25 {
		panic(fmt.Sprintf("SymbolLabels: index must be in [0,25], got %d", index))
	}

	return levelLabel(level, string('A'+rune(index)))
}

// ExcelLabels renders the index as an Excel-style column,
// e.g. (1,0)→"1.A", (1,25)→"1.Z", (2,26)→"2.AA".
// Panics if index < 0.
func ExcelLabels(level, index int) string {
	if index < 0 {
		panic(fmt.Sprintf("ExcelLabels: index must be ≥ 0, got %d", index))
	}
	// build letters in reverse order
	var runes []rune
	for i := index; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return levelLabel(level, string(runes))
}

// AlphanumericLabels renders the index in base 36, e.g. (1,35)→"1.z".
// Panics if index < 0.
func AlphanumericLabels(level, index int) string {
	if index < 0 {
		panic(fmt.Sprintf("AlphanumericLabels: index must be ≥ 0, got %d", index))
	}

	return levelLabel(level, strconv.FormatInt(int64(index), 36))
}

// HexLabels renders the index in lowercase hexadecimal, e.g. (3,255)→"3.ff".
// Panics if index < 0.
func HexLabels(level, index int) string {
	if index < 0 {
		panic(fmt.Sprintf("HexLabels: index must be ≥ 0, got %d", index))
	}

	return levelLabel(level, strconv.FormatInt(int64(index), 16))
}

// PrefixLabels returns a LabelFn rendering prefix + DecimalLabels,
// e.g. PrefixLabels("n")(1,2)→"n1.2".
func PrefixLabels(prefix string) LabelFn {
	return func(level, index int) string {
		return prefix + DecimalLabels(level, index)
	}
}

// labelSchemes maps scheme names accepted by LabelScheme.
var labelSchemes = map[string]LabelFn{
	"decimal":      DecimalLabels,
	"symbol":       SymbolLabels,
	"excel":        ExcelLabels,
	"alphanumeric": AlphanumericLabels,
	"hex":          HexLabels,
}

// LabelScheme resolves a scheme by name ("decimal", "symbol", "excel",
// "alphanumeric", "hex"). Unknown names return ErrUnknownLabelScheme.
func LabelScheme(name string) (LabelFn, error) {
	fn, ok := labelSchemes[name]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", MethodLabelScheme, name, ErrUnknownLabelScheme)
	}

	return fn, nil
}

// LabeledFactory returns a BasicNode factory that sets Level and a Label
// rendered by fn from the node's index within its level. The index counter
// restarts at every new level and at every root, so one factory can serve
// several CreateTree calls in sequence. It is not safe for concurrent use.
// Panics on nil fn.
func LabeledFactory(fn LabelFn) NodeFactory[*BasicNode] {
	if fn == nil {
		panic("tree: LabeledFactory(nil)")
	}
	curLevel, next := RootLevel, 0

	return func(level int, _ *BasicNode) (*BasicNode, error) {
		if level != curLevel || level == RootLevel {
			curLevel, next = level, 0
		}
		node := &BasicNode{Level: level, Label: fn(level, next)}
		next++

		return node, nil
	}
}
