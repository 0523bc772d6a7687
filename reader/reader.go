// Package reader converts a parsetree.Node into a value.Value tree,
// per spec §4.5: numbers and symbols become scalars, strings are
// unescaped, and Root/SExpr/QExpr nodes become their Value
// counterparts by recursing into Children — there is no literal
// delimiter or comment token to skip, because parsetree already
// stripped them during scanning.
package reader

import (
	"strconv"
	"strings"

	"lispy.dev/lispy/parsetree"
	"lispy.dev/lispy/value"
)

// Read converts node into a Value. Root and SExprNode both become an
// SExpr; classification is a single switch on Tag, never a substring
// match against the tag name, so a malformed tag cannot accidentally
// satisfy two branches at once.
func Read(node *parsetree.Node) *value.Value {
	switch node.Tag {
	case parsetree.NumberNode:
		return readNumber(node.Text)
	case parsetree.SymbolNode:
		return value.NewSymbol(node.Text)
	case parsetree.StringNode:
		return value.NewString(unescape(node.Text))
	case parsetree.Root, parsetree.SExprNode:
		return readContainer(node, value.NewSExpr())
	case parsetree.QExprNode:
		return readContainer(node, value.NewQExpr())
	default:
		return value.NewError("unknown node")
	}
}

func readContainer(node *parsetree.Node, container *value.Value) *value.Value {
	for _, child := range node.Children {
		value.Add(container, Read(child))
	}
	return container
}

func readNumber(text string) *value.Value {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return value.NewError("invalid number")
	}
	return value.NewNumber(n)
}

// unescape processes the minimum escape set required by spec §4.5:
// \\, \", \n, \t, \r. Any other backslash sequence passes the
// following character through unchanged.
func unescape(text string) string {
	var sb strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '\\' || i+1 >= len(runes) {
			sb.WriteRune(ch)
			continue
		}
		i++
		switch runes[i] {
		case '\\':
			sb.WriteRune('\\')
		case '"':
			sb.WriteRune('"')
		case 'n':
			sb.WriteRune('\n')
		case 't':
			sb.WriteRune('\t')
		case 'r':
			sb.WriteRune('\r')
		default:
			sb.WriteRune(runes[i])
		}
	}
	return sb.String()
}
