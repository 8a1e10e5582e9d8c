package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer tokenizes replay scripts. Keywords are plain identifiers and
// are matched by the grammar.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},

	// Colors must come before numbers so "#123456" is not split.
	{Name: "Color", Pattern: `#[0-9A-Za-z]+`},
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
	{Name: "Semicolon", Pattern: `;`},
})
