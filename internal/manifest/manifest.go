// Package manifest reads batch files of named patterns:
//
//	# comment
//	ident = "(a|b)*abb";
//	digits = "(0|1)+";
package manifest

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type File struct {
	Entries []*Entry `parser:"@@*"`
}

type Entry struct {
	Pos lexer.Position

	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@String ';'"`
}

var manifestLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_\-]*`},
	{Name: "Punct", Pattern: `[=;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(manifestLexer),
	participle.Unquote("String"),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a manifest from src. filename is only used in positions.
func Parse(filename, src string) (*File, error) {
	f, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]*Entry, len(f.Entries))
	for _, e := range f.Entries {
		if prev, ok := seen[e.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate pattern %q (first defined at %s)", e.Pos, e.Name, prev.Pos)
		}
		seen[e.Name] = e
	}
	return f, nil
}

// Load parses the manifest at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}
