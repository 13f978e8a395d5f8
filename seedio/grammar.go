package seedio

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Seed files are line oriented: a leading tag word and its arguments.
// Only lines tagged "v" carry seeds; everything else is skipped.

var seedLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Word", Pattern: `[^ \t\r\n]+`},
})

type seedFile struct {
	Lines []*seedLine `parser:"( @@ | EOL )*"`
}

type seedLine struct {
	Pos  lexer.Position
	Tag  string   `parser:"@Word"`
	Args []string `parser:"@Word*"`
}

var parseSeedFile = participle.MustBuild[seedFile](
	participle.Lexer(seedLexer),
	participle.Elide("Whitespace"),
)
