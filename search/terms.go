package search

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// NegationPrefix marks a term whose matches are subtracted from the result.
const NegationPrefix = "-"

// termLine is a whitespace separated list of query terms.
type termLine struct {
	Terms []*term `parser:"@@*"`
}

type term struct {
	Negated bool   `parser:"@Neg?"`
	Lateral string `parser:"( @Lateral"`
	Word    string `parser:"| @Word )"`
}

// termLexer keeps the three lateral manners together so they survive
// whitespace splitting.
var termLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Lateral", Pattern: `(?i)lateral\s+(?:fricative|affricate|approximant)\b`},
	{Name: "Neg", Pattern: `-`},
	{Name: "Word", Pattern: `[^\s\-]\S*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var termParser = participle.MustBuild[termLine](
	participle.Lexer(termLexer),
	participle.Elide("Whitespace"),
)

// ParseTerms splits a query line into terms.
//
// Terms are separated by whitespace; a leading "-" negates a term. The
// manners "lateral fricative", "lateral affricate" and "lateral
// approximant" are returned as single terms with their inner whitespace
// collapsed and lower-cased:
//
//	ParseTerms("Lateral   fricative -pʰ") // ["lateral fricative", "-pʰ"]
func ParseTerms(line string) ([]string, error) {
	ast, err := termParser.ParseString("", line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse terms %q: %w", line, err)
	}
	out := make([]string, 0, len(ast.Terms))
	for _, t := range ast.Terms {
		v := t.Word
		if t.Lateral != "" {
			v = strings.ToLower(strings.Join(strings.Fields(t.Lateral), " "))
		}
		if t.Negated {
			v = NegationPrefix + v
		}
		out = append(out, v)
	}
	return out, nil
}

// splitTerm strips the negation prefix.
func splitTerm(t string) (string, bool) {
	t = strings.TrimSpace(t)
	if v, ok := strings.CutPrefix(t, NegationPrefix); ok {
		return strings.TrimSpace(v), true
	}
	return t, false
}
