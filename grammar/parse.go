package grammar

import (
	"fmt"
	"strings"

	"github.com/corvidlang/lr1/token"
)

// LoadError reports a malformed grammar definition: bad production syntax,
// an empty RHS (epsilon is unsupported, see spec §9), or an empty formula
// list. It corresponds to spec.md §7's GrammarLoadError.
type LoadError struct {
	Input string
	Msg   string
}

func (e *LoadError) Error() string {
	if e.Input == "" {
		return "grammar load error: " + e.Msg
	}
	return fmt.Sprintf("grammar load error: %s (in %q)", e.Msg, e.Input)
}

// ParseTerminal parses a terminal pattern "<type,word>" as it appears on a
// production's RHS (no surrounding whitespace inside the angle brackets).
func ParseTerminal(s string) (token.Token, error) {
	if len(s) < 2 || s[0] != '<' || s[len(s)-1] != '>' {
		return token.Token{}, &LoadError{Input: s, Msg: "not a terminal pattern"}
	}
	body := s[1 : len(s)-1]
	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return token.Token{}, &LoadError{Input: s, Msg: "terminal pattern missing ','"}
	}
	class := strings.TrimSpace(body[:comma])
	word := body[comma+1:]
	if class == "" {
		return token.Token{}, &LoadError{Input: s, Msg: "terminal pattern has empty type"}
	}
	return token.Token{Class: token.Class(class), Word: word}, nil
}

// ParseElement parses a single RHS slot: either a terminal pattern
// "<type,word>" or a bare nonterminal name.
func ParseElement(s string) (Element, error) {
	if strings.HasPrefix(s, "<") {
		t, err := ParseTerminal(s)
		if err != nil {
			return Element{}, err
		}
		return Terminal(t), nil
	}
	if s == "" {
		return Element{}, &LoadError{Input: s, Msg: "empty RHS element"}
	}
	return Nonterminal(Symbol(s)), nil
}

// ParseFormula parses one "LHS -> E1 E2 ... En" line. The RHS must not be
// empty (see spec §9, epsilon productions are unsupported).
func ParseFormula(line string) (Formula, error) {
	parts := strings.SplitN(line, "->", 2)
	if len(parts) != 2 {
		return Formula{}, &LoadError{Input: line, Msg: "missing '->'"}
	}
	lhs := strings.TrimSpace(parts[0])
	if lhs == "" {
		return Formula{}, &LoadError{Input: line, Msg: "empty LHS"}
	}
	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return Formula{}, &LoadError{Input: line, Msg: "empty RHS (epsilon productions are unsupported)"}
	}
	rhs := make([]Element, len(fields))
	for i, f := range fields {
		el, err := ParseElement(f)
		if err != nil {
			return Formula{}, err
		}
		rhs[i] = el
	}
	return Formula{LHS: Symbol(lhs), RHS: rhs}, nil
}

// ParseFormulas parses an ordered list of production strings into a Store.
// The first production is the augmented start production; spec.md requires
// that its LHS not recur on any other production's RHS, which is checked
// here.
func ParseFormulas(lines []string) (*Store, error) {
	if len(lines) == 0 {
		return nil, &LoadError{Msg: "grammar has no formulas"}
	}
	formulas := make([]Formula, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		f, err := ParseFormula(trimmed)
		if err != nil {
			return nil, err
		}
		formulas = append(formulas, f)
	}
	if len(formulas) == 0 {
		return nil, &LoadError{Msg: "grammar has no formulas"}
	}
	start := formulas[0].LHS
	for i, f := range formulas[1:] {
		for _, e := range f.RHS {
			if e.IsSymbol() && e.Symbol() == start {
				return nil, &LoadError{
					Input: f.String(),
					Msg:   fmt.Sprintf("start symbol %q reappears on the RHS of formula %d", start, i+1),
				}
			}
		}
	}
	return NewStore(formulas), nil
}
