package regexdfa

import (
	"bytes"
	"fmt"
	"go/token"

	"github.com/dave/jennifer/jen"
)

// GenerateMatcher Emits a gofmt'ed Go source file for package pkg holding func name(s string) bool, which
// walks the minimal DFA as nested switches over the current state and the next rune.
func GenerateMatcher(m *MinDFA, pkg, name string) ([]byte, error) {
	if !token.IsIdentifier(name) {
		return nil, fmt.Errorf("invalid function name %q", name)
	}
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by regexdfa. DO NOT EDIT.")

	body := make([]jen.Code, 0)
	if m.NumStates() == 0 {
		body = append(body, jen.Return(jen.False()))
	} else {
		body = append(body,
			jen.Id("state").Op(":=").Lit(m.Start()),
			jen.For(jen.List(jen.Id("_"), jen.Id("r")).Op(":=").Range().Id("s")).Block(
				jen.Switch(jen.Id("state")).Block(stateCases(m)...),
			),
		)
		body = append(body, acceptReturn(m)...)
	}

	f.Commentf("%s reports whether s is accepted by the minimal DFA.", name)
	f.Func().Id(name).Params(jen.Id("s").String()).Bool().Block(body...)

	buf := new(bytes.Buffer)
	if err := f.Render(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stateCases(m *MinDFA) []jen.Code {
	cases := make([]jen.Code, 0, m.NumStates())
	for s := 0; s < m.NumStates(); s++ {
		symbolCases := make([]jen.Code, 0)
		for _, symbol := range m.Alphabet() {
			dest := m.Step(s, symbol)
			if dest == -1 {
				continue
			}
			symbolCases = append(symbolCases,
				jen.Case(jen.LitRune(symbol)).Block(jen.Id("state").Op("=").Lit(dest)))
		}
		symbolCases = append(symbolCases, jen.Default().Block(jen.Return(jen.False())))
		cases = append(cases, jen.Case(jen.Lit(s)).Block(jen.Switch(jen.Id("r")).Block(symbolCases...)))
	}
	return cases
}

func acceptReturn(m *MinDFA) []jen.Code {
	accept := m.AcceptStates()
	if len(accept) == 0 {
		return []jen.Code{jen.Return(jen.False())}
	}
	lits := make([]jen.Code, len(accept))
	for i, s := range accept {
		lits[i] = jen.Lit(s)
	}
	return []jen.Code{
		jen.Switch(jen.Id("state")).Block(jen.Case(lits...).Block(jen.Return(jen.True()))),
		jen.Return(jen.False()),
	}
}
