// Package punct is the operator and delimiter set used by the tokens command.
package punct

//go:generate go run ../../cmd/tokengen -o punct_gen.go punct.yaml

// All lists every token in declaration order.
func All() []Punct {
	all := make([]Punct, len(punctText))
	for i := range all {
		all[i] = Punct(i)
	}
	return all
}
