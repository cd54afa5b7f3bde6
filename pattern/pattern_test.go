package pattern

import (
	"fmt"
	"strings"
	"testing"
)

func TestIndicate(t *testing.T) {
	tests := []struct {
		name    string
		p       Pattern
		b       byte
		wantLen int
		wantOK  bool
	}{
		{"string_hit", String("<>"), '<', 2, true},
		{"string_miss", String("<>"), '>', 0, false},
		{"string_empty", String(""), 'a', 0, false},
		{"rune_ascii", Rune('\n'), '\n', 1, true},
		{"rune_wide", Rune('€'), 0xe2, 3, true},
		{"rune_wide_miss", Rune('€'), 0xc3, 0, false},
		{"runes_max", Runes{'a', 'é', '€'}, 0xe2, 3, true},
		{"runes_miss", Runes{'a', 'é'}, 'b', 0, false},
		{"strings_shared_lead_takes_max", Strings{"=", "===", "=="}, '=', 3, true},
		{"strings_miss", Strings{"Foo", "Bar"}, 'B' + 1, 0, false},
		{"set_shared_lead", MustSet("-", "->", "-->"), '-', 3, true},
		{"set_miss", MustSet("-", "->"), '+', 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := tt.p.Indicate(tt.b)
			if n != tt.wantLen || ok != tt.wantOK {
				t.Errorf("Indicate(%q) = (%d, %v), want (%d, %v)", tt.b, n, ok, tt.wantLen, tt.wantOK)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		p         Pattern
		text      string
		wantLen   int
		wantWhich int
		wantOK    bool
	}{
		{"string", String("Bar"), "Bar >< Baz", 3, 0, true},
		{"string_short_text", String("Bar"), "Ba", 0, 0, false},
		{"rune", Rune('é'), "été", 2, 0, true},
		{"rune_miss", Rune('é'), "e", 0, 0, false},
		{"runes_index", Runes{'x', '>', '<'}, "<>", 1, 2, true},
		{"strings_declaration_order", Strings{"=", "=="}, "==", 1, 0, true},
		{"strings_longer_first", Strings{"==", "="}, "==", 2, 0, true},
		{"strings_second", Strings{"Foo", "Bar"}, "Bar", 3, 1, true},
		{"strings_skip_empty", Strings{"", "a"}, "a", 1, 1, true},
		{"set_order", MustSet("->", "-"), "->x", 2, 0, true},
		{"set_fallback", MustSet("->", "-"), "-x", 1, 1, true},
		{"set_miss", MustSet("->", "-"), "x", 0, 0, false},
		{"set_empty_text", MustSet("a"), "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, which, ok := tt.p.Match(tt.text)
			if n != tt.wantLen || which != tt.wantWhich || ok != tt.wantOK {
				t.Errorf("Match(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.text, n, which, ok, tt.wantLen, tt.wantWhich, tt.wantOK)
			}
		})
	}
}

// TestFindNeverSkipsAMatch verifies the Finder contract: no candidate may
// start before the returned index.
func TestFindNeverSkipsAMatch(t *testing.T) {
	many := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		many = append(many, fmt.Sprintf("kw%02d", i))
	}
	many = append(many, "abcd", "bc")

	patterns := map[string]interface {
		Pattern
		Finder
	}{
		"string":       String("<>"),
		"rune":         Rune('€'),
		"runes_few":    Runes{'>', '<'},
		"runes_many":   Runes{'a', 'b', 'c', 'd', 'e'},
		"strings":      Strings{"Foo", "Bar"},
		"set_small":    MustSet("Foo", "Bar", "Baz"),
		"set_many":     MustSet(many...),
		"set_overlaps": MustSet(append(many, "kw05x")...),
	}
	texts := []string{
		"",
		" >< Foo >< Bar >< Baz >< ",
		"€uro",
		strings.Repeat("x", 40) + "kw07" + strings.Repeat("y", 3),
		"zzabcd",
		"tail kw1",
		"a > b <",
		"e",
	}

	for name, p := range patterns {
		for _, text := range texts {
			got := p.Find([]byte(text))
			if got < 0 || got > len(text) {
				t.Fatalf("%s.Find(%q) = %d out of range", name, text, got)
			}
			for i := 0; i < got; i++ {
				if _, _, ok := p.Match(text[i:]); ok {
					t.Errorf("%s.Find(%q) = %d skips a match at %d", name, text, got, i)
				}
				if n, ok := p.Indicate(text[i]); ok && i+n > len(text) {
					t.Errorf("%s.Find(%q) = %d skips a truncated candidate at %d", name, text, got, i)
				}
			}
		}
	}
}

func TestSetLiterals(t *testing.T) {
	s := MustSet("if", "", "else")
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.Literal(2) != "else" {
		t.Errorf("Literal(2) = %q", s.Literal(2))
	}
	if _, _, ok := s.Match("x"); ok {
		t.Error("empty literal must never match")
	}
}
