package glyph

import (
	"fmt"
	"strings"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Noun    string
	Aliases []string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Kind classifies how a task relates to the user's motivation.
type Kind string

// Timing says when the task wants attention.
type Timing string

const (
	Want Kind = "want"
	Need Kind = "need"
	Both Kind = "both"

	Today Timing = "today"
	Later Timing = "later"
)

func DefaultKinds() []Glyph {
	return []Glyph{
		{
			Key:     "w",
			Symbol:  "○",
			Meaning: "something you want to do",
			Noun:    "want",
			Aliases: []string{"want", "wants", "w"},
		}, {
			Key:     "n",
			Symbol:  "●",
			Meaning: "something you need to do",
			Noun:    "need",
			Aliases: []string{"need", "needs", "n"},
		}, {
			Key:     "b",
			Symbol:  "◉",
			Meaning: "something you want and need to do",
			Noun:    "both",
			Aliases: []string{"both", "b"},
		},
	}
}

func DefaultTimings() []Glyph {
	return []Glyph{
		{
			Key:     "t",
			Symbol:  "!",
			Meaning: "wants attention today",
			Noun:    "today",
			Aliases: []string{"today", "t", "now"},
		}, {
			Key:     "l",
			Symbol:  "›",
			Meaning: "can wait for another day",
			Noun:    "later",
			Aliases: []string{"later", "l", "someday"},
		},
	}
}

func (k Kind) Glyph() Glyph {
	for _, g := range DefaultKinds() {
		if g.Noun == string(k) {
			return g
		}
	}
	return Glyph{Symbol: "?", Noun: string(k)}
}

func (k Kind) String() string {
	return k.Glyph().Symbol
}

func (t Timing) Glyph() Glyph {
	for _, g := range DefaultTimings() {
		if g.Noun == string(t) {
			return g
		}
	}
	return Glyph{Symbol: "?", Noun: string(t)}
}

func (t Timing) String() string {
	return t.Glyph().Symbol
}

// KindForAlias resolves user input like "want" or "n" to a Kind.
func KindForAlias(alias string) (Kind, error) {
	in := strings.ToLower(strings.TrimSpace(alias))
	for _, g := range DefaultKinds() {
		for _, a := range g.Aliases {
			if a == in {
				return Kind(g.Noun), nil
			}
		}
	}
	return "", fmt.Errorf("glyph: unknown kind %q", alias)
}

// TimingForAlias resolves user input like "today" or "l" to a Timing.
func TimingForAlias(alias string) (Timing, error) {
	in := strings.ToLower(strings.TrimSpace(alias))
	for _, g := range DefaultTimings() {
		for _, a := range g.Aliases {
			if a == in {
				return Timing(g.Noun), nil
			}
		}
	}
	return "", fmt.Errorf("glyph: unknown timing %q", alias)
}
