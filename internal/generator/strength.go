package generator

import (
	"strings"
	"unicode/utf8"
)

// MaxScore is the number of strength predicates.
const MaxScore = 6

// Label is a discrete strength rating.
type Label uint8

const (
	NoPassword Label = iota
	Weak
	Medium
	Strong
	// VeryStrong requires a score of 7, which six predicates cannot reach.
	VeryStrong
)

var labelText = [...]string{
	NoPassword: "No Password",
	Weak:       "Weak",
	Medium:     "Medium",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

var labelColor = [...]string{
	NoPassword: "bg-gray-400",
	Weak:       "bg-red-500",
	Medium:     "bg-yellow-500",
	Strong:     "bg-green-500",
	VeryStrong: "bg-blue-600",
}

func (l Label) String() string {
	if int(l) < len(labelText) {
		return labelText[l]
	}
	return "Unknown"
}

// ColorToken returns the presentation token for the label.
func (l Label) ColorToken() string {
	if int(l) < len(labelColor) {
		return labelColor[l]
	}
	return labelColor[NoPassword]
}

// MarshalText encodes the label as its display text.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Assessment is the outcome of Evaluate.
type Assessment struct {
	Score int
	Label Label
}

// Evaluate scores password against six heuristics, one point each: at least
// 8 characters, at least 12 characters, a lowercase letter, an uppercase
// letter, a digit, and a character from SymbolChars.
func Evaluate(password string) Assessment {
	if password == "" {
		return Assessment{Score: 0, Label: NoPassword}
	}

	n := utf8.RuneCountInString(password)
	score := 0
	if n >= 8 {
		score++
	}
	if n >= 12 {
		score++
	}
	if strings.ContainsAny(password, lowercaseChars) {
		score++
	}
	if strings.ContainsAny(password, uppercaseChars) {
		score++
	}
	if strings.ContainsAny(password, NumberChars) {
		score++
	}
	if strings.ContainsAny(password, SymbolChars) {
		score++
	}

	return Assessment{Score: score, Label: labelFor(score)}
}

func labelFor(score int) Label {
	switch {
	case score < 3:
		return Weak
	case score < 5:
		return Medium
	case score < 7:
		return Strong
	default:
		return VeryStrong
	}
}
