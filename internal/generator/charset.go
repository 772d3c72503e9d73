package generator

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// LetterChars is the alphabet of the Letters class: lowercase then uppercase.
	LetterChars = lowercaseChars + uppercaseChars
	// NumberChars is the alphabet of the Numbers class.
	NumberChars = "0123456789"
	// SymbolChars is the alphabet of the Symbols class.
	SymbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// CharacterClass is a named category of characters with a fixed alphabet.
type CharacterClass uint8

const (
	Letters CharacterClass = iota
	Numbers
	Symbols
)

// allClasses lists every class in iteration order.
var allClasses = [...]CharacterClass{Letters, Numbers, Symbols}

// Alphabet returns the characters belonging to the class.
func (c CharacterClass) Alphabet() string {
	switch c {
	case Letters:
		return LetterChars
	case Numbers:
		return NumberChars
	case Symbols:
		return SymbolChars
	}
	return ""
}

func (c CharacterClass) String() string {
	switch c {
	case Letters:
		return "letters"
	case Numbers:
		return "numbers"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

// ClassSet is a set of character classes. Iteration always follows
// declaration order so that draws are reproducible under a seeded source.
type ClassSet uint8

// NewClassSet returns a set holding the given classes.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// ClassSetFromFlags maps the three inclusion toggles onto a ClassSet.
func ClassSetFromFlags(letters, numbers, symbols bool) ClassSet {
	var s ClassSet
	if letters {
		s = s.With(Letters)
	}
	if numbers {
		s = s.With(Numbers)
	}
	if symbols {
		s = s.With(Symbols)
	}
	return s
}

// With returns a copy of s that also contains c.
func (s ClassSet) With(c CharacterClass) ClassSet {
	return s | 1<<c
}

// Has reports whether c is in the set.
func (s ClassSet) Has(c CharacterClass) bool {
	return s&(1<<c) != 0
}

// Empty reports whether no class is enabled.
func (s ClassSet) Empty() bool {
	return len(s.Classes()) == 0
}

// Classes returns the enabled classes in iteration order.
func (s ClassSet) Classes() []CharacterClass {
	var out []CharacterClass
	for _, c := range allClasses {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the enabled class names in iteration order.
func (s ClassSet) Names() []string {
	classes := s.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}

// BuildPool concatenates the alphabets of the enabled classes into the fill
// pool and draws one mandatory character from each of them. Alphabets are
// appended as-is; overlapping classes would contribute duplicate members.
func BuildPool(rng Rand, classes ClassSet) (string, []byte) {
	var pool strings.Builder
	var mandatory []byte

	for _, c := range classes.Classes() {
		alphabet := c.Alphabet()
		pool.WriteString(alphabet)
		mandatory = append(mandatory, randChar(rng, alphabet))
	}

	return pool.String(), mandatory
}

// randChar picks a uniformly random character from charset.
func randChar(rng Rand, charset string) byte {
	return charset[rng.IntN(len(charset))]
}
