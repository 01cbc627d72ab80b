package character

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	attributePairRegex = regexp.MustCompile(`([A-Za-z_]+)\s*=\s*([+-]?\d+)`)
	attributeNameRegex = regexp.MustCompile(`^[a-z_]+$`)
)

// ParseAttributePairs extracts every name=value pair from text. Pairs may
// be separated by commas or spaces; text between them is ignored. Names are
// case-folded. Values that overflow int are skipped.
func ParseAttributePairs(text string) []AttributePair {
	var pairs []AttributePair
	for _, m := range attributePairRegex.FindAllStringSubmatch(text, -1) {
		value, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		pairs = append(pairs, AttributePair{
			Name:  FoldAttributeName(m[1]),
			Value: value,
		})
	}
	return pairs
}

// ParseAttributeNames splits a comma separated list of attribute names
func ParseAttributeNames(text string) []string {
	var names []string
	for _, part := range strings.Split(text, ",") {
		if name := FoldAttributeName(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FoldAttributeName trims and lowercases an attribute name
func FoldAttributeName(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// CapitalizeItem formats an item name with its first letter upper case and
// the rest lower case, so "poção" and "POÇÃO" share one inventory slot.
func CapitalizeItem(item string) string {
	lower := cases.Lower(language.Und).String(strings.TrimSpace(item))
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return string(unicode.ToTitle(r)) + lower[size:]
}

func validAttributeName(name string) bool {
	return attributeNameRegex.MatchString(name)
}
