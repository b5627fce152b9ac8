package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// FallbackPolicy selects how a store name is chosen when no store keyword
// matches any line. The observed receipt layouts disagree on this, so each
// profile picks its policy explicitly.
type FallbackPolicy int

const (
	// FallbackUnknown resolves to the literal "Unknown" sentinel.
	FallbackUnknown FallbackPolicy = iota
	// FallbackLastLine resolves to the last line of the document.
	FallbackLastLine
)

// UnknownStore is the sentinel store name used when detection fails.
const UnknownStore = "Unknown"

// Profile is the per-store configuration consumed by the extraction engine:
// keyword sets, section markers and the unit-token table. Adding support for
// a new receipt layout means adding a profile, not a code path.
type Profile struct {
	Name              string
	StoreKeywords     []string
	StoreNameFallback FallbackPolicy
	SectionStart      []string
	SectionEnd        []*regexp.Regexp
	Units             map[string]UnitMapping

	weightPattern *regexp.Regexp
}

// compileWeightPattern builds the weight/volume matcher from the unit table.
// Longer tokens are tried first so "packs" wins over "pack" and "kg" is never
// shadowed by "g".
func (p *Profile) compileWeightPattern() {
	tokens := make([]string, 0, len(p.Units))
	for token := range p.Units {
		tokens = append(tokens, regexp.QuoteMeta(token))
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	p.weightPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(` + strings.Join(tokens, "|") + `)\b`)
}

// isSectionStart reports whether the line opens the item section. The
// triggering line itself is never an item candidate.
func (p *Profile) isSectionStart(line string) bool {
	for _, keyword := range p.SectionStart {
		if strings.Contains(line, keyword) {
			return true
		}
	}
	return false
}

// isSectionEnd reports whether the line closes the item section.
func (p *Profile) isSectionEnd(line string) bool {
	for _, marker := range p.SectionEnd {
		if marker.MatchString(line) {
			return true
		}
	}
	return false
}

func newProfile(p Profile) *Profile {
	if p.Units == nil {
		p.Units = DefaultUnitTable()
	}
	p.compileWeightPattern()
	return &p
}

var profiles = []*Profile{
	newProfile(Profile{
		Name:              "coles",
		StoreKeywords:     []string{"coles"},
		StoreNameFallback: FallbackUnknown,
		SectionStart:      []string{"Description"},
		SectionEnd: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bTOTAL\b`),
			regexp.MustCompile(`(?i)Total\s+for\s+\d+\s+items`),
			regexp.MustCompile(`(?i)SUBTOTAL`),
		},
	}),
	newProfile(Profile{
		Name:              "woolworths",
		StoreKeywords:     []string{"woolworths"},
		StoreNameFallback: FallbackLastLine,
		SectionStart:      []string{"Description"},
		SectionEnd: []*regexp.Regexp{
			regexp.MustCompile(`Promotional Price`),
			regexp.MustCompile(`SUBTOTAL`),
		},
	}),
}

// Profiles returns the registered store profiles in detection order.
func Profiles() []*Profile {
	return profiles
}

// ProfileNames returns the names of the registered profiles.
func ProfileNames() []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}

// LookupProfile returns the profile with the given name, or nil.
func LookupProfile(name string) *Profile {
	for _, p := range profiles {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// DetectProfile picks the first registered profile whose store keyword
// appears anywhere in the line sequence. When no keyword matches, the first
// registered profile is used.
func DetectProfile(lines []string) *Profile {
	for _, p := range profiles {
		for _, line := range lines {
			lower := strings.ToLower(line)
			for _, keyword := range p.StoreKeywords {
				if strings.Contains(lower, keyword) {
					return p
				}
			}
		}
	}
	return profiles[0]
}
