package invoice

import (
	"fmt"
	"regexp"
)

const (
	DefaultTaxIDPattern  = `\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b|\b\d{14}\b`
	DefaultNumberPattern = `(?i)NFe\s*(\d{6,})`
)

// Patterns are the heuristics used to pre-fill a draft from OCR text.
type Patterns struct {
	TaxID  *regexp.Regexp
	Number *regexp.Regexp
}

func DefaultPatterns() Patterns {
	return Patterns{
		TaxID:  regexp.MustCompile(DefaultTaxIDPattern),
		Number: regexp.MustCompile(DefaultNumberPattern),
	}
}

// CompilePatterns compiles configured patterns. An empty pattern keeps the
// default one.
func CompilePatterns(taxID, number string) (Patterns, error) {
	p := DefaultPatterns()

	if taxID != "" {
		t, err := regexp.Compile(taxID)
		if err != nil {
			return Patterns{}, fmt.Errorf("compiling tax id pattern: %w", err)
		}

		p.TaxID = t
	}

	if number != "" {
		n, err := regexp.Compile(number)
		if err != nil {
			return Patterns{}, fmt.Errorf("compiling number pattern: %w", err)
		}

		p.Number = n
	}

	return p, nil
}

// Hints are best-effort guesses, never authoritative.
type Hints struct {
	TaxID  string
	Number string
}

// ExtractHints returns the first tax id and document number found in text.
// When the number pattern has a capture group, the group is used.
func ExtractHints(text string, p Patterns) Hints {
	var h Hints

	if p.TaxID != nil {
		h.TaxID = p.TaxID.FindString(text)
	}

	if p.Number != nil {
		if m := p.Number.FindStringSubmatch(text); m != nil {
			h.Number = m[0]
			if len(m) > 1 {
				h.Number = m[1]
			}
		}
	}

	return h
}
