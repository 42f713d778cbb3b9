// Package safety screens answer text for profanity and PII solicitation.
// It is a pass/fail gate independent of the weighted quality score.
package safety

import (
	"fmt"
	"regexp"
	"strings"
)

// Vocabulary holds the word list and patterns the checker matches
// against. Injected so the lists are testable and replaceable.
type Vocabulary struct {
	// Profanity is matched against whole words, case-insensitively.
	Profanity []string

	// PIIRequestPatterns detect the bot asking the user for sensitive
	// information. Applied to lowercased text.
	PIIRequestPatterns []string
}

// DefaultVocabulary returns the standard English and Spanish lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Profanity: []string{
			// English
			"fuck", "shit", "bitch", "asshole", "cunt", "dick", "pussy",
			"bastard",
			// Spanish
			"puta", "puto", "mierda", "cabron", "cabrón", "pendejo",
			"coño", "verga", "chinga", "gilipollas",
			"stupid", "estupido", "estúpido", "idiot", "idiota",
		},
		PIIRequestPatterns: []string{
			`(?:dame|give me|proporciona|provide).{0,50}(?:password|contraseña|clave)`,
			`(?:dame|give me|proporciona|provide).{0,50}(?:credit card|tarjeta de cr[eé]dito)`,
			`(?:dame|give me|proporciona|provide).{0,50}(?:ssn|social security|seguro social)`,
			`(?:dame|give me|proporciona|provide).{0,50}(?:phone number|n[úu]mero de tel[eé]fono)`,
			`(?:what is|cual es).{0,50}(?:your|tu).{0,50}(?:address|direcci[oó]n)`,
		},
	}
}

// wordRe splits text into unicode words.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Result is the safety verdict for one text.
type Result struct {
	Safe   bool
	Reason string
}

// Checker screens text against a profanity vocabulary and PII-request
// patterns. Safe for concurrent use.
type Checker struct {
	profanity   map[string]struct{}
	piiPatterns []*regexp.Regexp
}

// NewChecker creates a Checker with the given vocabulary.
// Fails if a PII pattern does not compile.
func NewChecker(vocab Vocabulary) (*Checker, error) {
	profanity := make(map[string]struct{}, len(vocab.Profanity))
	for _, w := range vocab.Profanity {
		profanity[strings.ToLower(w)] = struct{}{}
	}

	patterns := make([]*regexp.Regexp, 0, len(vocab.PIIRequestPatterns))
	for _, p := range vocab.PIIRequestPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile PII pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	return &Checker{profanity: profanity, piiPatterns: patterns}, nil
}

// ContainsProfanity reports whether the text contains profanity, along
// with every offending word found, in text order.
func (c *Checker) ContainsProfanity(text string) (bool, []string) {
	var found []string
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if _, ok := c.profanity[word]; ok {
			found = append(found, word)
		}
	}
	return len(found) > 0, found
}

// AsksForPII reports whether the text solicits personally identifiable
// information, along with the pattern that matched.
func (c *Checker) AsksForPII(text string) (bool, string) {
	lower := strings.ToLower(text)
	for _, re := range c.piiPatterns {
		if re.MatchString(lower) {
			return true, re.String()
		}
	}
	return false, ""
}

// Check runs both screens and returns a single verdict.
func (c *Checker) Check(text string) Result {
	if ok, words := c.ContainsProfanity(text); ok {
		return Result{
			Safe:   false,
			Reason: fmt.Sprintf("contains profanity: %s", strings.Join(words, ", ")),
		}
	}

	if ok, pattern := c.AsksForPII(text); ok {
		return Result{
			Safe:   false,
			Reason: fmt.Sprintf("requests PII matching pattern: %s", pattern),
		}
	}

	return Result{Safe: true, Reason: "safe"}
}
