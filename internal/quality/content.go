package quality

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Vocabulary holds the fixed word lists the content analyzer matches
// against. Injected so the lists are testable and replaceable.
type Vocabulary struct {
	Keywords   []string
	Frameworks []string
}

// DefaultVocabulary returns the standard testing-domain vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Keywords: []string{
			"test", "testing", "assert", "mock", "unittest", "pytest",
			"tdd", "bdd", "integration", "unit", "e2e", "end-to-end",
			"automated", "automation", "coverage", "fixture", "suite",
			"case", "scenario", "stub", "spy", "continuous integration",
			"ci/cd", "regression", "smoke",
		},
		Frameworks: []string{
			"pytest", "unittest", "jest", "mocha", "jasmine", "junit",
			"testng", "selenium", "cypress", "playwright",
			"robot framework", "cucumber", "rspec", "minitest", "nose",
			"doctest",
		},
	}
}

// Code span and language-construct patterns. The union is deliberately
// permissive: a false positive costs one rubric point, a false negative
// hides real code.
var (
	codeSpanRe = regexp.MustCompile("```[\\s\\S]*?```|`[^`]+`")

	codeConstructRes = []*regexp.Regexp{
		regexp.MustCompile(`def\s+\w+\s*\(`),      // function definition
		regexp.MustCompile(`class\s+\w+`),         // class definition
		regexp.MustCompile(`import\s+\w+`),        // import statement
		regexp.MustCompile(`from\s+\w+\s+import`), // from-import
		regexp.MustCompile(`self\.\w+`),           // attribute access
		regexp.MustCompile(`assert\w*\s*\(`),      // assertion call
		regexp.MustCompile(`@\w+`),                // decorator
	}

	numberedListRe = regexp.MustCompile(`\d+\)`)
	bulletRe       = regexp.MustCompile(`(?m)^\s*[-*•]\s+`)
)

// contentMaxPoints is the raw rubric scale: five sub-scores worth up to
// one point each.
const contentMaxPoints = 5.0

// minAnswerLength is the character floor for the length sub-score.
const minAnswerLength = 200

// keywordSaturation is the distinct-keyword count at which the keyword
// sub-score maxes out.
const keywordSaturation = 5.0

// Analyzer computes a heuristic content-quality signal from free-form
// answer text. All methods are pure and safe for concurrent use; empty
// text yields zero scores, never an error.
type Analyzer struct {
	vocab Vocabulary
}

// NewAnalyzer creates an Analyzer with the given vocabulary.
func NewAnalyzer(vocab Vocabulary) *Analyzer {
	return &Analyzer{vocab: vocab}
}

// HasCodeExamples reports whether the text contains a code span or any
// language-construct pattern.
func (a *Analyzer) HasCodeExamples(text string) bool {
	if codeSpanRe.MatchString(text) {
		return true
	}
	for _, re := range codeConstructRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// CountKeywords counts distinct vocabulary keywords found as
// case-insensitive substrings. Each keyword counts at most once.
func (a *Analyzer) CountKeywords(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range a.vocab.Keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

// MentionedFrameworks returns the subset of known framework names found
// as case-insensitive substrings of the text.
func (a *Analyzer) MentionedFrameworks(text string) []string {
	lower := strings.ToLower(text)
	var mentioned []string
	for _, fw := range a.vocab.Frameworks {
		if strings.Contains(lower, fw) {
			mentioned = append(mentioned, fw)
		}
	}
	return mentioned
}

// HasStructure reports whether the text shows list or multi-paragraph
// formatting: numbered markers, line-start bullets, or at least two
// blank-line separations.
func (a *Analyzer) HasStructure(text string) bool {
	if numberedListRe.MatchString(text) {
		return true
	}
	if bulletRe.MatchString(text) {
		return true
	}
	return strings.Count(text, "\n\n") >= 2
}

// Score computes the normalized content-quality score in [0,1].
// Five sub-scores contribute up to 1.0 raw point each: code examples,
// keyword density (saturating at five distinct keywords), framework
// mentions, structure, and a minimum-length floor.
func (a *Analyzer) Score(text string) float64 {
	score := 0.0

	if a.HasCodeExamples(text) {
		score += 1.0
	}

	keywordPoints := float64(a.CountKeywords(text)) / keywordSaturation
	if keywordPoints > 1.0 {
		keywordPoints = 1.0
	}
	score += keywordPoints

	if len(a.MentionedFrameworks(text)) > 0 {
		score += 1.0
	}

	if a.HasStructure(text) {
		score += 1.0
	}

	if utf8.RuneCountInString(text) >= minAnswerLength {
		score += 1.0
	}

	return score / contentMaxPoints
}

// Details returns the full content analysis for observability.
func (a *Analyzer) Details(text string) ContentDetails {
	return ContentDetails{
		HasCodeExamples:     a.HasCodeExamples(text),
		KeywordCount:        a.CountKeywords(text),
		FrameworksMentioned: a.MentionedFrameworks(text),
		HasStructure:        a.HasStructure(text),
		Length:              utf8.RuneCountInString(text),
		ContentScore:        a.Score(text),
	}
}
