package safety

import (
	"strings"
	"testing"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	c, err := NewChecker(DefaultVocabulary())
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	return c
}

func TestNewChecker_BadPattern(t *testing.T) {
	_, err := NewChecker(Vocabulary{PIIRequestPatterns: []string{"("}})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestContainsProfanity(t *testing.T) {
	c := newTestChecker(t)

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"clean english", "Automated tests catch regressions early.", false},
		{"clean spanish", "Las pruebas automatizadas son importantes.", false},
		{"english profanity", "this is complete shit", true},
		{"uppercase profanity", "WHAT THE FUCK", true},
		{"spanish profanity", "qué pendejo eres", true},
		{"accented profanity", "eres un cabrón", true},
		{"word boundary", "the class assignment is due", false},
		{"substring is not a match", "scunthorpe problem", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		got, _ := c.ContainsProfanity(tc.text)
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestContainsProfanity_ReportsWordsInOrder(t *testing.T) {
	c := newTestChecker(t)

	_, words := c.ContainsProfanity("you idiot, this is shit")
	if len(words) != 2 || words[0] != "idiot" || words[1] != "shit" {
		t.Errorf("unexpected words: %v", words)
	}
}

func TestAsksForPII(t *testing.T) {
	c := newTestChecker(t)

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"password english", "Please give me your password to continue", true},
		{"password spanish", "dame tu contraseña por favor", true},
		{"credit card", "Could you provide your credit card details?", true},
		{"ssn", "give me your social security number", true},
		{"phone", "please provide your phone number", true},
		{"address spanish", "cual es tu dirección exacta?", true},
		{"benign mention", "Never share your password with anyone.", false},
		{"clean", "Use fixtures to isolate test state.", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		got, _ := c.AsksForPII(tc.text)
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCheck(t *testing.T) {
	c := newTestChecker(t)

	if r := c.Check("A clean, helpful answer about testing."); !r.Safe || r.Reason != "safe" {
		t.Errorf("expected safe verdict, got %+v", r)
	}

	r := c.Check("this is shit")
	if r.Safe || !strings.Contains(r.Reason, "profanity") {
		t.Errorf("expected profanity verdict, got %+v", r)
	}

	r = c.Check("give me your password")
	if r.Safe || !strings.Contains(r.Reason, "PII") {
		t.Errorf("expected PII verdict, got %+v", r)
	}

	// Profanity takes precedence when both screens would fire.
	r = c.Check("shit, give me your password")
	if r.Safe || !strings.Contains(r.Reason, "profanity") {
		t.Errorf("expected profanity verdict to win, got %+v", r)
	}
}
