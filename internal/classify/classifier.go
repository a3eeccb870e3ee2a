package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

// Scoring thresholds. These are heuristic calibration constants, not hard
// invariants; adjust against real material rather than treating them as part
// of the contract.
const (
	// scriptThreshold is the code-point count at which a non-Latin script
	// is a confident language match.
	scriptThreshold = 5

	// keywordPoints and diacriticPoints weight the Latin-script scorer.
	keywordPoints   = 2
	diacriticPoints = 1

	// minLanguageScore is the minimum winning score before falling back to
	// the configured default language.
	minLanguageScore = 3

	// bulletRatioThreshold is the list-line share above which text counts
	// as learning objectives.
	bulletRatioThreshold = 0.4

	// mathScoreThreshold and languageKeywordThreshold decide the subject.
	// Math pattern hits count double; math wins over language-learning
	// when both trigger.
	mathScoreThreshold       = 4
	languageKeywordThreshold = 3
)

// DefaultFallbackLanguage is used when no candidate reaches the minimum
// score and no fallback is configured.
const DefaultFallbackLanguage = "English"

var objectivePhrases = []string{
	"learning goal",
	"learning objective",
	"learning outcome",
	"you should know",
	"you should be able to",
	"be able to",
	"by the end of",
	"students will",
	"upon completion",
}

var mathKeywords = []string{
	"equation", "formula", "theorem", "solve", "calculate", "derivative",
	"integral", "fraction", "algebra", "geometry", "polynomial", "variable",
	"slope", "matrix", "vector", "probability", "exponent", "quadratic",
}

var mathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*[a-z]\s*[+\-*/=]`), // 3x + 5
	regexp.MustCompile(`\d+\s*[+\-*/=]\s*\d+`),   // 5 = 20
	regexp.MustCompile(`[a-z]\s*\^\s*\d`),        // x^2
	regexp.MustCompile(`[∑∫√π≤≥≠±]`),             // math symbols
	regexp.MustCompile(`\b\d+/\d+\b`),            // fractions
}

var languageLearningKeywords = []string{
	"grammar", "tense", "conjugation", "conjugate", "vocabulary",
	"translation", "translate", "pronunciation", "verb", "noun",
	"adjective", "adverb", "plural", "preposition", "idiom", "phrase",
}

var bulletLineRe = regexp.MustCompile(`^\s*([-*•‣◦]|\d+[.)]|[a-z][.)])\s+`)

// Classifier derives a ClassificationContext from raw text. The zero value
// is usable; FallbackLanguage defaults to English.
type Classifier struct {
	fallbackLanguage string
}

// New creates a Classifier with the given fallback language for
// low-confidence Latin-script text.
func New(fallbackLanguage string) *Classifier {
	if fallbackLanguage == "" {
		fallbackLanguage = DefaultFallbackLanguage
	}
	return &Classifier{fallbackLanguage: fallbackLanguage}
}

// Classify inspects the text and returns its language, input shape, subject
// domain, and word count. It is a pure function of its input.
func (c *Classifier) Classify(text string) domain.ClassificationContext {
	return domain.ClassificationContext{
		Language:    c.detectLanguage(text),
		InputType:   detectInputType(text),
		SubjectType: detectSubjectType(text),
		WordCount:   len(strings.Fields(text)),
	}
}

// detectLanguage takes the script-count fast path for non-Latin scripts and
// falls back to keyword/diacritic scoring for Latin text.
func (c *Classifier) detectLanguage(text string) string {
	counts := make(map[string]int, len(scriptRanges))
	for _, r := range text {
		for _, sr := range scriptRanges {
			if unicode.Is(sr.table, r) {
				counts[sr.language]++
				break
			}
		}
	}
	for _, sr := range scriptRanges {
		if counts[sr.language] >= scriptThreshold {
			return sr.language
		}
	}

	return c.scoreLatinLanguages(text)
}

func (c *Classifier) scoreLatinLanguages(text string) string {
	lower := strings.ToLower(text)
	words := make(map[string]int)
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	}) {
		words[w]++
	}

	bestLanguage := c.fallbackLanguage
	bestScore := 0

	for _, profile := range latinProfiles {
		score := 0
		for _, kw := range profile.keywords {
			score += keywordPoints * words[kw]
		}
		for _, d := range profile.diacritics {
			score += diacriticPoints * strings.Count(lower, string(d))
		}
		if score > bestScore {
			bestScore = score
			bestLanguage = profile.language
		}
	}

	if bestScore < minLanguageScore {
		return c.fallbackLanguage
	}
	return bestLanguage
}

// detectInputType decides between a learning-objectives list and free-form
// notes using the bullet-line ratio and a fixed objective vocabulary.
func detectInputType(text string) domain.InputType {
	lower := strings.ToLower(text)
	for _, phrase := range objectivePhrases {
		if strings.Contains(lower, phrase) {
			return domain.InputTypeObjectives
		}
	}

	lines := strings.Split(text, "\n")
	nonEmpty := 0
	bulleted := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nonEmpty++
		if bulletLineRe.MatchString(line) {
			bulleted++
		}
	}

	if nonEmpty > 0 && float64(bulleted)/float64(nonEmpty) > bulletRatioThreshold {
		return domain.InputTypeObjectives
	}
	return domain.InputTypeNotes
}

// detectSubjectType scores math and language-learning vocabularies against
// the text. Math has priority when both trigger.
func detectSubjectType(text string) domain.SubjectType {
	lower := strings.ToLower(text)

	mathScore := 0
	for _, kw := range mathKeywords {
		if strings.Contains(lower, kw) {
			mathScore++
		}
	}
	for _, pattern := range mathPatterns {
		mathScore += 2 * len(pattern.FindAllString(lower, -1))
	}
	if mathScore >= mathScoreThreshold {
		return domain.SubjectMath
	}

	languageScore := 0
	for _, kw := range languageLearningKeywords {
		if strings.Contains(lower, kw) {
			languageScore++
		}
	}
	if languageScore >= languageKeywordThreshold {
		return domain.SubjectLanguageLearning
	}

	return domain.SubjectGeneral
}
