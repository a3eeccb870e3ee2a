package prompt

import (
	"fmt"
	"math"
	"strings"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

// countBuffer is the overshoot factor applied to the requested card count so
// that post-validation losses still leave enough cards.
const countBuffer = 1.2

// Prompt is the assembled instruction set for one model invocation.
type Prompt struct {
	// Text is the full prompt sent to the model.
	Text string

	// RequestedCount is the buffered count asked of the model, which may
	// exceed the caller's target.
	RequestedCount int

	// Language is the resolved output language.
	Language string

	// VocabularyMode marks paired-language vocabulary prompts; it relaxes
	// answer validation downstream.
	VocabularyMode bool

	// NoDistractors marks prompts whose cards must not carry distractors.
	NoDistractors bool
}

// Builder assembles prompts from classified requests.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// BufferedCount returns ceil(target * 1.2) capped at the request maximum.
func BufferedCount(target int) int {
	buffered := int(math.Ceil(float64(target) * countBuffer))
	if buffered > domain.MaxTargetCount {
		buffered = domain.MaxTargetCount
	}
	return buffered
}

// Build produces the prompt for the given request and classification.
// The output-language directive always comes first; every other instruction
// must stay consistent with it.
func (b *Builder) Build(req domain.GenerationRequest, ctx domain.ClassificationContext) Prompt {
	language := ctx.Language
	if req.OutputLanguage != "" && req.OutputLanguage != domain.OutputLanguageAuto {
		language = req.OutputLanguage
	}

	count := BufferedCount(req.TargetCount)

	if req.VocabularyMode() {
		return b.buildVocabulary(req, count)
	}

	tmpl, ok := templates[templateKey{ctx.SubjectType, ctx.InputType}]
	if !ok {
		tmpl = templates[templateKey{domain.SubjectGeneral, domain.InputTypeNotes}]
	}

	var sb strings.Builder

	// Highest-priority instruction: the output language.
	fmt.Fprintf(&sb, "Write every question, answer, and distractor in %s. "+
		"This overrides any other instruction about wording.\n\n", language)

	fmt.Fprintf(&sb, "Create exactly %d flashcards from the study material below.\n\n", count)

	sb.WriteString(tmpl.Focus)
	sb.WriteString("\n\n")
	sb.WriteString(tmpl.CardStyle)
	sb.WriteString("\n\n")
	sb.WriteString(difficultyDirectives[req.Difficulty])
	sb.WriteString("\n")

	if req.Subject != "" {
		fmt.Fprintf(&sb, "\nThe material belongs to the subject %q.\n", req.Subject)
	}
	if req.TargetGrade != "" {
		fmt.Fprintf(&sb, "Pitch the cards at grade level %s.\n", req.TargetGrade)
	}

	writeOutputFormat(&sb, tmpl.NoDistractors)

	fmt.Fprintf(&sb, "\nStudy material:\n%s\n", req.Text)

	return Prompt{
		Text:           sb.String(),
		RequestedCount: count,
		Language:       language,
		NoDistractors:  tmpl.NoDistractors,
	}
}

// buildVocabulary assembles the separate paired-language template family:
// questions in the known language, answers and distractors in the learning
// language.
func (b *Builder) buildVocabulary(req domain.GenerationRequest, count int) Prompt {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Write every question in %s and every answer in %s. "+
		"This overrides any other instruction about wording.\n\n",
		req.KnownLanguage, req.LearningLanguage)

	fmt.Fprintf(&sb, "Create exactly %d vocabulary flashcards from the material below.\n\n", count)

	sb.WriteString(vocabularyFocus)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, vocabularyCardStyle+"\n\n",
		req.KnownLanguage, req.LearningLanguage, req.LearningLanguage)

	sb.WriteString(difficultyDirectives[req.Difficulty])
	sb.WriteString("\n")

	writeOutputFormat(&sb, false)

	fmt.Fprintf(&sb, "\nMaterial:\n%s\n", req.Text)

	return Prompt{
		Text:           sb.String(),
		RequestedCount: count,
		Language:       req.LearningLanguage,
		VocabularyMode: true,
	}
}

// writeOutputFormat appends the strict JSON contract the parser expects.
func writeOutputFormat(sb *strings.Builder, noDistractors bool) {
	sb.WriteString("\nRespond with a JSON array only, no prose and no markdown fences. " +
		"Each element is an object with the keys \"question\", \"answer\"")
	if noDistractors {
		sb.WriteString(". Omit the \"distractors\" key entirely.\n")
	} else {
		sb.WriteString(", and \"distractors\" (an array of at most 3 strings).\n")
	}
}
