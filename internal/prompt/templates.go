package prompt

import "github.com/nathaniel1232/Studymaxx-sub002/internal/domain"

// templateKey selects an instruction variant. Difficulty is interpolated
// into the variant rather than multiplying the table.
type templateKey struct {
	Subject domain.SubjectType
	Input   domain.InputType
}

// template is one fixed instruction variant. Focus describes what to extract
// from the material; CardStyle describes how to shape each card.
type template struct {
	Focus     string
	CardStyle string
	// NoDistractors suppresses multiple-choice options (math mode).
	NoDistractors bool
}

var templates = map[templateKey]template{
	{domain.SubjectGeneral, domain.InputTypeNotes}: {
		Focus: "Extract the key facts, definitions, and relationships from the study notes below. " +
			"Cover the material evenly rather than clustering on the first section.",
		CardStyle: "Each card asks about one fact or concept. Questions must be answerable " +
			"from the material alone. Provide up to 3 plausible but clearly wrong distractors per card.",
	},
	{domain.SubjectGeneral, domain.InputTypeObjectives}: {
		Focus: "The material below is a list of learning objectives. Create cards that test " +
			"whether each objective has been met, expanding objectives into concrete questions.",
		CardStyle: "Each card targets exactly one objective. Phrase questions the way an exam " +
			"would. Provide up to 3 plausible but clearly wrong distractors per card.",
	},
	{domain.SubjectMath, domain.InputTypeNotes}: {
		Focus: "The material below is mathematical. Create cards that exercise the methods, " +
			"formulas, and worked examples it contains, including concrete computations.",
		CardStyle: "Each card poses one problem or asks for one definition or formula. " +
			"Show the final result in the answer, with the decisive step when helpful. " +
			"Do not include distractors.",
		NoDistractors: true,
	},
	{domain.SubjectMath, domain.InputTypeObjectives}: {
		Focus: "The material below lists mathematical learning objectives. Create cards with " +
			"concrete exercises that test each objective.",
		CardStyle: "Each card poses one computation or proof-sketch question per objective. " +
			"Show the final result in the answer. Do not include distractors.",
		NoDistractors: true,
	},
	{domain.SubjectLanguageLearning, domain.InputTypeNotes}: {
		Focus: "The material below teaches a language. Create cards that drill the vocabulary, " +
			"grammar rules, and example sentences it contains.",
		CardStyle: "Mix vocabulary cards (word on the question side, meaning on the answer side) " +
			"with grammar cards (rule or transformation questions). Provide up to 3 distractors " +
			"of the same word class per card.",
	},
	{domain.SubjectLanguageLearning, domain.InputTypeObjectives}: {
		Focus: "The material below lists language-learning objectives. Create cards that drill " +
			"each objective with concrete usage questions.",
		CardStyle: "Each card tests one objective through a fill-in, transformation, or " +
			"translation question. Provide up to 3 distractors of the same word class per card.",
	},
}

// difficultyDirectives interpolate the requested difficulty into any variant.
var difficultyDirectives = map[domain.Difficulty]string{
	domain.DifficultyEasy: "Keep questions simple and direct: single facts, basic definitions, " +
		"and straightforward recall.",
	domain.DifficultyMedium: "Mix recall with understanding: include some questions that require " +
		"connecting two facts or applying a definition.",
	domain.DifficultyHard: "Favor demanding questions: multi-step reasoning, edge cases, and " +
		"questions that combine several parts of the material.",
}

// vocabularyTemplate is the separate family used when the caller requests
// paired-language vocabulary cards. It ignores the subject/input table.
const vocabularyFocus = "The material below contains vocabulary to learn. Build translation " +
	"flashcards from it."

const vocabularyCardStyle = "Every question is phrased in %s and asks for a word or expression. " +
	"Every answer is the corresponding word or expression in %s. Distractors, when given, must " +
	"also be in %s and belong to the same word class as the answer."
