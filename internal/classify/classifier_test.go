package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	classifier := New("")

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "french prose",
			text: "La photosynthèse est le processus par lequel les plantes transforment " +
				"la lumière du soleil en énergie chimique dans leurs cellules pour produire du glucose",
			want: "French",
		},
		{
			name: "spanish prose",
			text: "El sistema solar es el conjunto de planetas que giran alrededor del sol " +
				"y es una parte muy pequeña de la galaxia",
			want: "Spanish",
		},
		{
			name: "german prose",
			text: "Die Zelle ist die kleinste Einheit des Lebens und alle Lebewesen sind " +
				"aus Zellen aufgebaut, die sich teilen können",
			want: "German",
		},
		{
			name: "english prose",
			text: "The cell is the smallest unit of life and all living organisms are built " +
				"from cells that divide and specialize",
			want: "English",
		},
		{
			name: "russian script fast path",
			text: "Клетка является наименьшей единицей жизни",
			want: "Russian",
		},
		{
			name: "japanese kana beats han ranges",
			text: "細胞は生命の最小単位です。すべての生物は細胞からできています。",
			want: "Japanese",
		},
		{
			name: "chinese han",
			text: "细胞是生命的最小单位，所有生物都由细胞构成。",
			want: "Chinese",
		},
		{
			name: "arabic script",
			text: "الخلية هي أصغر وحدة في الحياة",
			want: "Arabic",
		},
		{
			name: "ambiguous latin falls back",
			text: "lorem ipsum dolor sit amet consectetur adipiscing elit sed tempor",
			want: "English",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := classifier.Classify(tc.text)
			assert.Equal(t, tc.want, ctx.Language)
		})
	}
}

func TestDetectLanguageConfiguredFallback(t *testing.T) {
	t.Parallel()

	classifier := New("Norwegian")
	ctx := classifier.Classify("lorem ipsum dolor sit amet consectetur adipiscing elit")
	assert.Equal(t, "Norwegian", ctx.Language)
}

func TestDetectInputType(t *testing.T) {
	t.Parallel()

	classifier := New("")

	t.Run("objective phrase wins regardless of layout", func(t *testing.T) {
		t.Parallel()
		ctx := classifier.Classify("By the end of this unit you should be able to describe osmosis in detail.")
		assert.Equal(t, domain.InputTypeObjectives, ctx.InputType)
	})

	t.Run("bulleted list over the ratio threshold", func(t *testing.T) {
		t.Parallel()
		text := "Chapter overview\n" +
			"- define the cell membrane\n" +
			"- describe passive transport\n" +
			"1. explain diffusion gradients\n" +
			"2. compare osmosis and diffusion\n"
		ctx := classifier.Classify(text)
		assert.Equal(t, domain.InputTypeObjectives, ctx.InputType)
	})

	t.Run("plain notes", func(t *testing.T) {
		t.Parallel()
		text := "The cell membrane is a phospholipid bilayer.\n" +
			"It separates the cell interior from the outside environment.\n" +
			"Transport across it can be passive or active.\n"
		ctx := classifier.Classify(text)
		assert.Equal(t, domain.InputTypeNotes, ctx.InputType)
	})
}

func TestDetectSubjectType(t *testing.T) {
	t.Parallel()

	classifier := New("")

	t.Run("math via equation patterns and keywords", func(t *testing.T) {
		t.Parallel()
		text := "Solve the equation 3x + 5 = 20. Then calculate the slope of " +
			"the line y = 2x + 1 and simplify the fraction 4/8."
		ctx := classifier.Classify(text)
		assert.Equal(t, domain.SubjectMath, ctx.SubjectType)
	})

	t.Run("language learning via grammar vocabulary", func(t *testing.T) {
		t.Parallel()
		text := "Practice the past tense conjugation of regular verbs. " +
			"Review the vocabulary list and translate each phrase into Spanish."
		ctx := classifier.Classify(text)
		assert.Equal(t, domain.SubjectLanguageLearning, ctx.SubjectType)
	})

	t.Run("math has priority over language learning", func(t *testing.T) {
		t.Parallel()
		text := "Translate the word problem, then solve the equation 3x + 5 = 20 " +
			"using algebra. Calculate the slope and check the formula. " +
			"Review the vocabulary of geometric nouns and their pronunciation."
		ctx := classifier.Classify(text)
		assert.Equal(t, domain.SubjectMath, ctx.SubjectType)
	})

	t.Run("general by default", func(t *testing.T) {
		t.Parallel()
		text := "The French Revolution began in 1789 and reshaped European politics."
		ctx := classifier.Classify(text)
		assert.Equal(t, domain.SubjectGeneral, ctx.SubjectType)
	})
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	classifier := New("")
	text := "La photosynthèse transforme la lumière du soleil en énergie chimique pour les plantes"

	first := classifier.Classify(text)
	second := classifier.Classify(text)
	assert.Equal(t, first, second)
	assert.Equal(t, 13, first.WordCount)
}
