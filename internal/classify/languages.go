package classify

import "unicode"

// scriptRange ties a Unicode range table to the language it confidently
// identifies. Mixed-script text resolves to the first range reaching the
// threshold, checked in declaration order.
type scriptRange struct {
	language string
	table    *unicode.RangeTable
}

// Kana before Han so Japanese text with kanji still resolves to Japanese.
var scriptRanges = []scriptRange{
	{"Japanese", unicode.Hiragana},
	{"Japanese", unicode.Katakana},
	{"Korean", unicode.Hangul},
	{"Chinese", unicode.Han},
	{"Russian", unicode.Cyrillic},
	{"Arabic", unicode.Arabic},
	{"Greek", unicode.Greek},
	{"Hebrew", unicode.Hebrew},
	{"Hindi", unicode.Devanagari},
}

// latinProfile scores one Latin-script candidate language: common short
// words and characteristic diacritics.
type latinProfile struct {
	language   string
	keywords   []string
	diacritics []rune
}

var latinProfiles = []latinProfile{
	{
		language: "English",
		keywords: []string{
			"the", "and", "is", "are", "was", "were", "with", "that", "this",
			"from", "have", "has", "what", "which", "their", "would", "about",
		},
	},
	{
		language: "French",
		keywords: []string{
			"le", "la", "les", "des", "une", "est", "sont", "dans", "pour",
			"avec", "que", "qui", "pas", "nous", "vous", "cette", "mais", "sur",
		},
		diacritics: []rune{'é', 'è', 'ê', 'à', 'ç', 'ù', 'î', 'ô', 'û'},
	},
	{
		language: "Spanish",
		keywords: []string{
			"el", "la", "los", "las", "una", "es", "son", "en", "por", "para",
			"con", "que", "como", "pero", "nosotros", "esta", "este", "muy",
		},
		diacritics: []rune{'ñ', 'á', 'í', 'ó', 'ú', '¿', '¡'},
	},
	{
		language: "German",
		keywords: []string{
			"der", "die", "das", "und", "ist", "sind", "ein", "eine", "nicht",
			"mit", "von", "für", "auf", "werden", "haben", "dass", "auch", "sich",
		},
		diacritics: []rune{'ä', 'ö', 'ü', 'ß'},
	},
	{
		language: "Italian",
		keywords: []string{
			"il", "lo", "gli", "una", "che", "non", "per", "con", "sono",
			"della", "delle", "questo", "questa", "anche", "come", "più",
		},
		diacritics: []rune{'à', 'è', 'ì', 'ò', 'ù'},
	},
	{
		language: "Portuguese",
		keywords: []string{
			"o", "os", "um", "uma", "que", "não", "para", "com", "são",
			"como", "mais", "isso", "este", "esta", "pelo", "pela",
		},
		diacritics: []rune{'ã', 'õ', 'ç', 'á', 'é', 'ê', 'ô'},
	},
	{
		language: "Dutch",
		keywords: []string{
			"de", "het", "een", "van", "en", "niet", "met", "voor", "zijn",
			"dat", "deze", "ook", "maar", "naar", "wordt", "worden",
		},
		diacritics: []rune{'ĳ'},
	},
	{
		language: "Norwegian",
		keywords: []string{
			"og", "det", "som", "en", "av", "til", "med", "ikke", "for",
			"på", "var", "han", "hun", "å", "skal", "kan",
		},
		diacritics: []rune{'æ', 'ø', 'å'},
	},
	{
		language: "Swedish",
		keywords: []string{
			"och", "det", "som", "en", "av", "till", "med", "inte", "för",
			"på", "är", "att", "den", "ett", "ska", "kan",
		},
		diacritics: []rune{'å', 'ä', 'ö'},
	},
	{
		language: "Danish",
		keywords: []string{
			"og", "det", "som", "en", "af", "til", "med", "ikke", "for",
			"på", "er", "at", "den", "et", "skal", "kan",
		},
		diacritics: []rune{'æ', 'ø', 'å'},
	},
}
