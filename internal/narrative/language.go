package narrative

import "unicode"

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBangla  Language = "bn"
	LanguageMixed   Language = "mix"
)

const (
	banglaFirst = 0x0980
	banglaLast  = 0x09FF
)

// DetectLanguage classifies text by its share of Bangla and Latin letters.
// Punctuation and whitespace are ignored; empty text is English.
func DetectLanguage(text string) Language {
	var bangla, english, total int
	for _, r := range text {
		isBangla := r >= banglaFirst && r <= banglaLast
		if unicode.IsSpace(r) || !(isBangla || unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			continue
		}
		total++
		switch {
		case isBangla:
			bangla++
		case unicode.IsLetter(r):
			english++
		}
	}
	if total == 0 {
		return LanguageEnglish
	}
	switch {
	case float64(bangla)/float64(total) > 0.7:
		return LanguageBangla
	case float64(english)/float64(total) > 0.7:
		return LanguageEnglish
	default:
		return LanguageMixed
	}
}

func (l Language) instruction() string {
	switch l {
	case LanguageBangla:
		return "IMPORTANT: Respond in Bangla (বাংলা)."
	case LanguageMixed:
		return "IMPORTANT: Respond in Banglish (mix of English and Bangla as appropriate)."
	default:
		return "IMPORTANT: Respond in English."
	}
}
