package domain

import "strings"

// Language поддерживаемый язык интерфейса
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// Next возвращает следующий язык в цикле переключения (en -> hi -> en)
func (l Language) Next() Language {
	switch l {
	case LanguageHindi:
		return LanguageEnglish
	default:
		return LanguageHindi
	}
}

func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageHindi
}

// ParseLanguage разбирает тег языка, неизвестные теги приводятся к английскому
func ParseLanguage(tag string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(tag)))
	if !lang.IsValid() {
		return LanguageEnglish
	}
	return lang
}
