package places

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	// MaxSuggestions жёсткий лимит подсказок; это не пагинация
	MaxSuggestions = 10
	// MinQueryLength минимальная длина запроса (в символах), с которой показываются подсказки
	MinQueryLength = 2
)

// Search ищет подстроку query в названиях каталога без учёта регистра.
// Порядок результата совпадает с порядком каталога. Короткий запрос даёт nil.
// Пробелы запроса входят в искомую подстроку: "new " не совпадает с "Newark".
func Search(catalog []string, query string) []string {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil
	}

	folder := cases.Fold()
	needle := folder.String(query)

	var result []string
	for _, name := range catalog {
		if strings.Contains(folder.String(name), needle) {
			result = append(result, name)
			if len(result) == MaxSuggestions {
				break
			}
		}
	}
	return result
}
