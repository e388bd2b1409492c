package locale

import "github.com/admin/jyotish/vedic-client/internal/domain"

type localizable interface {
	~string | ~[]string
}

// Select выбирает значение для языка по одному листовому полю:
// вариант на хинди, если язык hi и вариант не пуст, иначе основной.
func Select[T localizable](lang domain.Language, primary, hindi T) T {
	if lang == domain.LanguageHindi && len(hindi) > 0 {
		return hindi
	}
	return primary
}
