package locale

import (
	"embed"
	"fmt"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

// Resolver отображает ключи интерфейса в локализованный текст
type Resolver struct {
	tables map[domain.Language]map[string]string
}

// NewResolver загружает встроенные таблицы en и hi
func NewResolver() (*Resolver, error) {
	r := &Resolver{tables: make(map[domain.Language]map[string]string)}
	for _, lang := range []domain.Language{domain.LanguageEnglish, domain.LanguageHindi} {
		raw, err := tablesFS.ReadFile("tables/" + string(lang) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read locale table %s: %w", lang, err)
		}
		table := make(map[string]string)
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("failed to parse locale table %s: %w", lang, err)
		}
		r.tables[lang] = table
	}
	return r, nil
}

// MustNewResolver паникует, если встроенные таблицы повреждены
func MustNewResolver() *Resolver {
	r, err := NewResolver()
	if err != nil {
		panic(err)
	}
	return r
}

// NewResolverFromTables собирает резолвер из готовых таблиц (для тестов и CLI)
func NewResolverFromTables(tables map[domain.Language]map[string]string) *Resolver {
	r := &Resolver{tables: make(map[domain.Language]map[string]string, len(tables))}
	for lang, table := range tables {
		copied := make(map[string]string, len(table))
		for k, v := range table {
			copied[k] = v
		}
		r.tables[lang] = copied
	}
	return r
}

// Resolve возвращает текст ключа; при отсутствии ключа возвращается сам ключ
func (r *Resolver) Resolve(lang domain.Language, key string) string {
	if r == nil {
		return key
	}
	if text, ok := r.tables[lang][key]; ok && text != "" {
		return text
	}
	return key
}
