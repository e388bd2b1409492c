package locale

import (
	"sync"

	"github.com/admin/jyotish/vedic-client/internal/domain"
)

// Context явный контекст локали, передаётся в каждую функцию рендеринга
type Context struct {
	Lang     domain.Language
	resolver *Resolver
}

func NewContext(lang domain.Language, resolver *Resolver) Context {
	if !lang.IsValid() {
		lang = domain.LanguageEnglish
	}
	return Context{Lang: lang, resolver: resolver}
}

// T переводит ключ в активном языке контекста
func (c Context) T(key string) string {
	return c.resolver.Resolve(c.Lang, key)
}

func (c Context) Resolver() *Resolver {
	return c.resolver
}

// Hindi сообщает, что выбран хинди
func (c Context) Hindi() bool {
	return c.Lang == domain.LanguageHindi
}

// Switcher хранит активный язык клиента и переключает его
type Switcher struct {
	mu       sync.RWMutex
	lang     domain.Language
	resolver *Resolver
}

func NewSwitcher(initial domain.Language, resolver *Resolver) *Switcher {
	if !initial.IsValid() {
		initial = domain.LanguageEnglish
	}
	return &Switcher{lang: initial, resolver: resolver}
}

// Toggle переводит активный язык в следующее состояние и возвращает его
func (s *Switcher) Toggle() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = s.lang.Next()
	return s.lang
}

func (s *Switcher) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Context снимок текущего состояния для одного рендеринга
func (s *Switcher) Context() Context {
	return NewContext(s.Language(), s.resolver)
}
