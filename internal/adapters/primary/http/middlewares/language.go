package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
)

const localeKey = "locale"

// Language кладёт в контекст запроса locale.Context: ?lang= имеет приоритет над активным языком
func Language(switcher *locale.Switcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		lc := switcher.Context()
		if raw, ok := c.GetQuery("lang"); ok {
			lc = locale.NewContext(domain.ParseLanguage(raw), lc.Resolver())
		}
		c.Set(localeKey, lc)
		c.Next()
	}
}

// Locale достаёт locale.Context запроса; без middleware возвращает английский
func Locale(c *gin.Context) locale.Context {
	if v, ok := c.Get(localeKey); ok {
		if lc, ok := v.(locale.Context); ok {
			return lc
		}
	}
	return locale.NewContext(domain.LanguageEnglish, nil)
}
