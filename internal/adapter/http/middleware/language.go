package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/le0623/slack-app-demo/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware resolves the response language from the
// Accept-Language header. Only the primary subtag of the first entry
// is kept ("fr-FR,fr;q=0.9" resolves to "fr"); no header means
// English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, primaryLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func primaryLanguage(header string) string {
	lang := header
	if i := strings.IndexAny(lang, ",;"); i >= 0 {
		lang = lang[:i]
	}
	if i := strings.Index(lang, "-"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.TrimSpace(strings.ToLower(lang))
	if lang == "" {
		return translator.LanguageEn
	}
	return lang
}
