package middleware

import (
	"strings"

	"pack-panel/backend/common/i18n"

	"github.com/gin-gonic/gin"
)

// LangMiddleware 注入 lang 到 gin context 与 request context
func LangMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = i18n.DefaultLang
		} else {
			// 只取第一个语言
			lang = strings.Split(lang, ",")[0]
		}
		lang = i18n.NormalizeLang(lang)
		c.Set("lang", lang)
		c.Request = c.Request.WithContext(i18n.WithLang(c.Request.Context(), lang))
		c.Next()
	}
}
