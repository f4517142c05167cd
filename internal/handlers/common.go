package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/student_support/internal/i18n"
	"golang.org/x/text/language"
)

// Localizer 根据 lang 查询参数和 Accept-Language 请求头选择响应语言
type Localizer struct {
	fallback language.Tag
}

// NewLocalizer 创建 Localizer，defaultLang 无法识别时使用英语
func NewLocalizer(defaultLang string) Localizer {
	tag, _ := i18n.Parse(defaultLang)
	return Localizer{fallback: tag}
}

// Tag 返回本次请求使用的语言
func (l Localizer) Tag(c *gin.Context) language.Tag {
	return i18n.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"), l.fallback)
}

// T 返回 key 在本次请求语言下的文本
func (l Localizer) T(c *gin.Context, key string) string {
	return i18n.T(l.Tag(c), key)
}
