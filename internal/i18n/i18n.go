// Package i18n 提供接口响应消息的静态翻译查找 (en / zh)。
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// 消息键
const (
	KeyDraftStarted   = "intake.started"
	KeyDraftUpdated   = "intake.updated"
	KeyDraftReset     = "intake.reset"
	KeyConsentSaved   = "consent.saved"
	KeySubmitted      = "confirm.submitted"
	KeyCaseFlagged    = "dashboard.flagged"
	KeyCaseResponded  = "dashboard.responded"
	KeyDataCleared    = "dashboard.cleared"
	KeyDataSeeded     = "dashboard.seeded"
	KeyNoSubmissions  = "dashboard.noSubmissions"
	KeyQRDescription  = "share.scanDescription"
	KeyInvalidRequest = "app.invalidRequest"
	KeyInternalError  = "app.error"
)

// Supported 是支持的语言，第一个为默认语言
var Supported = []language.Tag{language.English, language.Chinese}

var translations = map[language.Tag]map[string]string{
	language.English: {
		KeyDraftStarted:   "Intake started.",
		KeyDraftUpdated:   "Your answers have been saved.",
		KeyDraftReset:     "Intake reset.",
		KeyConsentSaved:   "Consent preference saved.",
		KeySubmitted:      "Your request has been submitted.",
		KeyCaseFlagged:    "Case flagged.",
		KeyCaseResponded:  "Case marked responded.",
		KeyDataCleared:    "All local data cleared.",
		KeyDataSeeded:     "Seeded 3 example submissions.",
		KeyNoSubmissions:  "No submissions yet. Try seeding demo data.",
		KeyQRDescription:  "Scan with your phone to access the system directly",
		KeyInvalidRequest: "Invalid request parameters",
		KeyInternalError:  "Error",
	},
	language.Chinese: {
		KeyDraftStarted:   "已开始匿名求助流程。",
		KeyDraftUpdated:   "您的回答已保存。",
		KeyDraftReset:     "已重置求助流程。",
		KeyConsentSaved:   "同意偏好已保存。",
		KeySubmitted:      "您的请求已提交。",
		KeyCaseFlagged:    "案例已标记",
		KeyCaseResponded:  "案例已回复",
		KeyDataCleared:    "所有本地数据已清除。",
		KeyDataSeeded:     "已生成3个示例提交。",
		KeyNoSubmissions:  "暂无提交。尝试生成演示数据。",
		KeyQRDescription:  "使用手机扫描二维码即可直接访问系统",
		KeyInvalidRequest: "请求参数无效",
		KeyInternalError:  "错误",
	},
}

var (
	cat     = mustBuildCatalog()
	matcher = language.NewMatcher(Supported)
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic("i18n: register " + tag.String() + " " + key + ": " + err.Error())
			}
		}
	}
	return b
}

// Default 返回默认语言
func Default() language.Tag {
	return Supported[0]
}

// Parse 将 "en"、"zh"、"zh-CN" 等解析为支持的语言
func Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default(), false
	}
	return Supported[idx], true
}

// Resolve 依次使用 lang 参数、Accept-Language 请求头和 fallback 决定语言
func Resolve(lang, acceptLanguage string, fallback language.Tag) language.Tag {
	if tag, ok := Parse(lang); ok {
		return tag
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return Supported[idx]
			}
		}
	}
	return fallback
}

// Printer 返回使用本包消息目录的 printer
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// T 返回 key 在指定语言下的文本，未注册的 key 原样返回
func T(tag language.Tag, key string) string {
	return Printer(tag).Sprintf(key)
}
