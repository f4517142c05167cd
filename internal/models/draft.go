package models

// HelpType 是确认页上学生选择的帮助类型
type HelpType string

const (
	HelpChat        HelpType = "chat"
	HelpAppointment HelpType = "appointment"
	HelpResources   HelpType = "resources"
)

// ResponsePref 将帮助类型映射为回复方式，未知类型返回 false
func (h HelpType) ResponsePref() (ResponsePref, bool) {
	switch h {
	case HelpChat:
		return ResponseMessage, true
	case HelpAppointment:
		return ResponseAppointment, true
	case HelpResources:
		return ResponseResources, true
	}
	return "", false
}

// Route 返回该帮助类型对应的前端后续页面
func (h HelpType) Route() string {
	switch h {
	case HelpChat:
		return "/chat"
	case HelpAppointment:
		return "/appointment"
	case HelpResources:
		return "/resources"
	}
	return "/"
}

// Draft 表示多步骤求助表单尚未提交时的草稿
type Draft struct {
	ID           string         `json:"id"`
	Mode         SubmissionMode `json:"mode"`
	DisplayName  string         `json:"displayName,omitempty"`
	IssueType    string         `json:"issueType,omitempty"`
	Urgency      Urgency        `json:"urgency,omitempty"`
	Message      string         `json:"message,omitempty"`
	ConsentLevel ConsentLevel   `json:"consentLevel,omitempty"`
	CreatedAt    int64          `json:"createdAt"`
}
