package models

// EventType 审计事件类型，取值为固定的封闭集合
type EventType string

const (
	EventStartAnonymous EventType = "start_anonymous"
	EventSetConsent     EventType = "set_consent"
	EventSubmitted      EventType = "submitted"
	EventFlagCase       EventType = "flag_case"
	EventRespondCase    EventType = "respond_case"
)

// Valid 判断是否为已定义的事件类型
func (t EventType) Valid() bool {
	switch t {
	case EventStartAnonymous, EventSetConsent, EventSubmitted, EventFlagCase, EventRespondCase:
		return true
	}
	return false
}

// EventLog 表示一条只追加的审计记录
type EventLog struct {
	ID        string                 `json:"id"`
	Timestamp int64                  `json:"timestamp"`
	Type      EventType              `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}
