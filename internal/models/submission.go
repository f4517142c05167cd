package models

// SubmissionMode 定义了提交来源模式
type SubmissionMode string

const (
	ModeAnonymous SubmissionMode = "anonymous"
	ModeNamed     SubmissionMode = "named"
)

// Urgency 定义了学生自报的紧急程度，仅用于排序和筛选
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Rank 返回紧急程度的排序权重 (high=3, medium=2, low=1)，未知值为 0
func (u Urgency) Rank() int {
	switch u {
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	default:
		return 0
	}
}

// Valid 判断是否为已定义的紧急程度
func (u Urgency) Valid() bool {
	return u.Rank() > 0
}

// ResponsePref 定义了学生希望获得帮助的方式
type ResponsePref string

const (
	ResponseMessage     ResponsePref = "message"
	ResponseAppointment ResponsePref = "appointment"
	ResponseResources   ResponsePref = "resources"
)

// ConsentLevel 定义了是否以及何时通知监护人
type ConsentLevel string

const (
	ConsentImmediate  ConsentLevel = "immediate"
	ConsentCrisisOnly ConsentLevel = "crisis_only"
	ConsentNone       ConsentLevel = "none"
)

// Valid 判断是否为已定义的同意级别
func (c ConsentLevel) Valid() bool {
	switch c {
	case ConsentImmediate, ConsentCrisisOnly, ConsentNone:
		return true
	}
	return false
}

// SubmissionStatus 定义了个案处理状态
type SubmissionStatus string

const (
	StatusNew       SubmissionStatus = "new"
	StatusFlagged   SubmissionStatus = "flagged"
	StatusResponded SubmissionStatus = "responded"
)

// Valid 判断是否为已定义的个案状态
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusNew, StatusFlagged, StatusResponded:
		return true
	}
	return false
}

// CanTransitionTo 判断状态能否流转到 next。
// 只允许 new→flagged、new→responded、flagged→responded，状态不可回退。
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	switch next {
	case StatusFlagged:
		return s == StatusNew
	case StatusResponded:
		return s == StatusNew || s == StatusFlagged
	}
	return false
}

// Submission 表示一条匿名求助记录
type Submission struct {
	ID           string           `json:"id"`                    // UUID，创建后不变
	Timestamp    int64            `json:"timestamp"`             // 创建时间 (epoch 毫秒)
	Mode         SubmissionMode   `json:"mode"`                  // anonymous / named
	DisplayName  string           `json:"displayName,omitempty"` // 仅 named 模式
	IssueType    string           `json:"issueType"`             // 问题类型，自由文本
	Urgency      Urgency          `json:"urgency"`
	ResponsePref ResponsePref     `json:"responsePref"`
	ConsentLevel ConsentLevel     `json:"consentLevel"`
	CrisisFlag   bool             `json:"crisisFlag"`
	Message      string           `json:"message,omitempty"`
	Status       SubmissionStatus `json:"status"`
}

// StudentInitiated 当来源为匿名模式时为 true
func (s Submission) StudentInitiated() bool {
	return s.Mode == ModeAnonymous
}

// DeriveCrisisFlag 根据紧急程度推导危机标记
func DeriveCrisisFlag(u Urgency) bool {
	return u == UrgencyHigh
}
