package dashboard

import "github.com/student_support/internal/models"

// Summary 是面板顶部的计数摘要
type Summary struct {
	Total     int                             `json:"total"`
	Crisis    int                             `json:"crisis"`
	ByStatus  map[models.SubmissionStatus]int `json:"byStatus"`
	ByUrgency map[models.Urgency]int          `json:"byUrgency"`
	ByConsent map[models.ConsentLevel]int     `json:"byConsent"`
}

// Summarize 统计各状态、紧急程度和同意级别下的记录数
func Summarize(list []models.Submission) Summary {
	sum := Summary{
		Total: len(list),
		ByStatus: map[models.SubmissionStatus]int{
			models.StatusNew: 0, models.StatusFlagged: 0, models.StatusResponded: 0,
		},
		ByUrgency: map[models.Urgency]int{
			models.UrgencyLow: 0, models.UrgencyMedium: 0, models.UrgencyHigh: 0,
		},
		ByConsent: map[models.ConsentLevel]int{
			models.ConsentImmediate: 0, models.ConsentCrisisOnly: 0, models.ConsentNone: 0,
		},
	}
	for _, s := range list {
		sum.ByStatus[s.Status]++
		sum.ByUrgency[s.Urgency]++
		sum.ByConsent[s.ConsentLevel]++
		if s.CrisisFlag {
			sum.Crisis++
		}
	}
	return sum
}
