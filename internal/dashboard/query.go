// Package dashboard 实现辅导员个案面板的内存筛选、排序、统计和导出。
// 这里只有纯函数，输入列表不会被修改。
package dashboard

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/student_support/internal/models"
)

// FilterAll 表示不按该维度筛选
const FilterAll = "all"

// SortMode 定义了列表排序方式
type SortMode string

const (
	SortNewest  SortMode = "newest"
	SortOldest  SortMode = "oldest"
	SortUrgency SortMode = "urgency"
)

// Params 是面板的查询条件，空值等同于 all / newest
type Params struct {
	Urgency string   `form:"urgency" json:"urgency" binding:"omitempty,oneof=all low medium high"`
	Consent string   `form:"consent" json:"consent" binding:"omitempty,oneof=all immediate crisis_only none"`
	Search  string   `form:"search" json:"search"`
	Sort    SortMode `form:"sort" json:"sort" binding:"omitempty,oneof=newest oldest urgency"`
}

// Apply 先筛选再排序，返回新的切片
func Apply(list []models.Submission, p Params) []models.Submission {
	rows := Filter(list, p)
	Sort(rows, p.Sort)
	return rows
}

// Filter 返回满足紧急程度、同意级别和关键词条件的记录
func Filter(list []models.Submission, p Params) []models.Submission {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(p.Search))

	rows := make([]models.Submission, 0, len(list))
	for _, s := range list {
		if p.Urgency != "" && p.Urgency != FilterAll && string(s.Urgency) != p.Urgency {
			continue
		}
		if p.Consent != "" && p.Consent != FilterAll && string(s.ConsentLevel) != p.Consent {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(searchText(s)), needle) {
			continue
		}
		rows = append(rows, s)
	}
	return rows
}

// searchText 拼接参与关键词匹配的字段
func searchText(s models.Submission) string {
	return strings.Join([]string{
		s.IssueType,
		s.Message,
		s.ID,
		string(s.ConsentLevel),
		string(s.Status),
	}, " ")
}

// Sort 原地稳定排序；未知的排序方式按 newest 处理
func Sort(rows []models.Submission, mode SortMode) {
	switch mode {
	case SortOldest:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Timestamp < rows[j].Timestamp
		})
	case SortUrgency:
		sort.SliceStable(rows, func(i, j int) bool {
			ri, rj := rows[i].Urgency.Rank(), rows[j].Urgency.Rank()
			if ri != rj {
				return ri > rj
			}
			return rows[i].Timestamp > rows[j].Timestamp
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Timestamp > rows[j].Timestamp
		})
	}
}
