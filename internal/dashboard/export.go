package dashboard

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/student_support/internal/models"
)

// CSVHeader 是 CSV 导出的固定表头
var CSVHeader = []string{
	"id",
	"timestamp",
	"mode",
	"student_initiated",
	"issueType",
	"urgency",
	"responsePref",
	"consentLevel",
	"crisisFlag",
	"message",
	"status",
}

// ExportJSON 以两个空格缩进序列化列表，空列表输出 []
func ExportJSON(rows []models.Submission) ([]byte, error) {
	if rows == nil {
		rows = []models.Submission{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ExportCSV 生成表头在前、以 \n 分隔的 CSV 文本
func ExportCSV(rows []models.Submission) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))
	for _, s := range rows {
		record := []string{
			s.ID,
			strconv.FormatInt(s.Timestamp, 10),
			string(s.Mode),
			strconv.FormatBool(s.StudentInitiated()),
			s.IssueType,
			string(s.Urgency),
			string(s.ResponsePref),
			string(s.ConsentLevel),
			strconv.FormatBool(s.CrisisFlag),
			s.Message,
			string(s.Status),
		}
		for i, v := range record {
			record[i] = csvEscape(v)
		}
		lines = append(lines, strings.Join(record, ","))
	}
	return strings.Join(lines, "\n")
}

// csvEscape 仅在包含逗号、引号或换行时加引号，并将内部引号加倍
func csvEscape(v string) string {
	if !strings.ContainsAny(v, ",\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
