package email

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"
	"strings"
	"time"
)

// SMTPConfig holds the SMTP server configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Sender    string
	Recipient string // 接收危机提醒的辅导员邮箱
}

// LoadSMTPConfigFromEnv loads SMTP configuration from environment variables
func LoadSMTPConfigFromEnv() (*SMTPConfig, error) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	sender := os.Getenv("SMTP_SENDER_EMAIL")
	recipient := os.Getenv("COUNSELOR_EMAIL")

	if host == "" || portStr == "" || sender == "" || recipient == "" {
		return nil, fmt.Errorf("SMTP_HOST, SMTP_PORT, SMTP_SENDER_EMAIL and COUNSELOR_EMAIL must be set")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}

	return &SMTPConfig{
		Host:      host,
		Port:      port,
		Username:  username,
		Password:  password,
		Sender:    sender,
		Recipient: recipient,
	}, nil
}

// CrisisAlert 是发送给辅导员的危机个案摘要，不包含学生身份信息
type CrisisAlert struct {
	SubmissionID string
	IssueType    string
	Urgency      string
	ResponsePref string
	SubmittedAt  time.Time
	DashboardURL string
}

// Notifier 发送危机个案提醒
type Notifier interface {
	NotifyCrisis(alert CrisisAlert) error
}

// NopNotifier 在未配置 SMTP 时使用，什么也不做
type NopNotifier struct{}

// NotifyCrisis implements Notifier
func (NopNotifier) NotifyCrisis(CrisisAlert) error { return nil }

// SMTPNotifier 通过 SMTP 发送提醒邮件
type SMTPNotifier struct {
	config *SMTPConfig
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates a notifier backed by net/smtp
func NewSMTPNotifier(config *SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{config: config, send: smtp.SendMail}
}

// NotifyCrisis sends a crisis alert email to the configured counselor.
func (n *SMTPNotifier) NotifyCrisis(alert CrisisAlert) error {
	msg := BuildCrisisMessage(n.config.Sender, n.config.Recipient, alert)

	// 服务器无需认证时 Username 为空，此时不使用 PlainAuth
	var auth smtp.Auth
	if n.config.Username != "" {
		auth = smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	}

	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	if err := n.send(addr, auth, n.config.Sender, []string{n.config.Recipient}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// BuildCrisisMessage 构造带 CRLF 头部的 HTML 邮件
func BuildCrisisMessage(sender, recipient string, alert CrisisAlert) []byte {
	subject := "【紧急】新的危机求助个案 / New crisis case"
	body := fmt.Sprintf(`
<html>
<body>
    <p>您好，</p>
    <p>系统收到一条标记为危机的匿名求助，学生已同意立即通知。</p>
    <ul>
        <li>个案编号: %s</li>
        <li>问题类型: %s</li>
        <li>紧急程度: %s</li>
        <li>回复方式: %s</li>
        <li>提交时间: %s</li>
    </ul>
    <p>请尽快在辅导员面板中处理: <a href="%s">%s</a></p>
    <p><small>（这是一封自动发送的邮件，请勿直接回复。）</small></p>
</body>
</html>
`, alert.SubmissionID, alert.IssueType, alert.Urgency, alert.ResponsePref,
		alert.SubmittedAt.Format(time.RFC3339), alert.DashboardURL, alert.DashboardURL)

	return []byte(strings.Join([]string{
		"To: " + recipient,
		"From: " + sender,
		"Subject: " + subject,
		"MIME-version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n"))
}
