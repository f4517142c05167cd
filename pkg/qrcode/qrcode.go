// Package qrcode 生成系统入口链接的二维码图片
package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

const (
	// DefaultSize 是默认的图片边长 (像素)
	DefaultSize = 512
	// MaxSize 限制接口可请求的最大边长
	MaxSize = 2048
	// MinSize 低于该值的二维码难以扫描
	MinSize = 64
)

var (
	ErrInvalidURL   = errors.New("无效的链接，必须是 http 或 https 的绝对地址")
	ErrInvalidSize  = fmt.Errorf("无效的图片尺寸，范围为 %d-%d", MinSize, MaxSize)
	ErrUnknownEnv   = errors.New("不支持的环境")
	ErrInvalidLevel = errors.New("无效的纠错级别，可选 L/M/Q/H")
)

// Environments 是各部署环境的系统入口地址
var Environments = map[string]string{
	"development": "http://localhost:5173",
	"production":  "https://deco-a2.vercel.app",
	"staging":     "https://staging.your-domain.com",
}

// EnvironmentNames 返回排序后的环境名称
func EnvironmentNames() []string {
	names := make([]string, 0, len(Environments))
	for name := range Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnvironmentURL 返回指定环境的入口地址
func EnvironmentURL(env string) (string, error) {
	u, ok := Environments[env]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEnv, env)
	}
	return u, nil
}

// Options 控制二维码输出
type Options struct {
	Size  int    // 边长，0 表示 DefaultSize
	Level string // 纠错级别 L/M/Q/H，空值为 M
}

// recoveryLevel 将 L/M/Q/H 转为库中的纠错级别
func recoveryLevel(level string) (goqrcode.RecoveryLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "", "M":
		return goqrcode.Medium, nil
	case "L":
		return goqrcode.Low, nil
	case "Q":
		return goqrcode.High, nil
	case "H":
		return goqrcode.Highest, nil
	}
	return goqrcode.Medium, ErrInvalidLevel
}

// ValidateURL 校验链接为 http(s) 绝对地址
func ValidateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidURL
	}
	return nil
}

// Generate 将链接编码为 PNG 二维码
func Generate(link string, opts Options) ([]byte, error) {
	if err := ValidateURL(link); err != nil {
		return nil, err
	}
	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}
	level, err := recoveryLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	png, err := goqrcode.Encode(strings.TrimSpace(link), level, size)
	if err != nil {
		return nil, fmt.Errorf("encode qrcode: %w", err)
	}
	return png, nil
}

// DataURL 将 PNG 转为可直接嵌入页面的 data URL
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// JoinPath 在入口地址后拼接前端路径
func JoinPath(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
