package utils

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators 向 gin 的默认校验器注册自定义规则，启动时调用一次
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin 校验引擎不是 validator/v10")
	}
	return v.RegisterValidation("notblank", notBlank)
}

// notBlank 要求字符串去除首尾空白后不为空
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidationDetails 将绑定错误转换为 字段 -> 规则 的映射，其他错误原样返回字符串
func ValidationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[lowerFirst(fe.Field())] = rule
	}
	return details
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
