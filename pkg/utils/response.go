package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse 定义了标准的成功响应结构
type SuccessResponse struct {
	Status  string      `json:"status"`            // 例如 "success"
	Message string      `json:"message,omitempty"` // 可选的成功消息 (按请求语言翻译)
	Data    interface{} `json:"data,omitempty"`    // 响应数据
}

// APIErrorResponse 错误响应格式 { "error": "描述信息", "details": { ... } }
// 注意: details 可以是 map[string]string 或 string
type APIErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondSuccess 发送一个标准的成功 JSON 响应
// status: HTTP 状态码 (例如 http.StatusOK, http.StatusCreated)
// data: 要包含在响应中的数据
// message: (可选) 成功消息
func RespondSuccess(c *gin.Context, status int, data interface{}, message string) {
	response := SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	if message == "" && data == nil {
		response.Message = "Operation successful"
	}
	c.JSON(status, response)
}

// RespondAttachment 以附件形式返回导出文件
func RespondAttachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

// RespondAPIError 发送错误响应并中止后续处理
func RespondAPIError(c *gin.Context, status int, errorMessage string, details interface{}) {
	response := APIErrorResponse{
		Error: errorMessage,
	}
	if details != nil {
		response.Details = details
	}
	c.AbortWithStatusJSON(status, response)
}

// RespondValidationError 发送用于处理参数校验错误的特定响应
// details 通常是 ValidationDetails(err) 的结果
func RespondValidationError(c *gin.Context, message string, details interface{}) {
	RespondAPIError(c, http.StatusBadRequest, message, details)
}

// RespondNotFoundError 发送资源未找到错误
func RespondNotFoundError(c *gin.Context, message string) {
	RespondAPIError(c, http.StatusNotFound, message, nil)
}

// RespondConflictError 发送冲突错误 (例如，状态不允许流转)
func RespondConflictError(c *gin.Context, message string, details ...string) {
	var detailContent interface{}
	if len(details) > 0 {
		detailContent = details[0]
	}
	RespondAPIError(c, http.StatusConflict, message, detailContent)
}

// RespondInternalServerError 发送服务器内部错误
// errDetails 可以是 err.Error()
func RespondInternalServerError(c *gin.Context, message string, errDetails ...string) {
	var details interface{}
	if len(errDetails) > 0 {
		details = errDetails[0]
	}
	RespondAPIError(c, http.StatusInternalServerError, message, details)
}
