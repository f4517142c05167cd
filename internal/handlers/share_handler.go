package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/student_support/internal/i18n"
	"github.com/student_support/pkg/qrcode"
	"github.com/student_support/pkg/utils"
)

// ShareHandler 提供系统入口链接和二维码
type ShareHandler struct {
	baseURL string
	loc     Localizer
}

// NewShareHandler 创建一个新的 ShareHandler 实例，baseURL 为前端入口地址
func NewShareHandler(baseURL string, loc Localizer) *ShareHandler {
	return &ShareHandler{baseURL: baseURL, loc: loc}
}

// QRCodeQuery 定义了二维码接口的查询参数
type QRCodeQuery struct {
	URL    string `form:"url"`
	Size   int    `form:"size" binding:"omitempty,min=64,max=2048"`
	Level  string `form:"level" binding:"omitempty,oneof=L M Q H"`
	Format string `form:"format" binding:"omitempty,oneof=png dataurl"`
}

// QRCodeData 是 format=dataurl 时返回的数据
type QRCodeData struct {
	URL         string `json:"url"`
	DataURL     string `json:"dataUrl"`
	Size        int    `json:"size"`
	Description string `json:"description"`
}

// EntryLinks 是前端各入口页面的完整地址
type EntryLinks struct {
	Landing   string `json:"landing"`
	Intake    string `json:"intake"`
	Dashboard string `json:"dashboard"`
	Share     string `json:"share"`
	QRCode    string `json:"qrcode"`
}

// GetQRCode godoc
// @Summary 生成入口二维码
// @Description 默认编码前端入口地址，format=dataurl 时返回 JSON，否则直接返回 PNG。
// @Tags Share
// @Produce png
// @Produce json
// @Param url query string false "要编码的 http(s) 链接，默认为前端入口"
// @Param size query int false "图片边长 (64-2048)" default(512)
// @Param level query string false "纠错级别" Enums(L, M, Q, H) default(M)
// @Param format query string false "输出格式" Enums(png, dataurl) default(png)
// @Param lang query string false "响应语言 (en/zh)"
// @Success 200 {object} utils.SuccessResponse{data=QRCodeData} "format=dataurl 时的响应"
// @Failure 400 {object} utils.APIErrorResponse "请求参数无效"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /share/qrcode [get]
func (h *ShareHandler) GetQRCode(c *gin.Context) {
	var query QRCodeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, h.loc.T(c, i18n.KeyInvalidRequest), utils.ValidationDetails(err))
		return
	}
	link := query.URL
	if link == "" {
		link = h.baseURL
	}

	png, err := qrcode.Generate(link, qrcode.Options{Size: query.Size, Level: query.Level})
	if err != nil {
		if errors.Is(err, qrcode.ErrInvalidURL) || errors.Is(err, qrcode.ErrInvalidSize) || errors.Is(err, qrcode.ErrInvalidLevel) {
			utils.RespondValidationError(c, h.loc.T(c, i18n.KeyInvalidRequest), err.Error())
			return
		}
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
		return
	}

	if query.Format == "dataurl" {
		size := query.Size
		if size == 0 {
			size = qrcode.DefaultSize
		}
		utils.RespondSuccess(c, http.StatusOK, QRCodeData{
			URL:         link,
			DataURL:     qrcode.DataURL(png),
			Size:        size,
			Description: h.loc.T(c, i18n.KeyQRDescription),
		}, "")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetLinks godoc
// @Summary 获取前端入口链接
// @Tags Share
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=EntryLinks} "入口链接"
// @Router /share/links [get]
func (h *ShareHandler) GetLinks(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, EntryLinks{
		Landing:   qrcode.JoinPath(h.baseURL, "/"),
		Intake:    qrcode.JoinPath(h.baseURL, "/intake"),
		Dashboard: qrcode.JoinPath(h.baseURL, "/dashboard"),
		Share:     qrcode.JoinPath(h.baseURL, "/share"),
		QRCode:    qrcode.JoinPath(h.baseURL, "/qrcode"),
	}, "")
}
