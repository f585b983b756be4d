package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"mensajeria_server/pkg/constants"
	"mensajeria_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const textContentType = "text/plain; charset=utf-8"

// HandleText 返回纯文本响应
// 不走 c.String 的格式化，避免正文中的 % 被解释
func HandleText(c *gin.Context, code int, text string) {
	c.Data(code, textContentType, []byte(text))
}

// HandleLines 以换行连接多行文本返回 200
func HandleLines(c *gin.Context, lines []string) {
	HandleText(c, http.StatusOK, strings.Join(lines, "\n"))
}

// HandleMissingParam 缺少查询参数
func HandleMissingParam(c *gin.Context, param string) {
	HandleText(c, http.StatusBadRequest, fmt.Sprintf(constants.MsgMissingParamFmt, param))
}

// HandleError 通用错误处理方法
// 参数错误返回 400，其余错误记录日志后返回 500
// asJSON 为 true 时以 {"error": ...} 返回
func HandleError(c *gin.Context, err error, asJSON bool) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) && codeErr.Code == errorx.CodeInvalidParam {
		if asJSON {
			c.JSON(http.StatusBadRequest, gin.H{"error": codeErr.Msg})
			return
		}
		HandleText(c, http.StatusBadRequest, constants.MsgErrorPrefix+codeErr.Msg)
		return
	}

	_ = c.Error(err)
	zap.L().Error("system error",
		zap.String("requestId", c.GetString(constants.CtxRequestID)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("code", errorx.GetCode(err)),
		zap.Error(err),
	)
	if asJSON {
		c.JSON(http.StatusInternalServerError, gin.H{"error": constants.MsgInternalErrorDetail})
		return
	}
	HandleText(c, http.StatusInternalServerError, constants.MsgInternalError)
}

// logParamError 记录参数绑定错误，validator 错误翻译后输出
func logParamError(c *gin.Context, err error) {
	fields := []zap.Field{
		zap.String("requestId", c.GetString(constants.CtxRequestID)),
		zap.String("path", c.Request.URL.Path),
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && Trans != nil {
		fields = append(fields, zap.Any("fields", RemoveTopStruct(validationErrs.Translate(Trans))))
	} else {
		fields = append(fields, zap.Error(err))
	}
	zap.L().Debug("param bind error", fields...)
}
