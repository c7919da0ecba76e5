package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Manav2209/s30-assignment-4/internal/slot"
	"github.com/Manav2209/s30-assignment-4/pkg/response"
)

// RegisterValidators 向 gin 的 validator 注册自定义规则
//   - hhmm: 24 小时制 "HH:MM"
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin 校验引擎不是 go-playground/validator")
	}
	return v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return slot.IsClock(fl.Field().String())
	})
}

// bindJSON 绑定并校验 JSON 请求体，失败时写入错误响应并返回 false
// 请求体超过 BodyLimit 上限返回 413，其余绑定错误返回 400 INVALID_SCHEMA
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeRequestTooLarge)
			return false
		}
		response.BadRequest(c, response.CodeInvalidSchema)
		return false
	}
	return true
}
