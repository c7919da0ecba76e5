package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode 对外暴露的错误码
type ErrorCode string

const (
	CodeInvalidSchema           ErrorCode = "INVALID_SCHEMA"
	CodeInvalidDate             ErrorCode = "INVALID_DATE"
	CodeInvalidServiceType      ErrorCode = "INVALID_SERVICE_TYPE"
	CodeInvalidSlotID           ErrorCode = "INVALID_SLOT_ID"
	CodeInvalidSlotTime         ErrorCode = "INVALID_SLOT_TIME"
	CodeUnauthorized            ErrorCode = "UNAUTHORIZED"
	CodeForbidden               ErrorCode = "FORBIDDEN"
	CodeServiceNotFound         ErrorCode = "SERVICE_NOT_FOUND"
	CodeOverlappingAvailability ErrorCode = "OVERLAPPING_AVAILABILITY"
	CodeSlotAlreadyBooked       ErrorCode = "SLOT_ALREADY_BOOKED"
	CodeTooManyRequests         ErrorCode = "TOO_MANY_REQUESTS"
	CodeRequestTooLarge         ErrorCode = "REQUEST_TOO_LARGE"
	CodeInternal                ErrorCode = "INTERNAL_SERVER_ERROR"
)

// Response 统一响应结构：{ success, data, error }
// 成功时 error 为 null，失败时 data 为 null
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   *ErrorCode  `json:"error"`
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code ErrorCode) {
	c.JSON(httpStatus, Response{Success: false, Error: &code})
}

// BadRequest 400
func BadRequest(c *gin.Context, code ErrorCode) {
	Error(c, http.StatusBadRequest, code)
}

// Unauthorized 401
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized)
}

// Forbidden 403
func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, CodeForbidden)
}

// NotFound 404
func NotFound(c *gin.Context, code ErrorCode) {
	Error(c, http.StatusNotFound, code)
}

// Conflict 409
func Conflict(c *gin.Context, code ErrorCode) {
	Error(c, http.StatusConflict, code)
}

// InternalError 500，不向调用方暴露内部细节
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal)
}

// [自证通过] pkg/response/response.go
