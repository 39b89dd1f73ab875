package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"` // 僅在 debug 模式顯示
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithErr returns a copy of e carrying err as its cause.
func (e *CustomError) WithErr(err error) *CustomError {
	return NewError(e.Code, e.Message, e.Status, err)
}

// Response 轉為 API 錯誤響應
func (e *CustomError) Response(debug bool) ErrorResponse {
	resp := ErrorResponse{Code: e.Code, Message: e.Message}
	if debug && e.Err != nil {
		resp.Details = e.Err.Error()
	}
	return resp
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// 預定義錯誤代碼
const (
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
	ErrCodeRequestTooLarge   = "REQUEST_TOO_LARGE"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeGatewayTimeout    = "GATEWAY_TIMEOUT"
	ErrCodeSessionNotFound   = "SESSION_NOT_FOUND"
	ErrCodeRecipeNotFound    = "RECIPE_NOT_FOUND"
	ErrCodeInvalidNavigation = "INVALID_NAVIGATION"
)

// 預定義錯誤
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)
	ErrRequestTooLarge = NewError(ErrCodeRequestTooLarge, "request body too large", http.StatusRequestEntityTooLarge, nil)
	ErrInternalError   = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrGatewayTimeout  = NewError(ErrCodeGatewayTimeout, "request timeout", http.StatusGatewayTimeout, nil)

	// 業務錯誤
	ErrSessionNotFound   = NewError(ErrCodeSessionNotFound, "session not found", http.StatusNotFound, nil)
	ErrRecipeNotFound    = NewError(ErrCodeRecipeNotFound, "recipe not found", http.StatusNotFound, nil)
	ErrInvalidNavigation = NewError(ErrCodeInvalidNavigation, "navigation not allowed from the current screen", http.StatusConflict, nil)
)

// ErrFetchFailed covers every way a catalog round trip can go wrong:
// transport errors, non-success statuses and undecodable bodies.
var ErrFetchFailed = errors.New("fetch unsuccessful")
