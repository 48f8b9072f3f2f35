package common

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

// ErrorBody is the error half of the response envelope.
type ErrorBody struct {
	Code    domain.Code `json:"code"`
	Message string      `json:"message"`
}

// Envelope wraps every API response.
type Envelope struct {
	OK    bool       `json:"ok"`
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *log.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// WriteData writes a success envelope.
func WriteData(logger *log.Logger, w http.ResponseWriter, status int, data any) {
	WriteJSON(logger, w, status, Envelope{OK: true, Data: data})
}

// WriteErrorCode writes a failure envelope.
func WriteErrorCode(logger *log.Logger, w http.ResponseWriter, status int, code domain.Code, message string) {
	WriteJSON(logger, w, status, Envelope{OK: false, Error: &ErrorBody{Code: code, Message: message}})
}

// WriteError translates err into a failure envelope. Causes are logged, never sent.
func WriteError(logger *log.Logger, w http.ResponseWriter, err error) {
	derr, ok := domain.AsError(err)
	if !ok {
		if logger != nil {
			logger.Printf("unexpected error: %v", err)
		}
		WriteErrorCode(logger, w, http.StatusInternalServerError, domain.CodeInternal, "서버 오류가 발생했습니다.")
		return
	}
	if derr.Err != nil && logger != nil {
		logger.Printf("%s: %v", derr.Code, derr.Err)
	}
	status := derr.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	WriteErrorCode(logger, w, status, derr.Code, derr.Message)
}
