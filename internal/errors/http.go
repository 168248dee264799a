package errors

import (
	"encoding/json"
	"net/http"
)

// httpError is the JSON body written for failed requests
type httpError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// WriteHTTP writes an error as a JSON response with the status derived from
// its code. Unknown error types are reported as INTERNAL without leaking
// their message.
func WriteHTTP(w http.ResponseWriter, err error) {
	code := GetCode(err)

	body := httpError{
		Code:    code.String(),
		Message: GetMessage(err),
	}

	var structured *Error
	if As(err, &structured) {
		body.Meta = structured.Meta
	} else {
		body.Message = "internal error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code.HTTPStatus())
	_ = json.NewEncoder(w).Encode(body)
}
