package httputil

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	headerContentType = "Content-Type"

	contentTypeJSON = "application/json"
)

// envelope is the uniform response shape: every success answer carries
// {"success":true} plus optional data and count.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Count   *int `json:"count,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type Writer struct {
	http.ResponseWriter
	ErrorMessage string
	StatusCode   int
}

func NewWriter(w http.ResponseWriter) *Writer {
	if ww, ok := w.(*Writer); ok {
		return ww
	}
	w.Header().Set(headerContentType, contentTypeJSON)
	return &Writer{ResponseWriter: w}
}

func (w *Writer) WriteHeader(statusCode int) {
	w.StatusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// WriteData writes {"success":true,"data":...} with the given status code.
func (w *Writer) WriteData(statusCode int, data any) {
	w.writeJson(statusCode, envelope{Success: true, Data: data})
}

// WriteList writes {"success":true,"data":[...],"count":N}.
func (w *Writer) WriteList(statusCode int, data any, count int) {
	w.writeJson(statusCode, envelope{Success: true, Data: data, Count: &count})
}

// WriteSuccess writes a bare {"success":true}.
func (w *Writer) WriteSuccess() {
	w.writeJson(http.StatusOK, envelope{Success: true})
}

func (w *Writer) writeJson(statusCode int, data any) {
	resp, err := json.Marshal(data)
	if err != nil {
		w.Error(err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	_, _ = w.Write(resp)
}

func (w *Writer) Error(err error, code int) {
	msg := err.Error()

	resp, _ := json.Marshal(errorResponse{
		Success: false,
		Error:   msg,
	})

	w.WriteHeader(code)
	_, _ = w.Write(resp)
	w.ErrorMessage = msg
}
