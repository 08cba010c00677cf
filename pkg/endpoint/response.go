package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

const DefaultMaxAge = 60

type Response struct {
	cacheControl string
	writer       http.ResponseWriter
	request      *http.Request
}

func NewResponseWithCache(maxAgeSeconds int, writer http.ResponseWriter, request *http.Request) *Response {
	if maxAgeSeconds < 0 {
		maxAgeSeconds = 0
	}

	return &Response{
		writer:       writer,
		request:      request,
		cacheControl: fmt.Sprintf("public, max-age=%d", maxAgeSeconds),
	}
}

func NewResponseFrom(writer http.ResponseWriter, request *http.Request) *Response {
	return NewResponseWithCache(DefaultMaxAge, writer, request)
}

func NewNoCacheResponse(writer http.ResponseWriter, request *http.Request) *Response {
	return &Response{
		writer:       writer,
		request:      request,
		cacheControl: "no-store",
	}
}

func (r *Response) headers(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", r.cacheControl)
}

func (r *Response) Respond(status int, payload any) error {
	r.headers(r.writer)
	r.writer.WriteHeader(status)

	return json.NewEncoder(r.writer).Encode(payload)
}

func (r *Response) RespondOk(payload any) error {
	return r.Respond(http.StatusOK, payload)
}

func (r *Response) RespondCreated(payload any) error {
	return r.Respond(http.StatusCreated, payload)
}

// RespondCached writes the payload with a content ETag and answers
// conditional requests carrying a matching If-None-Match with 304.
func (r *Response) RespondCached(payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	etag := fmt.Sprintf(`"%s"`, portal.Sha256Hex(body))

	r.headers(r.writer)
	r.writer.Header().Set("ETag", etag)

	if strings.TrimSpace(r.request.Header.Get("If-None-Match")) == etag {
		r.writer.WriteHeader(http.StatusNotModified)

		return nil
	}

	r.writer.WriteHeader(http.StatusOK)

	_, err = r.writer.Write(append(body, '\n'))

	return err
}

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(msg, "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	message := fmt.Sprintf("Bad request error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     errors.New(message),
	}
}

func LogBadRequestError(msg string, err error) *ApiError {
	slog.Warn(msg, "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Bad request error: %s", msg),
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func LogUnauthorisedError(msg string, err error) *ApiError {
	slog.Warn(msg, "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Unauthorised request: %s", msg),
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func UnprocessableEntity(msg string, errs map[string]any) *ApiError {
	message := fmt.Sprintf("Unprocessable entity: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Data:    errs,
		Err:     errors.New(message),
	}
}

func NotFound(msg string) *ApiError {
	message := fmt.Sprintf("Not found error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusNotFound,
		Err:     errors.New(message),
	}
}

func Conflict(msg string, err error) *ApiError {
	return &ApiError{
		Message: fmt.Sprintf("Conflict error: %s", msg),
		Status:  http.StatusConflict,
		Err:     err,
	}
}

func TooManyRequests(msg string) *ApiError {
	message := fmt.Sprintf("Too many requests: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusTooManyRequests,
		Err:     errors.New(message),
	}
}
