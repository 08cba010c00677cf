package endpoint

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const MaxRequestSize = 1 << 20

// ParseRequestBody decodes a JSON body of at most MaxRequestSize bytes. An
// empty body yields the zero value of T.
func ParseRequestBody[T any](r *http.Request) (T, error) {
	var request T

	if r.Body == nil {
		return request, nil
	}

	defer func() {
		if issue := r.Body.Close(); issue != nil {
			slog.Error("ParseRequestBody: " + issue.Error())
		}
	}()

	data, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestSize))
	if err != nil {
		return request, fmt.Errorf("failed to read the given request body: %w", err)
	}

	if len(data) == 0 {
		return request, nil
	}

	if err = json.Unmarshal(data, &request); err != nil {
		return request, fmt.Errorf("failed to unmarshal the given request body: %w", err)
	}

	return request, nil
}
