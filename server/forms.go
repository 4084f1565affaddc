package server

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jrsteele09/go-todo-server/internal/errors"
)

// formReader decodes application/x-www-form-urlencoded bodies for every
// method. net/http only parses POST, PUT and PATCH bodies.
type formReader struct {
	maxBytes int64
}

func (f formReader) read(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return url.Values{}, nil
	}
	maxBytes := f.maxBytes
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("[server readForm] %w: %v", errors.ErrInvalidRequest, err)
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("[server readForm] %w: %v", errors.ErrInvalidRequest, err)
	}
	return values, nil
}

// formID parses a positive integer id field.
func formID(values url.Values, field string) (int, error) {
	return parseID(values.Get(field))
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad id %q", errors.ErrInvalidRequest, raw)
	}
	return id, nil
}
