package httpx

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/pkg/errors"
)

const DefaultVersion = "1.1"

var ErrIncompleteResponse = errors.New("response has no version or status code")

// Code is an HTTP status code.
type Code int

const (
	StatusOK       Code = 200
	StatusNotFound Code = 404
)

// Reason returns the reason phrase for the status line.
func (c Code) Reason() string {
	switch c {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "Not Found"
	default:
		return http.StatusText(int(c))
	}
}

type Response struct {
	Version string
	Code    Code
	Headers map[string]string
}

func NewResponse(code Code) *Response {
	return &Response{
		Version: DefaultVersion,
		Code:    code,
		Headers: make(map[string]string),
	}
}

func (r *Response) SetHeader(key, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
}

// WriteHeader writes the status line, headers sorted by name and the blank
// line that separates them from the body.
func (r *Response) WriteHeader(s Stream) error {
	if r.Version == "" || r.Code == 0 {
		return ErrIncompleteResponse
	}

	statusLine := fmt.Sprintf("HTTP/%s %d %s", r.Version, int(r.Code), r.Code.Reason())
	if err := WriteLine(s, statusLine); err != nil {
		return errors.Wrap(err, "status line")
	}

	keys := make([]string, 0, len(r.Headers))
	for k := range r.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := WriteLine(s, k+": "+r.Headers[k]); err != nil {
			return errors.Wrapf(err, "header %s", k)
		}
	}

	return errors.Wrap(NewLine(s), "body separator")
}
