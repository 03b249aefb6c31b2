package httpx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStream struct {
	after int
	calls int
}

func (f *failingStream) Write(p []byte) error {
	f.calls++
	if f.calls > f.after {
		return assert.AnError
	}
	return nil
}

func TestResponse_WriteHeader(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		resp    *Response
		want    string
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "Success_NoHeaders",
			resp:    NewResponse(StatusOK),
			want:    "HTTP/1.1 200 OK\r\n\r\n",
			wantErr: assert.NoError,
		},
		{
			name: "Success_SortedHeaders",
			resp: &Response{
				Version: "1.1",
				Code:    StatusOK,
				Headers: map[string]string{"test": "header", "Content-Type": "text/plain", "X-Id": "7"},
			},
			want:    "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nX-Id: 7\r\ntest: header\r\n\r\n",
			wantErr: assert.NoError,
		},
		{
			name:    "Success_NotFound",
			resp:    &Response{Version: "1.0", Code: StatusNotFound},
			want:    "HTTP/1.0 404 Not Found\r\n\r\n",
			wantErr: assert.NoError,
		},
		{
			name:    "Success_OtherCode",
			resp:    &Response{Version: "1.1", Code: 503},
			want:    "HTTP/1.1 503 Service Unavailable\r\n\r\n",
			wantErr: assert.NoError,
		},
		{
			name: "Fail_NoVersion",
			resp: &Response{Code: StatusOK},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrIncompleteResponse)
			},
		},
		{
			name: "Fail_NoCode",
			resp: &Response{Version: "1.1"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrIncompleteResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var s StringStream
			err := tt.resp.WriteHeader(&s)
			if !tt.wantErr(t, err) {
				return
			}
			if err == nil {
				assert.Equal(t, tt.want, s.String())
			}
		})
	}
}

func TestResponse_WriteHeaderPropagatesStreamErrors(t *testing.T) {
	t.Parallel()
	resp := NewResponse(StatusOK)
	resp.SetHeader("a", "1")

	for after, want := range []string{"status line", "header a", "body separator"} {
		// Each line costs two writes: text and CRLF.
		err := resp.WriteHeader(&failingStream{after: after * 2})
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), want)
	}
}

func TestSetHeader_NilMap(t *testing.T) {
	t.Parallel()
	resp := &Response{Version: "1.1", Code: StatusOK}
	resp.SetHeader("k", "v")
	assert.Equal(t, "v", resp.Headers["k"])
}

func TestConnStream_BuffersUntilFlush(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := NewConnStream(&buf)

	require.NoError(t, WriteLine(s, "hello"))
	require.NoError(t, WriteString(s, " 0 "))
	assert.Zero(t, buf.Len())

	require.NoError(t, s.Flush())
	assert.Equal(t, "hello\r\n 0 ", buf.String())
}
