package httpx

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const CRLF = "\r\n"

// Stream is an output sink. Bytes are delivered in call order.
type Stream interface {
	Write(p []byte) error
}

func WriteString(s Stream, str string) error {
	return s.Write([]byte(str))
}

func WriteLine(s Stream, str string) error {
	if err := WriteString(s, str); err != nil {
		return err
	}
	return NewLine(s)
}

func NewLine(s Stream) error {
	return WriteString(s, CRLF)
}

// StringStream collects everything written to it in memory.
type StringStream struct {
	b strings.Builder
}

func (s *StringStream) Write(p []byte) error {
	s.b.Write(p)
	return nil
}

func (s *StringStream) String() string {
	return s.b.String()
}

// ConnStream buffers writes to an underlying writer until Flush.
type ConnStream struct {
	w *bufio.Writer
}

func NewConnStream(w io.Writer) *ConnStream {
	return &ConnStream{w: bufio.NewWriter(w)}
}

func (s *ConnStream) Write(p []byte) error {
	_, err := s.w.Write(p)
	return errors.Wrap(err, "write")
}

func (s *ConnStream) Flush() error {
	return errors.Wrap(s.w.Flush(), "flush")
}
