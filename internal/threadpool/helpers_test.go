package threadpool

import (
	"io"
	"log/slog"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testOptions(opts ...Option) options {
	return newOptions(append([]Option{WithLogger(discardLogger)}, opts...))
}
