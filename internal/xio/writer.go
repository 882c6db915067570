package xio

import (
	"io"
)

// NopWriteCloser wraps a writer with a Close that forwards to the underlying
// writer when it supports closing and is a no-op otherwise. http response
// writers fall in the latter group.
func NopWriteCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}

type nopWriteCloser struct {
	io.Writer
}

func (w nopWriteCloser) Close() error {
	if c, ok := w.Writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
