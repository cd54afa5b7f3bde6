//go:build unix

package main

import (
	"io"
	"os"

	"github.com/coregx/streamlex/source"
)

func stdin() io.Reader {
	return source.NewFD(int(os.Stdin.Fd()))
}
