package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/coregx/streamlex"
	"github.com/coregx/streamlex/source"
)

// open builds a reader over path, or standard input for "-" or no path.
// The returned function releases the input.
func (o *options) open(ctx context.Context, args []string) (*streamlex.Reader, func() error, error) {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	var (
		src     io.Reader
		closeFn = func() error { return nil }
	)
	switch {
	case path == "-":
		if o.follow {
			return nil, nil, errors.New("--follow needs a file argument")
		}
		src = stdin()
	case o.follow:
		f, err := source.Follow(ctx, path, source.WithLogger(o.logger))
		if err != nil {
			return nil, nil, err
		}
		src, closeFn = f, f.Close
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		src, closeFn = f, f.Close
	}

	if o.transcode {
		r, name, err := source.Transcode(src)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		o.logger.Debug("detected charset", "path", path, "charset", name)
		src = r
	}
	if o.lenient {
		src = source.Decode(src)
	}

	r, err := streamlex.NewWithConfig(src, o.reader)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return r, closeFn, nil
}
