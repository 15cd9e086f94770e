// Package datasource defines the minimal contract for pipeline inputs.
package datasource

import (
	"context"
	"io"
)

// Source yields a readable stream of raw input bytes.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}
