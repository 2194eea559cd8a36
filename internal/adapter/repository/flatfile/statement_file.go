package flatfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// StatementFile is the well-known artifact the batch program overwrites on
// every statement run. The driver removes it before a run and reads it back
// afterwards.
type StatementFile struct {
	path string
}

// NewStatementFile creates a StatementFile at path.
func NewStatementFile(path string) *StatementFile {
	return &StatementFile{path: path}
}

// Remove deletes a stale artifact. A missing file is fine.
func (f *StatementFile) Remove() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Read returns the artifact contents, retrying briefly with exponential
// backoff: on slow filesystems the artifact can trail the program's exit.
func (f *StatementFile) Read(ctx context.Context) (string, error) {
	var body []byte

	operation := func() error {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return err
		}
		body = data
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 2 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return "", err
	}

	return string(body), nil
}
