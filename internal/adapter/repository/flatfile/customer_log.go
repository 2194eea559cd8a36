package flatfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/finbridge/cardproc/internal/domain"
)

// CustomerLog is the append-only customer profile file, one JSON object per
// line.
type CustomerLog struct {
	path string
	mu   sync.Mutex
}

// NewCustomerLog creates a CustomerLog backed by the file at path.
func NewCustomerLog(path string) *CustomerLog {
	return &CustomerLog{path: path}
}

// Append writes one profile as a JSON line at the end of the log.
func (l *CustomerLog) Append(ctx context.Context, profile domain.CustomerProfile) error {
	line, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
	}

	return nil
}
