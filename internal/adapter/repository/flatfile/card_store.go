package flatfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/finbridge/cardproc/internal/domain"
)

// CardStore is the append-only fixed-width card record file. Reads load the
// whole file; appends are serialized behind a single-writer mutex so
// concurrent signups cannot interleave partial lines.
type CardStore struct {
	path string
	mu   sync.Mutex
}

// NewCardStore creates a CardStore backed by the file at path. The file does
// not need to exist yet; the first append creates it.
func NewCardStore(path string) *CardStore {
	return &CardStore{path: path}
}

// List decodes every record in the store, in file order. A missing data file
// is an empty store, not an error.
func (s *CardStore) List(ctx context.Context) ([]domain.Card, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}

	cards := make([]domain.Card, 0, len(lines))
	for _, line := range lines {
		card, err := DecodeRecord(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// FindByNumber returns the first record whose card-number field equals
// number. Only the matching line is decoded.
func (s *CardStore) FindByNumber(ctx context.Context, number string) (domain.Card, error) {
	lines, err := s.readLines()
	if err != nil {
		return domain.Card{}, err
	}

	for _, line := range lines {
		if len(line) >= numberEnd && line[:numberEnd] == number {
			card, err := DecodeRecord(line)
			if err != nil {
				return domain.Card{}, fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
			}
			return card, nil
		}
	}

	return domain.Card{}, domain.ErrCardNotFound
}

// Exists reports whether a record with the given card number is on file.
func (s *CardStore) Exists(ctx context.Context, number string) (bool, error) {
	_, err := s.FindByNumber(ctx, number)
	if errors.Is(err, domain.ErrCardNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Append encodes the card and writes it as one new line at the end of the
// file. Records are never updated or deleted.
func (s *CardStore) Append(ctx context.Context, card domain.Card) error {
	line, err := EncodeRecord(card)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
	}

	return nil
}

func (s *CardStore) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}
