package bookmark

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/tmux-bookmark-popup/internal/kv"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
)

// Storage keys.
const (
	KeyBookmarks = "bookmarks"
	KeyLanguage  = "language"
)

// Clock supplies the creation time used for ids.
type Clock func() time.Time

// Service reads and writes bookmarks and the language preference. Each
// mutation is a single read-modify-write transaction; transactions are
// serialized so concurrent actions never drop each other's writes.
type Service struct {
	store kv.Store
	now   Clock
	mu    sync.Mutex
	seq   uint64
}

// Snapshot is a stored bookmark sequence together with the raw value it was
// decoded from. Seq orders the snapshots taken by one Service: reads and
// mutations are serialized, so a lower Seq never reflects a newer sequence
// than a higher one.
type Snapshot struct {
	Bookmarks []Bookmark
	Raw       []byte
	Seq       uint64
}

// NewService returns a Service backed by store. A nil clock uses time.Now.
func NewService(store kv.Store, clock Clock) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: store, now: clock}
}

// List returns the stored bookmarks in insertion order.
func (s *Service) List(ctx context.Context) ([]Bookmark, error) {
	return s.load(ctx)
}

// Snapshot reads the stored sequence and numbers the read.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.store.Get(ctx, KeyBookmarks)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load bookmarks: %w", err)
	}
	raw := values[KeyBookmarks]
	list, err := Decode(raw)
	if err != nil {
		return Snapshot{}, err
	}
	s.seq++
	return Snapshot{Bookmarks: list, Raw: raw, Seq: s.seq}, nil
}

// Add validates the draft, appends a new bookmark and persists the sequence.
func (s *Service) Add(ctx context.Context, d Draft) (Bookmark, error) {
	if err := d.Validate(); err != nil {
		if key, ok := IsValidation(err); ok {
			events.Bookmark.Invalid(key)
		}
		return Bookmark{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := s.load(ctx)
	if err != nil {
		return Bookmark{}, err
	}
	b := Bookmark{
		ID:    NewID(s.now()),
		Title: d.Title,
		URL:   strings.TrimSpace(d.URL),
		Tags:  ParseTags(d.Tags),
		Notes: d.Notes,
	}
	list = append(list, b)
	if err := s.save(ctx, list); err != nil {
		return Bookmark{}, err
	}
	events.Bookmark.Add(b.ID, b.URL, b.Tags)
	return b, nil
}

// Delete removes every bookmark whose id matches and reports how many were
// removed. A missing id is not an error.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]Bookmark, 0, len(list))
	for _, b := range list {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	removed := len(list) - len(kept)
	if err := s.save(ctx, kept); err != nil {
		return 0, err
	}
	events.Bookmark.Delete(id, removed)
	return removed, nil
}

// DeleteAll persists an empty sequence.
func (s *Service) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := -1
	if list, err := s.load(ctx); err == nil {
		previous = len(list)
	}
	if err := s.save(ctx, []Bookmark{}); err != nil {
		return err
	}
	events.Bookmark.DeleteAll(previous)
	return nil
}

// Language returns the stored language code, or "" when unset.
func (s *Service) Language(ctx context.Context) (string, error) {
	values, err := s.store.Get(ctx, KeyLanguage)
	if err != nil {
		return "", fmt.Errorf("load language: %w", err)
	}
	raw, ok := values[KeyLanguage]
	if !ok || len(raw) == 0 {
		return "", nil
	}
	var code string
	if err := json.Unmarshal(raw, &code); err != nil {
		return "", fmt.Errorf("decode language: %w", err)
	}
	return code, nil
}

// SetLanguage persists the language code as given.
func (s *Service) SetLanguage(ctx context.Context, code string) error {
	raw, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("encode language: %w", err)
	}
	if err := s.store.Set(ctx, map[string][]byte{KeyLanguage: raw}); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	events.Language.Change(code)
	return nil
}

func (s *Service) load(ctx context.Context) ([]Bookmark, error) {
	values, err := s.store.Get(ctx, KeyBookmarks)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	return Decode(values[KeyBookmarks])
}

func (s *Service) save(ctx context.Context, list []Bookmark) error {
	raw, err := Encode(list)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, map[string][]byte{KeyBookmarks: raw}); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	return nil
}

// Decode parses a stored bookmark sequence. Absent or null values decode to
// an empty sequence.
func Decode(raw []byte) ([]Bookmark, error) {
	if len(raw) == 0 {
		return []Bookmark{}, nil
	}
	var list []Bookmark
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}
	if list == nil {
		list = []Bookmark{}
	}
	return list, nil
}

// Encode serializes a bookmark sequence; nil encodes as an empty array.
func Encode(list []Bookmark) ([]byte, error) {
	if list == nil {
		list = []Bookmark{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode bookmarks: %w", err)
	}
	return raw, nil
}
