package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

const (
	eventKind = "event"
	itemKind  = "item"
)

// DiskStore keeps one JSON file per event and per item under a base
// directory, laid out as <base>/event/<id> and <base>/item/<id>.
type DiskStore struct {
	// mu serializes read-modify-write cycles; diskv only guards single calls.
	mu sync.Mutex
	d  *diskv.Diskv
}

var _ Store = (*DiskStore)(nil)

// NewDiskStore opens (or creates) a file store rooted at basePath.
func NewDiskStore(basePath string) (*DiskStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: disk path required")
	}
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathKey,
		InverseTransform:  pathKeyToKey,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

// keyToPathKey maps "item-<id>" to item/<id>.
func keyToPathKey(key string) *diskv.PathKey {
	kind, id, _ := strings.Cut(key, "-")
	return &diskv.PathKey{Path: []string{kind}, FileName: id}
}

func pathKeyToKey(pk *diskv.PathKey) string {
	return strings.Join(pk.Path, "-") + "-" + pk.FileName
}

func eventKey(id string) string { return eventKind + "-" + id }
func itemKey(id string) string  { return itemKind + "-" + id }

func (s *DiskStore) readJSON(key string, v any) error {
	data, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *DiskStore) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *DiskStore) readEvent(id string) (*models.Event, error) {
	var e models.Event
	if err := s.readJSON(eventKey(id), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *DiskStore) readItem(id string) (*models.TimelineItem, error) {
	var item models.TimelineItem
	if err := s.readJSON(itemKey(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// keys drains the key listing before any file is read.
func (s *DiskStore) keys(ctx context.Context, kind string) ([]string, error) {
	var keys []string
	for key := range s.d.KeysPrefix(kind+"-", ctx.Done()) {
		keys = append(keys, key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// scanItems reads every item belonging to eventID.
func (s *DiskStore) scanItems(ctx context.Context, eventID string) ([]*models.TimelineItem, error) {
	keys, err := s.keys(ctx, itemKind)
	if err != nil {
		return nil, err
	}
	out := make([]*models.TimelineItem, 0)
	for _, key := range keys {
		var item models.TimelineItem
		if err := s.readJSON(key, &item); err != nil {
			return nil, err
		}
		if item.EventID == eventID {
			out = append(out, &item)
		}
	}
	return out, nil
}

func (s *DiskStore) CreateEvent(_ context.Context, e *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(eventKey(e.ID), e)
}

func (s *DiskStore) GetEvent(_ context.Context, id string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readEvent(id)
}

func (s *DiskStore) ListEvents(ctx context.Context, filters models.EventFilters) ([]*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys, err := s.keys(ctx, eventKind)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Event, 0)
	for _, key := range keys {
		var e models.Event
		if err := s.readJSON(key, &e); err != nil {
			return nil, err
		}
		if filters.Status != "" && e.Status != filters.Status {
			continue
		}
		out = append(out, &e)
	}
	sortEvents(out)
	return out, nil
}

func (s *DiskStore) UpdateEvent(_ context.Context, e *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.d.Has(eventKey(e.ID)) {
		return ErrNotFound
	}
	return s.writeJSON(eventKey(e.ID), e)
}

func (s *DiskStore) SetEventStatus(_ context.Context, id string, status models.EventStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.readEvent(id)
	if err != nil {
		return err
	}
	e.Status = status
	e.UpdatedAt = updatedAt
	return s.writeJSON(eventKey(id), e)
}

func (s *DiskStore) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.d.Has(eventKey(id)) {
		return ErrNotFound
	}
	items, err := s.scanItems(ctx, id)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := s.d.Erase(itemKey(item.ID)); err != nil {
			return fmt.Errorf("failed to erase item %s: %w", item.ID, err)
		}
	}
	if err := s.d.Erase(eventKey(id)); err != nil {
		return fmt.Errorf("failed to erase event %s: %w", id, err)
	}
	return nil
}

func (s *DiskStore) CreateItem(_ context.Context, item *models.TimelineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.d.Has(eventKey(item.EventID)) {
		return ErrNotFound
	}
	return s.writeJSON(itemKey(item.ID), item)
}

func (s *DiskStore) GetItem(_ context.Context, id string) (*models.TimelineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readItem(id)
}

func (s *DiskStore) ListItems(ctx context.Context, eventID string) ([]*models.TimelineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.scanItems(ctx, eventID)
	if err != nil {
		return nil, err
	}
	sortItems(items)
	return items, nil
}

func (s *DiskStore) UpdateItem(_ context.Context, item *models.TimelineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.d.Has(itemKey(item.ID)) {
		return ErrNotFound
	}
	return s.writeJSON(itemKey(item.ID), item)
}

func (s *DiskStore) DeleteItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.d.Has(itemKey(id)) {
		return ErrNotFound
	}
	return s.d.Erase(itemKey(id))
}

func (s *DiskStore) ApplyItemUpdate(ctx context.Context, u models.ItemUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, err := s.readItem(u.ID)
	if err != nil {
		return err
	}
	item.Apply(u)
	return s.writeJSON(itemKey(u.ID), item)
}

func (s *DiskStore) SetItemOrder(_ context.Context, itemID string, orderIndex int, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, err := s.readItem(itemID)
	if err != nil {
		return err
	}
	item.OrderIndex = orderIndex
	item.UpdatedAt = updatedAt
	return s.writeJSON(itemKey(itemID), item)
}

func (s *DiskStore) NextOrderIndex(ctx context.Context, eventID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.scanItems(ctx, eventID)
	if err != nil {
		return 0, err
	}
	next := 0
	for _, item := range items {
		if item.OrderIndex >= next {
			next = item.OrderIndex + 1
		}
	}
	return next, nil
}

func (s *DiskStore) Close() error { return nil }
