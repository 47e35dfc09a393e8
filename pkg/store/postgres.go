package store

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/runsheet/ent"
	"github.com/codeready-toolchain/runsheet/ent/event"
	"github.com/codeready-toolchain/runsheet/ent/timelineitem"
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// PostgresStore implements Store on PostgreSQL through the ent client.
type PostgresStore struct {
	client *ent.Client
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore wraps an ent client opened on a migrated database.
func NewPostgresStore(client *ent.Client) *PostgresStore {
	return &PostgresStore{client: client}
}

func (s *PostgresStore) CreateEvent(ctx context.Context, e *models.Event) error {
	err := s.client.Event.Create().
		SetID(e.ID).
		SetName(e.Name).
		SetDate(e.Date).
		SetNillableLocation(e.Location).
		SetNillableDescription(e.Description).
		SetStatus(event.Status(e.Status)).
		SetCreatedAt(e.CreatedAt).
		SetUpdatedAt(e.UpdatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	e, err := s.client.Event.Get(ctx, id)
	if err != nil {
		return nil, mapError(err, "get event")
	}
	return toEvent(e), nil
}

func (s *PostgresStore) ListEvents(ctx context.Context, filters models.EventFilters) ([]*models.Event, error) {
	query := s.client.Event.Query().
		Order(ent.Asc(event.FieldDate, event.FieldCreatedAt, event.FieldID))
	if filters.Status != "" {
		query = query.Where(event.StatusEQ(event.Status(filters.Status)))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	out := make([]*models.Event, 0, len(rows))
	for _, e := range rows {
		out = append(out, toEvent(e))
	}
	return out, nil
}

func (s *PostgresStore) UpdateEvent(ctx context.Context, e *models.Event) error {
	update := s.client.Event.UpdateOneID(e.ID).
		SetName(e.Name).
		SetDate(e.Date).
		SetStatus(event.Status(e.Status)).
		SetUpdatedAt(e.UpdatedAt)
	if e.Location != nil {
		update.SetLocation(*e.Location)
	} else {
		update.ClearLocation()
	}
	if e.Description != nil {
		update.SetDescription(*e.Description)
	} else {
		update.ClearDescription()
	}
	return mapError(update.Exec(ctx), "update event")
}

func (s *PostgresStore) SetEventStatus(ctx context.Context, id string, status models.EventStatus, updatedAt time.Time) error {
	err := s.client.Event.UpdateOneID(id).
		SetStatus(event.Status(status)).
		SetUpdatedAt(updatedAt).
		Exec(ctx)
	return mapError(err, "update event status")
}

// DeleteEvent removes the event; its items go with it via ON DELETE CASCADE.
func (s *PostgresStore) DeleteEvent(ctx context.Context, id string) error {
	return mapError(s.client.Event.DeleteOneID(id).Exec(ctx), "delete event")
}

func (s *PostgresStore) CreateItem(ctx context.Context, item *models.TimelineItem) error {
	err := s.client.TimelineItem.Create().
		SetID(item.ID).
		SetEventID(item.EventID).
		SetTitle(item.Title).
		SetNillableDescription(item.Description).
		SetCategory(timelineitem.Category(item.Category)).
		SetStartTime(item.StartTime).
		SetNillableEndTime(item.EndTime).
		SetStatus(timelineitem.Status(item.Status)).
		SetOrderIndex(item.OrderIndex).
		SetCreatedAt(item.CreatedAt).
		SetUpdatedAt(item.UpdatedAt).
		Exec(ctx)
	if err != nil {
		// The only constraint an insert with a fresh id can break is the
		// foreign key to its event.
		if ent.IsConstraintError(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to create timeline item: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetItem(ctx context.Context, id string) (*models.TimelineItem, error) {
	item, err := s.client.TimelineItem.Get(ctx, id)
	if err != nil {
		return nil, mapError(err, "get timeline item")
	}
	return toItem(item), nil
}

func (s *PostgresStore) ListItems(ctx context.Context, eventID string) ([]*models.TimelineItem, error) {
	rows, err := s.client.TimelineItem.Query().
		Where(timelineitem.EventIDEQ(eventID)).
		Order(ent.Asc(timelineitem.FieldOrderIndex, timelineitem.FieldCreatedAt, timelineitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline items: %w", err)
	}
	out := make([]*models.TimelineItem, 0, len(rows))
	for _, item := range rows {
		out = append(out, toItem(item))
	}
	return out, nil
}

func (s *PostgresStore) UpdateItem(ctx context.Context, item *models.TimelineItem) error {
	update := s.client.TimelineItem.UpdateOneID(item.ID).
		SetTitle(item.Title).
		SetCategory(timelineitem.Category(item.Category)).
		SetStartTime(item.StartTime).
		SetStatus(timelineitem.Status(item.Status)).
		SetOrderIndex(item.OrderIndex).
		SetUpdatedAt(item.UpdatedAt)
	if item.Description != nil {
		update.SetDescription(*item.Description)
	} else {
		update.ClearDescription()
	}
	if item.EndTime != nil {
		update.SetEndTime(*item.EndTime)
	} else {
		update.ClearEndTime()
	}
	return mapError(update.Exec(ctx), "update timeline item")
}

func (s *PostgresStore) DeleteItem(ctx context.Context, id string) error {
	return mapError(s.client.TimelineItem.DeleteOneID(id).Exec(ctx), "delete timeline item")
}

func (s *PostgresStore) ApplyItemUpdate(ctx context.Context, u models.ItemUpdate) error {
	return applyItemUpdate(ctx, s.client.TimelineItem, u)
}

// ApplyItemUpdates writes all updates in a single transaction.
func (s *PostgresStore) ApplyItemUpdates(ctx context.Context, updates []models.ItemUpdate) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range updates {
		if err := applyItemUpdate(ctx, tx.TimelineItem, u); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit timeline updates: %w", err)
	}
	return nil
}

func applyItemUpdate(ctx context.Context, items *ent.TimelineItemClient, u models.ItemUpdate) error {
	update := items.UpdateOneID(u.ID).
		SetStartTime(u.StartTime).
		SetStatus(timelineitem.Status(u.Status)).
		SetUpdatedAt(u.UpdatedAt)
	if u.EndTime != nil {
		update.SetEndTime(*u.EndTime)
	} else {
		update.ClearEndTime()
	}
	return mapError(update.Exec(ctx), "update timeline item "+u.ID)
}

func (s *PostgresStore) SetItemOrder(ctx context.Context, itemID string, orderIndex int, updatedAt time.Time) error {
	err := s.client.TimelineItem.UpdateOneID(itemID).
		SetOrderIndex(orderIndex).
		SetUpdatedAt(updatedAt).
		Exec(ctx)
	return mapError(err, "update timeline item order")
}

func (s *PostgresStore) NextOrderIndex(ctx context.Context, eventID string) (int, error) {
	last, err := s.client.TimelineItem.Query().
		Where(timelineitem.EventIDEQ(eventID)).
		Order(ent.Desc(timelineitem.FieldOrderIndex)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query order index: %w", err)
	}
	return last.OrderIndex + 1, nil
}

func (s *PostgresStore) Close() error {
	return s.client.Close()
}

// mapError turns ent's not-found error into ErrNotFound and wraps the rest.
func mapError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func toEvent(e *ent.Event) *models.Event {
	d := e.Date.UTC()
	return &models.Event{
		ID:          e.ID,
		Name:        e.Name,
		Date:        time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Location:    e.Location,
		Description: e.Description,
		Status:      models.EventStatus(e.Status),
		CreatedAt:   e.CreatedAt.UTC(),
		UpdatedAt:   e.UpdatedAt.UTC(),
	}
}

func toItem(item *ent.TimelineItem) *models.TimelineItem {
	out := &models.TimelineItem{
		ID:          item.ID,
		EventID:     item.EventID,
		Title:       item.Title,
		Description: item.Description,
		Category:    models.Category(item.Category),
		StartTime:   item.StartTime.UTC(),
		Status:      models.ItemStatus(item.Status),
		OrderIndex:  item.OrderIndex,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
	if item.EndTime != nil {
		end := item.EndTime.UTC()
		out.EndTime = &end
	}
	return out
}
