// Package commit writes the per-item updates produced by the re-scheduling
// engine to the store.
//
// The default mode is best effort: every update is an independent write,
// issued concurrently, and a failure of some writes leaves the others
// committed. The caller learns which items failed through PartialCommitError
// and may re-run the whole operation, which recomputes from the store's
// current state. Transactional mode is available for stores that can write
// all rows in one transaction.
package commit

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/metrics"
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// Mode selects the write semantics of an Applier.
type Mode string

// Commit modes.
const (
	ModeBestEffort    Mode = "best_effort"
	ModeTransactional Mode = "transactional"
)

// ItemWriter writes a single item update.
type ItemWriter interface {
	ApplyItemUpdate(ctx context.Context, u models.ItemUpdate) error
}

// BatchWriter writes a set of item updates atomically.
type BatchWriter interface {
	ApplyItemUpdates(ctx context.Context, updates []models.ItemUpdate) error
}

// FailedUpdate names one update that could not be written.
type FailedUpdate struct {
	ItemID string `json:"item_id"`
	Err    error  `json:"-"`
}

// PartialCommitError reports that some writes failed after others succeeded.
// Applied writes are not rolled back.
type PartialCommitError struct {
	Applied []string
	Failed  []FailedUpdate
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("applied %d of %d timeline item updates; failed items: %s",
		len(e.Applied), len(e.Applied)+len(e.Failed), strings.Join(e.FailedIDs(), ", "))
}

// FailedIDs returns the ids of the items whose update failed, sorted.
func (e *PartialCommitError) FailedIDs() []string { return failedIDs(e.Failed) }

// Unwrap exposes the individual write errors.
func (e *PartialCommitError) Unwrap() []error { return failedErrs(e.Failed) }

// BatchFailedError reports that every write of a best-effort batch failed.
// Nothing was committed.
type BatchFailedError struct {
	Failed []FailedUpdate
}

func (e *BatchFailedError) Error() string {
	return fmt.Sprintf("all %d timeline item updates failed; failed items: %s",
		len(e.Failed), strings.Join(e.FailedIDs(), ", "))
}

// FailedIDs returns the ids of the items whose update failed, sorted.
func (e *BatchFailedError) FailedIDs() []string { return failedIDs(e.Failed) }

// Unwrap exposes the individual write errors.
func (e *BatchFailedError) Unwrap() []error { return failedErrs(e.Failed) }

func failedIDs(failed []FailedUpdate) []string {
	ids := make([]string, 0, len(failed))
	for _, f := range failed {
		ids = append(ids, f.ItemID)
	}
	sort.Strings(ids)
	return ids
}

func failedErrs(failed []FailedUpdate) []error {
	errs := make([]error, 0, len(failed))
	for _, f := range failed {
		errs = append(errs, f.Err)
	}
	return errs
}

// Config controls an Applier.
type Config struct {
	Mode         Mode
	Concurrency  int           // max in-flight writes in best-effort mode; <= 0 means unbounded
	WriteTimeout time.Duration // per-write timeout; 0 disables it
}

// Applier writes engine output to the store.
type Applier struct {
	writer  ItemWriter
	cfg     Config
	metrics *metrics.Metrics
}

// NewApplier creates an Applier. In transactional mode writer must also
// implement BatchWriter.
func NewApplier(writer ItemWriter, cfg Config, m *metrics.Metrics) (*Applier, error) {
	if cfg.Mode == "" {
		cfg.Mode = ModeBestEffort
	}
	switch cfg.Mode {
	case ModeBestEffort:
	case ModeTransactional:
		if _, ok := writer.(BatchWriter); !ok {
			return nil, fmt.Errorf("commit mode %q requires a store with transactional batch writes", cfg.Mode)
		}
	default:
		return nil, fmt.Errorf("unknown commit mode %q", cfg.Mode)
	}
	return &Applier{writer: writer, cfg: cfg, metrics: m}, nil
}

// Apply writes updates and returns the ones that were committed.
//
// In best-effort mode a mix of successes and failures returns the applied
// updates together with a *PartialCommitError. When every write fails no
// updates are returned and the error wraps a *BatchFailedError.
func (a *Applier) Apply(ctx context.Context, updates []models.ItemUpdate) ([]models.ItemUpdate, error) {
	if len(updates) == 0 {
		return []models.ItemUpdate{}, nil
	}

	start := time.Now()
	if a.cfg.Mode == ModeTransactional {
		err := a.writer.(BatchWriter).ApplyItemUpdates(ctx, updates)
		if err != nil {
			a.metrics.ObserveCommit(time.Since(start), 0, len(updates))
			return nil, fmt.Errorf("failed to apply timeline updates: %w", err)
		}
		a.metrics.ObserveCommit(time.Since(start), len(updates), 0)
		return updates, nil
	}

	errs := a.fanOut(ctx, updates)

	applied := make([]models.ItemUpdate, 0, len(updates))
	var failed []FailedUpdate
	for i, u := range updates {
		if errs[i] != nil {
			failed = append(failed, FailedUpdate{ItemID: u.ID, Err: errs[i]})
			continue
		}
		applied = append(applied, u)
	}
	a.metrics.ObserveCommit(time.Since(start), len(applied), len(failed))

	if len(failed) == 0 {
		return applied, nil
	}

	if len(applied) == 0 {
		bfe := &BatchFailedError{Failed: failed}
		slog.Warn("Timeline update batch failed", "failed_item_ids", bfe.FailedIDs())
		return nil, fmt.Errorf("failed to apply timeline updates: %w", bfe)
	}

	pce := &PartialCommitError{Failed: failed}
	for _, u := range applied {
		pce.Applied = append(pce.Applied, u.ID)
	}
	slog.Warn("Timeline update batch partially failed",
		"applied", len(applied),
		"failed", len(failed),
		"failed_item_ids", pce.FailedIDs())
	return applied, pce
}

// fanOut issues one write per update and waits for all of them.
// errs[i] holds the result of updates[i].
func (a *Applier) fanOut(ctx context.Context, updates []models.ItemUpdate) []error {
	errs := make([]error, len(updates))

	var sem chan struct{}
	if a.cfg.Concurrency > 0 {
		sem = make(chan struct{}, a.cfg.Concurrency)
	}

	var wg sync.WaitGroup
	for i, u := range updates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sem != nil {
				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-ctx.Done():
					errs[i] = ctx.Err()
					return
				}
			}
			errs[i] = a.write(ctx, u)
		}()
	}
	wg.Wait()

	return errs
}

func (a *Applier) write(ctx context.Context, u models.ItemUpdate) error {
	if a.cfg.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.WriteTimeout)
		defer cancel()
	}
	if err := a.writer.ApplyItemUpdate(ctx, u); err != nil {
		return fmt.Errorf("item %s: %w", u.ID, err)
	}
	return nil
}
