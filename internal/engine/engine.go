package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hushd/hush/internal/config"
	"github.com/hushd/hush/internal/journal"
	"github.com/hushd/hush/internal/region"
	"github.com/hushd/hush/internal/rules"
)

// Engine owns the live rule and region state and coordinates everything
// around it: locking, scope-priority resolution, cascade deletion, and the
// save-per-mutation coupling to the configuration store.
//
// Thread-safety model:
//   - queries (ShouldCancel, Rules, Regions, ...) take a read lock and may
//     run concurrently
//   - mutations take the write lock, apply, and save before returning, so
//     a query issued after a mutation returns always observes its effect
//
// The expected workload is read-mostly: resolution runs once per relevant
// event occurrence, mutations at human-operator pace.
type Engine struct {
	mu      sync.RWMutex
	rules   *rules.Table
	regions *region.Table
	store   *config.Store
	journal *journal.Journal
	log     *slog.Logger
	debug   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithJournal attaches a mutation journal. Journal writes are best-effort:
// a failure is logged and never fails the mutation that triggered it.
func WithJournal(j *journal.Journal) Option {
	return func(e *Engine) {
		e.journal = j
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New creates an Engine backed by the given configuration store and loads
// the persisted document.
//
// On load failure the returned engine is still valid and empty - the
// returned error tells the caller what went wrong, and an embedding host
// that would rather run with an empty configuration than refuse to start
// can log it and carry on.
func New(store *config.Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		rules:   rules.NewTable(),
		regions: region.NewTable(),
		store:   store,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.Load(); err != nil {
		return e, err
	}
	return e, nil
}

// Load reads the persisted document and replaces the live state with it.
//
// Rule records that cannot be honored (unknown scope, or a REGION rule
// whose region is gone from the document) are pruned with a warning and
// the pruned document is re-saved. On any load failure the prior live
// state is left untouched.
func (e *Engine) Load() error {
	doc, err := e.store.Load()
	if err != nil {
		return err
	}

	dropped := config.Reconcile(doc)
	for _, rec := range dropped {
		e.log.Warn("dropping unresolvable rule from configuration",
			"event", rec.Event, "scope", rec.Scope, "region", rec.Region)
	}

	regionTable := region.NewTable()
	for _, rec := range doc.Regions {
		if !regionTable.Put(rec.Region()) {
			e.log.Warn("dropping duplicate region from configuration", "region", rec.Name)
		}
	}
	ruleTable := rules.NewTable()
	for _, rec := range doc.Rules {
		r, err := rec.Rule()
		if err != nil {
			// Reconcile already pruned invalid scopes; this only fires if
			// the two drift apart.
			e.log.Warn("dropping rule from configuration", "event", rec.Event, "error", err)
			continue
		}
		ruleTable.Put(r)
	}

	e.mu.Lock()
	e.rules = ruleTable
	e.regions = regionTable
	e.debug = doc.Debug
	e.mu.Unlock()

	if len(dropped) > 0 {
		if err := e.store.Save(doc); err != nil {
			e.log.Warn("failed to persist reconciled configuration", "error", err)
		}
	}
	return nil
}

// save flattens the live state into a document and persists it. Must be
// called with the write lock held. A save failure leaves the in-memory
// state authoritative; the durable copy is stale until the next
// successful save.
func (e *Engine) save() error {
	doc := config.NewDocument(e.rules.All(), e.regions.All(), e.debug)
	if err := e.store.Save(doc); err != nil {
		e.log.Error("configuration save failed; durable copy is stale", "error", err)
		return fmt.Errorf("save configuration: %w", err)
	}
	return nil
}

// record appends a journal entry if a journal is attached. Best-effort.
func (e *Engine) record(op, detail string) {
	if e.journal == nil {
		return
	}
	if err := e.journal.Record(context.Background(), op, detail); err != nil {
		e.log.Warn("journal write failed", "op", op, "error", err)
	}
}
