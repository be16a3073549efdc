package draft

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"go.uber.org/zap"
)

// State of a campaign in the editor
type State int

const (
	StateNew State = iota
	StateInMemory
	StatePersisted
	StateDeleted
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateInMemory:
		return "in_memory"
	case StatePersisted:
		return "persisted"
	case StateDeleted:
		return "deleted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// LeaveChoice is the user's answer when leaving with unsaved work
type LeaveChoice int

const (
	LeaveSave LeaveChoice = iota + 1
	LeaveDiscard
)

var (
	ErrNameRequired  = errors.New("a campaign name is required to save")
	ErrDraftDeleted  = errors.New("draft has been deleted")
	ErrEditorClosed  = errors.New("editor is closed")
	ErrInvalidChoice = errors.New("invalid leave choice")
)

// Fields are the tracked fields of a campaign draft
type Fields struct {
	Name       string
	ContactIDs []uuid.UUID
	Tone       domain.Tone
	Goal       domain.Goal
	Language   string
	Subject    string
	Body       string
}

func (f Fields) clone() Fields {
	f.ContactIDs = append([]uuid.UUID(nil), f.ContactIDs...)
	return f
}

// Store persists drafts. It is implemented by an API client or directly by the
// draft service.
type Store interface {
	Create(ctx context.Context, f Fields) (uuid.UUID, error)
	Save(ctx context.Context, id uuid.UUID, f Fields) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Editor drives one campaign through new → in-memory → persisted → deleted.
// The durable record is created the first time recipients are confirmed and
// the name is non-empty; later edits are autosaved through a Debouncer.
type Editor struct {
	store  Store
	nav    *Navigator
	logger *zap.Logger

	mu                  sync.Mutex
	state               State
	id                  uuid.UUID
	fields              Fields
	recipientsConfirmed bool
	pendingDest         string
	closed              bool

	// createMu serializes the one-time creation of the durable record
	createMu sync.Mutex

	autosave *Debouncer[uuid.UUID, Fields]
	release  func()
	saveErr  error
}

// NewEditor creates an editor and registers its navigation guard
func NewEditor(store Store, nav *Navigator, quiet time.Duration, logger *zap.Logger) (*Editor, error) {
	e := &Editor{store: store, nav: nav, logger: logger}
	e.autosave = NewDebouncer[uuid.UUID, Fields](quiet, nil, e.persist)

	release, err := nav.Register(e.allowNavigation)
	if err != nil {
		return nil, err
	}
	e.release = release
	return e, nil
}

func (e *Editor) persist(id uuid.UUID, f Fields) {
	ctx := context.Background()
	err := e.store.Save(ctx, id, f)

	e.mu.Lock()
	e.saveErr = err
	e.mu.Unlock()
	if err != nil {
		e.logger.Warn("Autosave failed", zap.String("draft_id", id.String()), zap.Error(err))
	}
}

// State returns the current lifecycle state
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ID returns the durable id, uuid.Nil until persisted
func (e *Editor) ID() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// Fields returns a copy of the tracked fields
func (e *Editor) Fields() Fields {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fields.clone()
}

// LastSaveError returns the error of the latest autosave, if any
func (e *Editor) LastSaveError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saveErr
}

// Edit applies change to the tracked fields
func (e *Editor) Edit(ctx context.Context, change func(*Fields)) error {
	e.mu.Lock()
	if err := e.usable(); err != nil {
		e.mu.Unlock()
		return err
	}
	change(&e.fields)
	if e.state == StateNew {
		e.state = StateInMemory
	}
	e.mu.Unlock()

	return e.sync(ctx)
}

// ConfirmRecipients marks that the user advanced past recipient selection
func (e *Editor) ConfirmRecipients(ctx context.Context) error {
	e.mu.Lock()
	if err := e.usable(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.recipientsConfirmed = true
	if e.state == StateNew {
		e.state = StateInMemory
	}
	e.mu.Unlock()

	return e.sync(ctx)
}

func (e *Editor) usable() error {
	if e.closed {
		return ErrEditorClosed
	}
	if e.state == StateDeleted {
		return ErrDraftDeleted
	}
	return nil
}

// sync creates the record once both conditions hold, otherwise schedules an autosave
func (e *Editor) sync(ctx context.Context) error {
	e.mu.Lock()
	state := e.state
	ready := e.recipientsConfirmed && strings.TrimSpace(e.fields.Name) != ""
	f := e.fields.clone()
	id := e.id
	e.mu.Unlock()

	switch {
	case state == StatePersisted:
		e.autosave.Schedule(id, f)
		return nil
	case state == StateInMemory && ready:
		return e.create(ctx)
	}
	return nil
}

// create waits for any create already in flight and re-checks the state, so
// concurrent edits produce a single durable record
func (e *Editor) create(ctx context.Context) error {
	e.createMu.Lock()
	defer e.createMu.Unlock()

	e.mu.Lock()
	state := e.state
	f := e.fields.clone()
	id := e.id
	e.mu.Unlock()

	switch state {
	case StatePersisted:
		e.autosave.Schedule(id, f)
		return nil
	case StateInMemory:
	default:
		return nil
	}

	id, err := e.store.Create(ctx, f)
	if err != nil {
		return fmt.Errorf("create draft: %w", err)
	}

	e.mu.Lock()
	discarded := e.state == StateDeleted
	if !discarded {
		e.id = id
		e.state = StatePersisted
	}
	latest := e.fields.clone()
	e.mu.Unlock()

	if discarded {
		if err := e.store.Delete(ctx, id); err != nil {
			e.logger.Warn("Failed to remove discarded draft", zap.String("draft_id", id.String()), zap.Error(err))
		}
		return nil
	}

	e.logger.Debug("Draft persisted", zap.String("draft_id", id.String()))

	// edits made while the create was in flight
	if !fieldsEqual(latest, f) {
		e.autosave.Schedule(id, latest)
	}
	return nil
}

func fieldsEqual(a, b Fields) bool {
	if a.Name != b.Name || a.Tone != b.Tone || a.Goal != b.Goal || a.Language != b.Language ||
		a.Subject != b.Subject || a.Body != b.Body || len(a.ContactIDs) != len(b.ContactIDs) {
		return false
	}
	for i := range a.ContactIDs {
		if a.ContactIDs[i] != b.ContactIDs[i] {
			return false
		}
	}
	return true
}

// NeedsDecision reports whether leaving now would lose work: the campaign only
// lives in memory and at least one recipient is selected.
func (e *Editor) NeedsDecision() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == StateInMemory && len(e.fields.ContactIDs) > 0
}

// BeforeUnload is the hard-close check: true means the user must confirm
func (e *Editor) BeforeUnload() bool {
	return e.NeedsDecision()
}

func (e *Editor) allowNavigation(to string) bool {
	if e.NeedsDecision() {
		e.mu.Lock()
		e.pendingDest = to
		e.mu.Unlock()
		return false
	}
	id := e.ID()
	if id != uuid.Nil {
		e.autosave.Flush(id)
	}
	return true
}

// PendingDestination is the navigation target blocked by the guard
func (e *Editor) PendingDestination() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pendingDest
}

// Leave resolves a blocked navigation. LeaveSave names and creates the draft,
// then navigates; LeaveDiscard navigates and drops the in-memory campaign.
func (e *Editor) Leave(ctx context.Context, choice LeaveChoice, name string) error {
	e.mu.Lock()
	dest := e.pendingDest
	e.mu.Unlock()

	switch choice {
	case LeaveSave:
		e.mu.Lock()
		if n := strings.TrimSpace(name); n != "" {
			e.fields.Name = n
		}
		if strings.TrimSpace(e.fields.Name) == "" {
			e.mu.Unlock()
			return ErrNameRequired
		}
		e.recipientsConfirmed = true
		e.mu.Unlock()

		if err := e.sync(ctx); err != nil {
			return err
		}
		if id := e.ID(); id != uuid.Nil {
			e.autosave.Flush(id)
		}
	case LeaveDiscard:
		e.mu.Lock()
		id := e.id
		if e.state == StateInMemory {
			e.state = StateDeleted
		}
		e.mu.Unlock()
		if id != uuid.Nil {
			e.autosave.Cancel(id)
		}
	default:
		return ErrInvalidChoice
	}

	e.mu.Lock()
	e.pendingDest = ""
	e.mu.Unlock()
	if dest != "" {
		e.nav.Force(dest)
	}
	return nil
}

// Delete removes the campaign. A campaign that never persisted is dropped locally.
func (e *Editor) Delete(ctx context.Context) error {
	e.mu.Lock()
	if e.state == StateDeleted {
		e.mu.Unlock()
		return nil
	}
	id := e.id
	persisted := e.state == StatePersisted
	e.mu.Unlock()

	if persisted {
		e.autosave.Cancel(id)
		if err := e.store.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete draft: %w", err)
		}
	}

	e.mu.Lock()
	e.state = StateDeleted
	e.mu.Unlock()
	return nil
}

// Close flushes pending autosaves and releases the navigation guard
func (e *Editor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	e.autosave.Close()
	e.release()
}
