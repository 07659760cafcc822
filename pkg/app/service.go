package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/whittle/pkg/glyph"
	"tableflip.dev/whittle/pkg/store"
	"tableflip.dev/whittle/pkg/task"
)

// Service owns the authoritative in-memory task set. Mutations apply in memory
// first and then write through to persistence; write failures are logged and
// never surfaced to the caller, so a storage hiccup cannot block the user.
type Service struct {
	Persistence store.Persistence

	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string

	tasks  []*task.Task
	loaded bool
}

var (
	// ErrNotFound is returned for operations referencing an unknown task id.
	ErrNotFound = errors.New("app: task not found")

	// ErrEmptyName rejects tasks whose name trims to nothing.
	ErrEmptyName = errors.New("app: task name required")
)

// NewService creates a Service seeded from persistence. A load failure is not
// fatal; the service starts from an empty set.
func NewService(p store.Persistence) *Service {
	s := &Service{Persistence: p}
	s.load(context.Background())
	return s
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) load(ctx context.Context) {
	if s.Persistence != nil {
		s.tasks = s.Persistence.Tasks(ctx)
	}
	if s.tasks == nil {
		s.tasks = make([]*task.Task, 0)
	}
	s.loaded = true
}

// Reload replaces the in-memory set with whatever persistence holds now.
// Used after an out-of-band change is observed through the store watcher.
func (s *Service) Reload(ctx context.Context) {
	s.load(ctx)
}

// Tasks returns the current task set, most recently created first. The slice
// is a copy; the tasks are live and must not be mutated by callers.
func (s *Service) Tasks(ctx context.Context) []*task.Task {
	if !s.loaded {
		s.load(ctx)
	}
	out := make([]*task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*task.Task, error) {
	if !s.loaded {
		s.load(ctx)
	}
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Add creates a new task and prepends it to the visible ordering.
func (s *Service) Add(ctx context.Context, name string, kind glyph.Kind, timing glyph.Timing) (*task.Task, error) {
	if !s.loaded {
		s.load(ctx)
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	t := task.New(name, kind, timing)
	t.ID = s.newID()
	t.Created = task.Timestamp{Time: s.now()}
	t.Updated = t.Created
	s.tasks = append([]*task.Task{t}, s.tasks...)
	s.persist(t)
	return t, nil
}

// Fields carries the optional pieces of an update; nil means leave alone.
type Fields struct {
	Name   *string
	Kind   *glyph.Kind
	Timing *glyph.Timing
}

// Update merges fields into the task, recomputes its weight, and refreshes the
// updated timestamp.
func (s *Service) Update(ctx context.Context, id string, fields Fields) (*task.Task, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if fields.Name != nil {
		name := strings.TrimSpace(*fields.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		t.Name = name
	}
	if fields.Kind != nil {
		t.Kind = *fields.Kind
	}
	if fields.Timing != nil {
		t.Timing = *fields.Timing
	}
	t.Reweigh()
	t.Updated = task.Timestamp{Time: s.now()}
	s.persist(t)
	return t, nil
}

// Remove deletes the task permanently.
func (s *Service) Remove(ctx context.Context, id string) error {
	if !s.loaded {
		s.load(ctx)
	}
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			if s.Persistence != nil {
				if err := s.Persistence.Delete(id); err != nil {
					fmt.Fprintf(os.Stderr, "app: delete %s: %v\n", id, err)
				}
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ToggleCompleted flips the completed flag. Marking a task complete leaves its
// today selection alone; marking it back incomplete clears the selection.
func (s *Service) ToggleCompleted(ctx context.Context, id string) (*task.Task, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	wasCompleted := t.Completed
	t.Completed = !wasCompleted
	if wasCompleted {
		// Reopening a finished task pulls it off today's list; it has to be
		// picked again on the next pass.
		t.TodaySelected = false
	}
	t.Updated = task.Timestamp{Time: s.now()}
	s.persist(t)
	return t, nil
}

// SetTodaySelected records an accept or defer decision for the task.
func (s *Service) SetTodaySelected(ctx context.Context, id string, selected bool) (*task.Task, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.TodaySelected = selected
	t.Updated = task.Timestamp{Time: s.now()}
	s.persist(t)
	return t, nil
}

// ClearTodaySelections drops every task from the active day list, typically
// right before a fresh elimination pass.
func (s *Service) ClearTodaySelections(ctx context.Context) {
	if !s.loaded {
		s.load(ctx)
	}
	for _, t := range s.tasks {
		if !t.TodaySelected {
			continue
		}
		t.TodaySelected = false
		t.Updated = task.Timestamp{Time: s.now()}
		s.persist(t)
	}
}

func (s *Service) persist(t *task.Task) {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.Store(t); err != nil {
		fmt.Fprintf(os.Stderr, "app: store %s: %v\n", t.ID, err)
	}
}
