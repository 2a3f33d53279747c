// Package todo holds the in-memory todo list for one interactive session.
//
// Every mutation replaces the list with a freshly built slice, so a Snapshot
// handed out earlier never changes underneath its holder. Operations on ids
// that are not in the list, and adds of blank text, are silent no-ops.
package todo

import (
	"slices"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// Op names the operation that produced an Event.
type Op string

const (
	OpAdd     Op = "add"
	OpToggle  Op = "toggle"
	OpEdit    Op = "edit"
	OpDelete  Op = "delete"
	OpPending Op = "pending"
)

// Snapshot is the full list state at one point in time.
type Snapshot struct {
	Todos   []model.Todo
	Pending string
}

// Partition splits the snapshot into incomplete and completed todos,
// each in list order.
func (s Snapshot) Partition() (incomplete, completed []model.Todo) {
	return partition(s.Todos)
}

// Event is delivered to subscribers after a successful mutation.
type Event struct {
	Op       Op
	ID       model.ID // empty for OpPending
	Snapshot Snapshot
}

// Store is not safe for concurrent use; drive it from one event loop.
type Store struct {
	todos   []model.Todo
	pending string
	ids     IDSource

	subs    map[int]func(Event)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithIDSource replaces the default sequence id source.
func WithIDSource(src IDSource) Option {
	return func(s *Store) {
		if src != nil {
			s.ids = src
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		ids:  NewSequence(),
		subs: map[int]func(Event){},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Add appends a todo holding text as given. Blank text (after trimming) is
// rejected and leaves the pending input alone; on success the pending input
// is cleared.
func (s *Store) Add(text string) (model.Todo, bool) {
	if strings.TrimSpace(text) == "" {
		return model.Todo{}, false
	}
	t := model.Todo{ID: s.ids.Next(), Text: text}

	next := make([]model.Todo, len(s.todos), len(s.todos)+1)
	copy(next, s.todos)
	s.todos = append(next, t)
	s.pending = ""
	s.emit(OpAdd, t.ID)
	return t, true
}

// Submit adds the pending input.
func (s *Store) Submit() (model.Todo, bool) { return s.Add(s.pending) }

// SetPending records the text currently typed into the add field.
func (s *Store) SetPending(text string) {
	if text == s.pending {
		return
	}
	s.pending = text
	s.emit(OpPending, "")
}

func (s *Store) Pending() string { return s.pending }

// Toggle flips Completed on the todo with the given id.
func (s *Store) Toggle(id model.ID) bool {
	return s.replace(OpToggle, id, func(t *model.Todo) { t.Completed = !t.Completed })
}

// Edit sets the todo's text verbatim. Empty text is allowed.
func (s *Store) Edit(id model.ID, text string) bool {
	return s.replace(OpEdit, id, func(t *model.Todo) { t.Text = text })
}

// Delete removes the todo with the given id.
func (s *Store) Delete(id model.ID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	next := make([]model.Todo, 0, len(s.todos)-1)
	next = append(next, s.todos[:i]...)
	next = append(next, s.todos[i+1:]...)
	s.todos = next
	s.emit(OpDelete, id)
	return true
}

// Partition is computed on every call.
func (s *Store) Partition() (incomplete, completed []model.Todo) {
	return partition(s.todos)
}

// Todos returns a copy of the list in insertion order.
func (s *Store) Todos() []model.Todo { return slices.Clone(s.todos) }

func (s *Store) Len() int { return len(s.todos) }

func (s *Store) Get(id model.ID) (model.Todo, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Todo{}, false
	}
	return s.todos[i], true
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{Todos: s.Todos(), Pending: s.pending}
}

// Subscribe registers fn for every successful mutation and returns a func
// that removes it. A nil fn is ignored.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) replace(op Op, id model.ID, mutate func(*model.Todo)) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	next := slices.Clone(s.todos)
	mutate(&next[i])
	s.todos = next
	s.emit(op, id)
	return true
}

func (s *Store) index(id model.ID) int {
	return slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
}

func (s *Store) emit(op Op, id model.ID) {
	if len(s.subs) == 0 {
		return
	}
	ev := Event{Op: op, ID: id, Snapshot: s.Snapshot()}
	keys := make([]int, 0, len(s.subs))
	for k := range s.subs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if fn, ok := s.subs[k]; ok {
			fn(ev)
		}
	}
}

func partition(todos []model.Todo) (incomplete, completed []model.Todo) {
	incomplete = make([]model.Todo, 0, len(todos))
	completed = make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if t.Completed {
			completed = append(completed, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}
	return incomplete, completed
}

// Stats counts completed and incomplete todos.
func Stats(todos []model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
