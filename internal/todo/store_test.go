package todo

import (
	"reflect"
	"testing"

	"github.com/Makepad-fr/tada/internal/model"
)

func ids(todos []model.Todo) []model.ID {
	out := make([]model.ID, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

func TestStore_Add(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain", "Buy milk", true},
		{"padded is stored raw", "  hi  ", true},
		{"single rune", "x", true},
		{"empty", "", false},
		{"spaces", "   ", false},
		{"tabs and newlines", "\t\n ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.SetPending(tt.text)

			got, ok := s.Add(tt.text)
			if ok != tt.want {
				t.Fatalf("Add(%q) ok = %v, want %v", tt.text, ok, tt.want)
			}
			if !tt.want {
				if s.Len() != 0 {
					t.Errorf("Len() = %d after rejected add, want 0", s.Len())
				}
				if s.Pending() != tt.text {
					t.Errorf("Pending() = %q, want untouched %q", s.Pending(), tt.text)
				}
				return
			}
			if s.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", s.Len())
			}
			if got.Text != tt.text {
				t.Errorf("Text = %q, want %q", got.Text, tt.text)
			}
			if got.Completed {
				t.Error("new todo should not be completed")
			}
			if got.ID == "" {
				t.Error("new todo should have an id")
			}
			if s.Pending() != "" {
				t.Errorf("Pending() = %q after add, want empty", s.Pending())
			}
		})
	}
}

func TestStore_AddAssignsUniqueIDs(t *testing.T) {
	s := NewStore()
	seen := map[model.ID]bool{}
	for i := 0; i < 50; i++ {
		td, ok := s.Add("item")
		if !ok {
			t.Fatal("Add failed")
		}
		if seen[td.ID] {
			t.Fatalf("duplicate id %q", td.ID)
		}
		seen[td.ID] = true
	}
	// ids stay unique after deletes too
	first := s.Todos()[0].ID
	s.Delete(first)
	td, _ := s.Add("again")
	if td.ID == first {
		t.Errorf("id %q was reused", first)
	}
}

func TestStore_Submit(t *testing.T) {
	s := NewStore()
	s.SetPending("Walk dog")
	td, ok := s.Submit()
	if !ok || td.Text != "Walk dog" {
		t.Fatalf("Submit() = %+v, %v", td, ok)
	}
	if s.Pending() != "" {
		t.Errorf("Pending() = %q, want empty", s.Pending())
	}

	s.SetPending("  ")
	if _, ok := s.Submit(); ok {
		t.Error("Submit with blank pending should be rejected")
	}
	if s.Pending() != "  " {
		t.Errorf("Pending() = %q, want unchanged", s.Pending())
	}
}

func TestStore_ToggleOnlyTouchesMatch(t *testing.T) {
	s := NewStore()
	a, _ := s.Add("a")
	b, _ := s.Add("b")
	c, _ := s.Add("c")
	before := s.Todos()

	if !s.Toggle(b.ID) {
		t.Fatal("Toggle returned false for present id")
	}
	after := s.Todos()
	if !after[1].Completed {
		t.Error("b should be completed")
	}
	if after[0] != before[0] || after[2] != before[2] {
		t.Errorf("other todos changed: before %+v after %+v", before, after)
	}
	if !reflect.DeepEqual(ids(after), []model.ID{a.ID, b.ID, c.ID}) {
		t.Errorf("order changed: %v", ids(after))
	}
	if before[1].Completed {
		t.Error("earlier copy was mutated in place")
	}

	s.Toggle(b.ID)
	if got, _ := s.Get(b.ID); got.Completed {
		t.Error("second toggle should restore incomplete")
	}
}

func TestStore_SnapshotIsNotMutated(t *testing.T) {
	s := NewStore()
	a, _ := s.Add("a")
	snap := s.Snapshot()

	s.Toggle(a.ID)
	s.Edit(a.ID, "changed")
	s.Add("b")

	if len(snap.Todos) != 1 || snap.Todos[0].Completed || snap.Todos[0].Text != "a" {
		t.Errorf("snapshot changed: %+v", snap.Todos)
	}
}

func TestStore_EditVerbatim(t *testing.T) {
	s := NewStore()
	a, _ := s.Add("a")
	for _, text := range []string{"  spaced  ", "", "Buy oat milk"} {
		if !s.Edit(a.ID, text) {
			t.Fatalf("Edit(%q) returned false", text)
		}
		got, _ := s.Get(a.ID)
		if got.Text != text {
			t.Errorf("Text = %q, want %q", got.Text, text)
		}
	}
}

func TestStore_MissingIDIsNoop(t *testing.T) {
	s := NewStore()
	s.Add("a")
	s.Add("b")
	before := s.Todos()

	var events int
	s.Subscribe(func(Event) { events++ })

	if s.Toggle("nope") {
		t.Error("Toggle(missing) = true")
	}
	if s.Edit("nope", "x") {
		t.Error("Edit(missing) = true")
	}
	if s.Delete("nope") {
		t.Error("Delete(missing) = true")
	}
	if !reflect.DeepEqual(before, s.Todos()) {
		t.Errorf("list changed: %+v -> %+v", before, s.Todos())
	}
	if events != 0 {
		t.Errorf("got %d events for no-ops, want 0", events)
	}
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	a, _ := s.Add("a")
	b, _ := s.Add("b")
	c, _ := s.Add("c")

	if !s.Delete(b.ID) {
		t.Fatal("Delete returned false")
	}
	if got := ids(s.Todos()); !reflect.DeepEqual(got, []model.ID{a.ID, c.ID}) {
		t.Errorf("ids = %v", got)
	}
	if _, ok := s.Get(b.ID); ok {
		t.Error("deleted todo still present")
	}
}

func TestStore_Partition(t *testing.T) {
	s := NewStore()
	var all []model.Todo
	for _, text := range []string{"1", "2", "3", "4", "5"} {
		td, _ := s.Add(text)
		all = append(all, td)
	}
	s.Toggle(all[1].ID)
	s.Toggle(all[3].ID)
	s.Toggle(all[4].ID)

	inc, done := s.Partition()
	if got := ids(inc); !reflect.DeepEqual(got, []model.ID{all[0].ID, all[2].ID}) {
		t.Errorf("incomplete = %v", got)
	}
	if got := ids(done); !reflect.DeepEqual(got, []model.ID{all[1].ID, all[3].ID, all[4].ID}) {
		t.Errorf("completed = %v", got)
	}

	seen := map[model.ID]int{}
	for _, td := range append(inc, done...) {
		seen[td.ID]++
	}
	if len(seen) != s.Len() {
		t.Errorf("partition covers %d ids, list has %d", len(seen), s.Len())
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("id %s appears %d times", id, n)
		}
	}

	// derived fresh: reflects later changes
	s.Toggle(all[0].ID)
	inc, _ = s.Partition()
	if got := ids(inc); !reflect.DeepEqual(got, []model.ID{all[2].ID}) {
		t.Errorf("incomplete after toggle = %v", got)
	}
}

func TestStore_Scenario(t *testing.T) {
	s := NewStore()

	milk, ok := s.Add("Buy milk")
	if !ok {
		t.Fatal("add failed")
	}
	if got := s.Todos(); len(got) != 1 || got[0].Text != "Buy milk" || got[0].Completed {
		t.Fatalf("after add: %+v", got)
	}

	s.Toggle(milk.ID)
	inc, done := s.Partition()
	if len(inc) != 0 || len(done) != 1 || done[0].ID != milk.ID || !done[0].Completed {
		t.Fatalf("after toggle: inc=%+v done=%+v", inc, done)
	}

	s.Edit(milk.ID, "Buy oat milk")
	got, _ := s.Get(milk.ID)
	if got.Text != "Buy oat milk" || !got.Completed {
		t.Fatalf("after edit: %+v", got)
	}

	s.Delete(milk.ID)
	if s.Len() != 0 {
		t.Fatalf("after delete: %+v", s.Todos())
	}
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()
	var got []Event
	cancel := s.Subscribe(func(ev Event) { got = append(got, ev) })

	a, _ := s.Add("a")
	s.Add("   ")
	s.SetPending("b")
	s.SetPending("b")
	s.Toggle(a.ID)
	s.Edit(a.ID, "a2")
	s.Delete(a.ID)

	wantOps := []Op{OpAdd, OpPending, OpToggle, OpEdit, OpDelete}
	if len(got) != len(wantOps) {
		t.Fatalf("got %d events, want %d: %+v", len(got), len(wantOps), got)
	}
	for i, op := range wantOps {
		if got[i].Op != op {
			t.Errorf("event %d op = %s, want %s", i, got[i].Op, op)
		}
	}
	if got[2].ID != a.ID || !got[2].Snapshot.Todos[0].Completed {
		t.Errorf("toggle event = %+v", got[2])
	}
	if got[1].Snapshot.Pending != "b" {
		t.Errorf("pending event snapshot = %+v", got[1].Snapshot)
	}

	cancel()
	s.Add("c")
	if len(got) != len(wantOps) {
		t.Error("cancelled subscriber still called")
	}
}

func TestStats(t *testing.T) {
	done, pending := Stats([]model.Todo{{Completed: true}, {}, {}})
	if done != 1 || pending != 2 {
		t.Errorf("Stats = %d, %d, want 1, 2", done, pending)
	}
}

func TestStore_SubscribeNil(t *testing.T) {
	s := NewStore()
	cancel := s.Subscribe(nil)
	if _, ok := s.Add("a"); !ok {
		t.Fatal("Add failed with a nil subscriber registered")
	}
	cancel()
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
