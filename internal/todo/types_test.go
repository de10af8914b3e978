package todo

import (
	"errors"
	"testing"
)

func newTestList(t *testing.T, name string, tasks ...string) *List {
	t.Helper()
	list, err := NewList(name)
	if err != nil {
		t.Fatalf("NewList(%q) failed: %v", name, err)
	}
	for _, d := range tasks {
		list.AddTask(d)
	}
	return list
}

func descriptions(l *List) []string {
	out := make([]string, 0, l.Len())
	for _, t := range l.Tasks() {
		out = append(out, t.Description())
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewTask(t *testing.T) {
	if _, err := NewTask(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("NewTask(\"\"): got %v, want ErrEmptyInput", err)
	}
	task, err := NewTask("buy milk")
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	if task.Completed() {
		t.Error("new task should not be completed")
	}
	if task.String() != "[ ] buy milk" {
		t.Errorf("String: got %q, want %q", task.String(), "[ ] buy milk")
	}
	task.Toggle()
	if task.String() != "[x] buy milk" {
		t.Errorf("String after toggle: got %q, want %q", task.String(), "[x] buy milk")
	}
	task.Rename("")
	if task.Description() != "buy milk" {
		t.Errorf("Rename(\"\") changed description to %q", task.Description())
	}
	task.Rename("buy oat milk")
	if task.Description() != "buy oat milk" {
		t.Errorf("Description: got %q, want %q", task.Description(), "buy oat milk")
	}
}

func TestNewList(t *testing.T) {
	if _, err := NewList(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("NewList(\"\"): got %v, want ErrEmptyName", err)
	}
	list := newTestList(t, "Main")
	list.Rename("")
	if list.Name() != "Main" {
		t.Errorf("Rename(\"\") changed name to %q", list.Name())
	}
	list.Rename("Home")
	if list.Name() != "Home" {
		t.Errorf("Name: got %q, want Home", list.Name())
	}
}

func TestAddThenDeleteLeavesListUnchanged(t *testing.T) {
	for _, d := range []string{"a", "walk dog", "  spaced  ", "ünïcode ✓"} {
		list := newTestList(t, "Main", "one", "two")
		before := descriptions(list)
		list.AddTask(d)
		list.DeleteTask(list.Len() - 1)
		if got := descriptions(list); !equalStrings(got, before) {
			t.Errorf("add/delete %q: got %v, want %v", d, got, before)
		}
	}
}

func TestAddEmptyTaskIsNoop(t *testing.T) {
	list := newTestList(t, "Main", "one")
	list.AddTask("")
	if list.Len() != 1 {
		t.Errorf("Len: got %d, want 1", list.Len())
	}
}

func TestOutOfRangeOperationsAreNoops(t *testing.T) {
	list := newTestList(t, "Main", "one", "two")
	for _, idx := range []int{-1, 2, 100} {
		list.ToggleTask(idx)
		list.RewordTask(idx, "changed")
		list.DeleteTask(idx)
		if _, ok := list.RemoveTask(idx); ok {
			t.Errorf("RemoveTask(%d): got ok, want not ok", idx)
		}
		if _, ok := list.Task(idx); ok {
			t.Errorf("Task(%d): got ok, want not ok", idx)
		}
	}
	if got := descriptions(list); !equalStrings(got, []string{"one", "two"}) {
		t.Errorf("tasks: got %v", got)
	}
	if list.CountCompleted() != 0 {
		t.Errorf("CountCompleted: got %d, want 0", list.CountCompleted())
	}
}

func TestRewordTask(t *testing.T) {
	list := newTestList(t, "Main", "one", "two")
	list.RewordTask(1, "")
	list.RewordTask(0, "first")
	if got := descriptions(list); !equalStrings(got, []string{"first", "two"}) {
		t.Errorf("tasks: got %v", got)
	}
}

func TestInsertTask(t *testing.T) {
	task, _ := NewTask("new")

	tests := []struct {
		name  string
		tasks []string
		index int
		want  []string
	}{
		{"front", []string{"a", "b"}, 0, []string{"new", "a", "b"}},
		{"middle", []string{"a", "b"}, 1, []string{"a", "new", "b"}},
		{"end", []string{"a", "b"}, 2, []string{"a", "b", "new"}},
		{"one past end goes to front", []string{"a", "b"}, 3, []string{"new", "a", "b"}},
		{"empty list one past end", nil, 1, []string{"new"}},
		{"far past end", []string{"a"}, 5, []string{"a"}},
		{"negative", []string{"a"}, -1, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := newTestList(t, "Main", tt.tasks...)
			list.InsertTask(tt.index, task)
			if got := descriptions(list); !equalStrings(got, tt.want) {
				t.Errorf("InsertTask(%d): got %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestDeleteCompletedTasks(t *testing.T) {
	list := newTestList(t, "Main", "a", "b", "c", "d")
	list.ToggleTask(0)
	list.ToggleTask(2)
	list.DeleteCompletedTasks()
	if got := descriptions(list); !equalStrings(got, []string{"b", "d"}) {
		t.Errorf("tasks: got %v, want [b d]", got)
	}

	list.DeleteAllTasks()
	if list.Len() != 0 {
		t.Errorf("Len after DeleteAllTasks: got %d, want 0", list.Len())
	}
}

func TestSortIsStablePartition(t *testing.T) {
	list := newTestList(t, "Main", "a", "b", "c", "d", "e")
	list.ToggleTask(1)
	list.ToggleTask(3)
	list.ToggleTask(4)

	list.Sort()
	want := []string{"b", "d", "e", "a", "c"}
	if got := descriptions(list); !equalStrings(got, want) {
		t.Fatalf("Sort: got %v, want %v", got, want)
	}
	for i, task := range list.Tasks() {
		if wantDone := i < 3; task.Completed() != wantDone {
			t.Errorf("task %d completed: got %v, want %v", i, task.Completed(), wantDone)
		}
	}

	list.Sort()
	if got := descriptions(list); !equalStrings(got, want) {
		t.Errorf("Sort not idempotent: got %v, want %v", got, want)
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	list := newTestList(t, "Main", "a")
	tasks := list.Tasks()
	tasks[0].Toggle()
	if task, _ := list.Task(0); task.Completed() {
		t.Error("mutating Tasks() result changed the list")
	}

	clone := list.Clone()
	clone.ToggleTask(0)
	clone.Rename("Other")
	if task, _ := list.Task(0); task.Completed() || list.Name() != "Main" {
		t.Error("mutating a clone changed the original")
	}
}

func TestCloneLists(t *testing.T) {
	lists := []*List{newTestList(t, "Main", "a"), newTestList(t, "Work", "b", "c")}
	clones := CloneLists(lists)

	if len(clones) != len(lists) {
		t.Fatalf("clones: got %d, want %d", len(clones), len(lists))
	}
	clones[1].DeleteAllTasks()
	if got := lists[1].Len(); got != 2 {
		t.Errorf("original tasks after clearing clone: got %d, want 2", got)
	}
	if clones[0] == lists[0] {
		t.Error("clone shares a list with the original")
	}
}
