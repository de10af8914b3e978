package todo

import (
	"errors"
	"slices"
)

// DefaultListName is used when a new list set is created without a name.
const DefaultListName = "Main"

var (
	// ErrEmptyInput is returned when a task is created with an empty description.
	ErrEmptyInput = errors.New("empty task description")
	// ErrEmptyName is returned when a list is created with an empty name.
	ErrEmptyName = errors.New("empty list name")
)

// Task represents a single task in a list.
type Task struct {
	description string
	completed   bool
}

// NewTask creates an incomplete task.
func NewTask(description string) (Task, error) {
	if description == "" {
		return Task{}, ErrEmptyInput
	}
	return Task{description: description}, nil
}

// Description returns the task description.
func (t Task) Description() string {
	return t.description
}

// Completed reports whether the task is done.
func (t Task) Completed() bool {
	return t.completed
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.completed = !t.completed
}

// Rename replaces the description. Empty descriptions are ignored.
func (t *Task) Rename(description string) {
	if description == "" {
		return
	}
	t.description = description
}

// Mark returns the status character used inside the brackets.
func (t Task) Mark() string {
	if t.completed {
		return "x"
	}
	return " "
}

// String renders the task as "[x] description" or "[ ] description".
func (t Task) String() string {
	return "[" + t.Mark() + "] " + t.description
}

// List groups related tasks under a name.
type List struct {
	name  string
	tasks []Task
}

// NewList creates an empty list.
func NewList(name string) (*List, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &List{name: name}, nil
}

// Name returns the list name.
func (l *List) Name() string {
	return l.name
}

// Len returns the number of tasks in the list.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in display order.
func (l *List) Tasks() []Task {
	return slices.Clone(l.tasks)
}

// Task returns the task at index.
func (l *List) Task(index int) (Task, bool) {
	if !l.inRange(index) {
		return Task{}, false
	}
	return l.tasks[index], true
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	return &List{name: l.name, tasks: slices.Clone(l.tasks)}
}

// Rename changes the list name. Empty names are ignored.
func (l *List) Rename(name string) {
	if name == "" {
		return
	}
	l.name = name
}

// AddTask appends a new incomplete task. Empty descriptions are ignored.
func (l *List) AddTask(description string) {
	task, err := NewTask(description)
	if err != nil {
		return
	}
	l.tasks = append(l.tasks, task)
}

// InsertTask inserts task at index. An index one past the end inserts at the
// front, which is where a paste above the first task of an empty list lands.
// Larger indexes are ignored.
func (l *List) InsertTask(index int, task Task) {
	switch {
	case index < 0:
		return
	case index <= len(l.tasks):
		l.tasks = slices.Insert(l.tasks, index, task)
	case index == len(l.tasks)+1:
		l.tasks = slices.Insert(l.tasks, 0, task)
	}
}

// RewordTask changes the description of the task at index.
func (l *List) RewordTask(index int, description string) {
	if !l.inRange(index) {
		return
	}
	l.tasks[index].Rename(description)
}

// ToggleTask flips the completion flag of the task at index.
func (l *List) ToggleTask(index int) {
	if !l.inRange(index) {
		return
	}
	l.tasks[index].Toggle()
}

// DeleteTask removes the task at index.
func (l *List) DeleteTask(index int) {
	l.RemoveTask(index)
}

// RemoveTask removes the task at index and returns it.
func (l *List) RemoveTask(index int) (Task, bool) {
	if !l.inRange(index) {
		return Task{}, false
	}
	task := l.tasks[index]
	l.tasks = slices.Delete(l.tasks, index, index+1)
	return task, true
}

// DeleteCompletedTasks removes completed tasks, keeping the order of the rest.
func (l *List) DeleteCompletedTasks() {
	l.tasks = slices.DeleteFunc(l.tasks, func(t Task) bool {
		return t.completed
	})
}

// DeleteAllTasks removes every task from the list.
func (l *List) DeleteAllTasks() {
	l.tasks = nil
}

// Sort moves completed tasks to the front. Relative order inside the completed
// and incomplete groups is preserved.
func (l *List) Sort() {
	sorted := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.completed {
			sorted = append(sorted, t)
		}
	}
	for _, t := range l.tasks {
		if !t.completed {
			sorted = append(sorted, t)
		}
	}
	l.tasks = sorted
}

// CountCompleted returns the number of completed tasks.
func (l *List) CountCompleted() int {
	n := 0
	for _, t := range l.tasks {
		if t.completed {
			n++
		}
	}
	return n
}

func (l *List) inRange(index int) bool {
	return index >= 0 && index < len(l.tasks)
}

// CloneLists returns a deep copy of a list set.
func CloneLists(lists []*List) []*List {
	out := make([]*List, len(lists))
	for i, l := range lists {
		out[i] = l.Clone()
	}
	return out
}
