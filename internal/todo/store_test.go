package todo

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type wantTask struct {
	desc string
	done bool
}

func checkList(t *testing.T, l *List, name string, want []wantTask) {
	t.Helper()
	if l.Name() != name {
		t.Errorf("Name: got %q, want %q", l.Name(), name)
	}
	tasks := l.Tasks()
	if len(tasks) != len(want) {
		t.Fatalf("list %q: got %d tasks, want %d", name, len(tasks), len(want))
	}
	for i, w := range want {
		if tasks[i].Description() != w.desc || tasks[i].Completed() != w.done {
			t.Errorf("list %q task %d: got (%q, %v), want (%q, %v)",
				name, i, tasks[i].Description(), tasks[i].Completed(), w.desc, w.done)
		}
	}
}

func TestParseScenario(t *testing.T) {
	input := "Main\n- [x] buy milk\n- [ ] walk dog\n\nWork\n- [ ] finish report\n"
	lists, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("lists: got %d, want 2", len(lists))
	}
	checkList(t, lists[0], "Main", []wantTask{{"buy milk", true}, {"walk dog", false}})
	checkList(t, lists[1], "Work", []wantTask{{"finish report", false}})
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNames []string
		wantTasks []int
	}{
		{"empty", "", nil, nil},
		{"orphan task dropped", "- [ ] orphan\nMain\n- [ ] kept\n", []string{"Main"}, []int{1}},
		{"short prefix is a list", "- [x]\n", []string{"- [x]"}, []int{0}},
		{"empty description skipped", "Main\n- [x] \n", []string{"Main"}, []int{0}},
		{"crlf", "Main\r\n- [x] a\r\n\r\n", []string{"Main"}, []int{1}},
		{"blank lines only", "\n\n\n", nil, nil},
		{"no separator", "A\nB\n- [ ] b\n", []string{"A", "B"}, []int{0, 1}},
		{"description split mid-rune skipped", "Main\n- [a✔ foo\n- [ ] ok\n", []string{"Main"}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lists, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(lists) != len(tt.wantNames) {
				t.Fatalf("lists: got %d, want %d", len(lists), len(tt.wantNames))
			}
			for i, l := range lists {
				if l.Name() != tt.wantNames[i] {
					t.Errorf("list %d name: got %q, want %q", i, l.Name(), tt.wantNames[i])
				}
				if l.Len() != tt.wantTasks[i] {
					t.Errorf("list %d tasks: got %d, want %d", i, l.Len(), tt.wantTasks[i])
				}
			}
		})
	}
}

func TestParseStatusCharacter(t *testing.T) {
	lists, err := Parse(strings.NewReader("Main\n- [x] done\n- [X] upper\n- [?] odd\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	checkList(t, lists[0], "Main", []wantTask{{"done", true}, {"upper", false}, {"odd", false}})
}

func TestWriteFormat(t *testing.T) {
	main := newTestList(t, "Main", "buy milk", "walk dog")
	main.ToggleTask(0)
	work := newTestList(t, "Work", "finish report")

	var buf bytes.Buffer
	if err := Write(&buf, []*List{main, work}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := "Main\n- [x] buy milk\n- [ ] walk dog\n\nWork\n- [ ] finish report\n\n"
	if buf.String() != want {
		t.Errorf("Write:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultStoreFile)

	main := newTestList(t, "Main", "buy milk", "walk dog", "call mum")
	main.ToggleTask(0)
	main.ToggleTask(2)
	empty := newTestList(t, "Empty")
	work := newTestList(t, "Work", "finish report [draft]")
	original := []*List{main, empty, work}

	if err := Save(path, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(original) {
		t.Fatalf("lists: got %d, want %d", len(loaded), len(original))
	}
	for i, l := range original {
		want := make([]wantTask, 0, l.Len())
		for _, task := range l.Tasks() {
			want = append(want, wantTask{task.Description(), task.Completed()})
		}
		checkList(t, loaded[i], l.Name(), want)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultStoreFile)
	if err := os.WriteFile(path, []byte("Old\n- [ ] a\n- [ ] b\n- [ ] c\n\nOther\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := Save(path, NewDefault("")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "Main\n\n" {
		t.Errorf("file: got %q, want %q", data, "Main\n\n")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load of missing file: got nil error")
	}
	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("error type: got %T, want *StoreError", err)
	}
	if storeErr.Kind != StoreUnreadable {
		t.Errorf("Kind: got %q, want %q", storeErr.Kind, StoreUnreadable)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist: %v", err)
	}
}

func TestSaveUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", DefaultStoreFile)
	err := Save(path, NewDefault("Main"))
	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("error type: got %T, want *StoreError", err)
	}
	if storeErr.Kind != StoreUnwritable {
		t.Errorf("Kind: got %q, want %q", storeErr.Kind, StoreUnwritable)
	}
}

func TestNewDefault(t *testing.T) {
	lists := NewDefault("")
	if len(lists) != 1 || lists[0].Name() != DefaultListName {
		t.Errorf("NewDefault(\"\"): got %d lists, first %q", len(lists), lists[0].Name())
	}
	lists = NewDefault("Groceries")
	if len(lists) != 1 || lists[0].Name() != "Groceries" || lists[0].Len() != 0 {
		t.Errorf("NewDefault(Groceries): unexpected result")
	}
}

func TestCanStoreListName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Groceries", true},
		{"- [x", true},
		{"[x] not a task", true},
		{"", false},
		{"   ", false},
		{"two\nlines", false},
		{"- [ ] task", false},
		{"- [x] done", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanStoreListName(tt.name); got != tt.want {
				t.Errorf("CanStoreListName(%q): got %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
