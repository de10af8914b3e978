package todo

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestJSONRoundTrip(t *testing.T) {
	main := newTestList(t, "Main", "buy milk", "walk dog")
	main.ToggleTask(1)
	work := newTestList(t, "Work")

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, []*List{main, work}); err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("EncodeJSON output should end with a newline")
	}

	lists, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("lists: got %d, want 2", len(lists))
	}
	checkList(t, lists[0], "Main", []wantTask{{"buy milk", false}, {"walk dog", true}})
	checkList(t, lists[1], "Work", nil)
}

func TestDecodeJSONRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
	}{
		{"wrong version", `{"schema_version": 2, "lists": []}`, "schema_version"},
		{"missing lists", `{"schema_version": 1}`, ""},
		{"empty name", `{"schema_version": 1, "lists": [{"name": ""}]}`, "lists[0].name"},
		{"task prefix name", `{"schema_version": 1, "lists": [{"name": "- [x] no"}]}`, "lists[0].name"},
		{"empty description", `{"schema_version": 1, "lists": [{"name": "A", "tasks": [{"description": ""}]}]}`, "lists[0].tasks[0].description"},
		{"newline in description", `{"schema_version": 1, "lists": [{"name": "A", "tasks": [{"description": "a\nb"}]}]}`, "lists[0].tasks[0].description"},
		{"unknown field", `{"schema_version": 1, "lists": [], "extra": true}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("DecodeJSON: got nil error")
			}
			if tt.wantPath != "" && !strings.Contains(err.Error(), tt.wantPath) {
				t.Errorf("error %q should mention %q", err, tt.wantPath)
			}
		})
	}
}

func TestDecodeJSONMalformed(t *testing.T) {
	if _, err := DecodeJSON(strings.NewReader("{not json")); err == nil {
		t.Error("DecodeJSON of malformed input: got nil error")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	var raw interface{}
	input := `{"schema_version": 1, "lists": [{"name": ""}, {"name": "B", "tasks": [{"description": ""}]}]}`
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	result, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid: got true, want false")
	}
	if len(result.Errors) < 2 {
		t.Errorf("Errors: got %d, want at least 2: %v", len(result.Errors), result.Errors)
	}
}

func TestEncodeYAML(t *testing.T) {
	main := newTestList(t, "Main", "buy milk")
	main.ToggleTask(0)

	var buf bytes.Buffer
	if err := EncodeYAML(&buf, []*List{main}); err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if doc.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion: got %d, want %d", doc.SchemaVersion, SchemaVersion)
	}
	lists := doc.ToLists()
	if len(lists) != 1 {
		t.Fatalf("lists: got %d, want 1", len(lists))
	}
	checkList(t, lists[0], "Main", []wantTask{{"buy milk", true}})
}

func TestToListsSkipsEmptyEntries(t *testing.T) {
	doc := &Document{
		SchemaVersion: SchemaVersion,
		Lists: []ListDoc{
			{Name: ""},
			{Name: "A", Tasks: []TaskDoc{{Description: ""}, {Description: "kept", Completed: true}}},
		},
	}
	lists := doc.ToLists()
	if len(lists) != 1 {
		t.Fatalf("lists: got %d, want 1", len(lists))
	}
	checkList(t, lists[0], "A", []wantTask{{"kept", true}})
}
