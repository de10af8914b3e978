package todo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/tasks-go/internal/utils"
)

// SchemaVersion is the version written to exported documents.
const SchemaVersion = 1

const schemaURL = "https://github.com/nibzard/tasks-go/tasks.schema.json"

//go:embed tasks.schema.json
var schemaSource string

// Document is the JSON/YAML interchange form of a list set.
type Document struct {
	SchemaVersion int       `json:"schema_version" yaml:"schema_version"`
	Lists         []ListDoc `json:"lists" yaml:"lists"`
}

// ListDoc is one exported list.
type ListDoc struct {
	Name  string    `json:"name" yaml:"name"`
	Tasks []TaskDoc `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// TaskDoc is one exported task.
type TaskDoc struct {
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // dot path to the error location
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult collects every schema violation found in a document.
type ValidationResult struct {
	Valid  bool
	Errors []error
}

// Err joins the result errors into one, or returns nil when valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("invalid document: %s", strings.Join(msgs, "; "))
}

// NewDocument converts a list set into its interchange form.
func NewDocument(lists []*List) *Document {
	doc := &Document{SchemaVersion: SchemaVersion, Lists: make([]ListDoc, 0, len(lists))}
	for _, l := range lists {
		ld := ListDoc{Name: l.name}
		for _, t := range l.tasks {
			ld.Tasks = append(ld.Tasks, TaskDoc{Description: t.description, Completed: t.completed})
		}
		doc.Lists = append(doc.Lists, ld)
	}
	return doc
}

// ToLists converts the document back into lists. Entries with an empty name or
// description are skipped.
func (d *Document) ToLists() []*List {
	lists := make([]*List, 0, len(d.Lists))
	for _, ld := range d.Lists {
		list, err := NewList(ld.Name)
		if err != nil {
			continue
		}
		for _, td := range ld.Tasks {
			task, err := NewTask(td.Description)
			if err != nil {
				continue
			}
			task.completed = td.Completed
			list.tasks = append(list.tasks, task)
		}
		lists = append(lists, list)
	}
	return lists
}

// EncodeJSON writes lists as an indented JSON document with a trailing newline.
func EncodeJSON(w io.Writer, lists []*List) error {
	data, err := json.MarshalIndent(NewDocument(lists), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// EncodeYAML writes lists as a YAML document.
func EncodeYAML(w io.Writer, lists []*List) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(lists)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// DecodeJSON reads a JSON document, validates it against the embedded schema
// and returns its lists.
func DecodeJSON(r io.Reader) ([]*List, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	result, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc.ToLists(), nil
}

// Validate checks a decoded JSON value against the embedded schema.
func Validate(v interface{}) (*ValidationResult, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	result := &ValidationResult{Valid: true}
	if err := schema.Validate(v); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
