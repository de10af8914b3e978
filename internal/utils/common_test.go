package utils

import "testing"

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		name string
		ptr  string
		want string
	}{
		{"empty", "", ""},
		{"root", "/", ""},
		{"fragment", "#/lists", "lists"},
		{"nested", "/lists/0/tasks/2/description", "lists[0].tasks[2].description"},
		{"escaped", "/a~1b/c~0d", "a/b.c~d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JSONPointerToPath(tt.ptr); got != tt.want {
				t.Errorf("JSONPointerToPath(%q): got %q, want %q", tt.ptr, got, tt.want)
			}
		})
	}
}

func TestBoolFromString(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", " yes ", "on", "y"} {
		if !BoolFromString(v) {
			t.Errorf("BoolFromString(%q): got false, want true", v)
		}
	}
	for _, v := range []string{"", "0", "false", "no", "maybe"} {
		if BoolFromString(v) {
			t.Errorf("BoolFromString(%q): got true, want false", v)
		}
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "task"); got != "task" {
		t.Errorf("Plural(1): got %q, want task", got)
	}
	if got := Plural(0, "task"); got != "tasks" {
		t.Errorf("Plural(0): got %q, want tasks", got)
	}
}
