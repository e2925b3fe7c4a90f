package impress

import (
	"errors"
	"testing"
)

func TestDefaultCatalog_NineEntriesInOrder(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 9 {
		t.Fatalf("Len() = %d, want 9", c.Len())
	}
	names := c.Names()
	if names[0] != "스크린샷 2025-08-17 오후 5.49.14.png" {
		t.Errorf("first entry = %q", names[0])
	}
	if names[8] != "스크린샷 2025-08-17 오후 6.15.07.png" {
		t.Errorf("last entry = %q", names[8])
	}
	if c.Description() != DefaultDescription {
		t.Errorf("Description() = %q, want %q", c.Description(), DefaultDescription)
	}
}

func TestCatalog_NamesReturnsCopy(t *testing.T) {
	c, err := NewCatalog("d", "a.png", "b.png")
	if err != nil {
		t.Fatal(err)
	}

	names := c.Names()
	names[0] = "mutated.png"

	if got := c.Names()[0]; got != "a.png" {
		t.Errorf("catalog mutated through Names(): got %q", got)
	}
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	input := []string{"a.png", "b.png"}
	c, err := NewCatalog("d", input...)
	if err != nil {
		t.Fatal(err)
	}
	input[1] = "z.png"

	if c.Contains("z.png") || !c.Contains("b.png") {
		t.Errorf("catalog tracks caller slice: %v", c.Names())
	}
}

func TestCatalog_ContainsIsExact(t *testing.T) {
	c, err := NewCatalog("d", "a.png")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"a.png", true},
		{"A.png", false},
		{"a.PNG", false},
		{" a.png", false},
		{"./a.png", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := c.Contains(tt.name); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewCatalog_Empty(t *testing.T) {
	c, err := NewCatalog("empty")
	if err != nil {
		t.Fatalf("empty catalog rejected: %v", err)
	}
	if c.Len() != 0 || len(c.Names()) != 0 {
		t.Errorf("expected empty catalog, got %v", c.Names())
	}
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"empty name", []string{"a.png", ""}},
		{"duplicate", []string{"a.png", "a.png"}},
		{"dot", []string{"."}},
		{"dotdot", []string{".."}},
		{"slash", []string{"dir/a.png"}},
		{"backslash", []string{`dir\a.png`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog("d", tt.names...)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("expected ErrInvalidCatalog, got: %v", err)
			}
		})
	}
}
