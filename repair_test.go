package autodeck

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestAsSlideList
// ---------------------------------------------------------------------------

func TestAsSlideList(t *testing.T) {
	t.Parallel()

	slide := map[string]any{"title": "A"}

	tests := []struct {
		name   string
		input  any
		want   any
		wantOK bool
	}{
		{"mapping items wrapped", []any{slide}, map[string]any{"slides": []any{slide}}, true},
		{"non-mapping items dropped", []any{"x", slide, 1}, map[string]any{"slides": []any{slide}}, true},
		{"no mapping items", []any{"x", 1}, nil, false},
		{"empty sequence", []any{}, nil, false},
		{"mapping input", map[string]any{"slides": []any{}}, nil, false},
		{"string input", "slides", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := asSlideList(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("asSlideList() ok = %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("asSlideList() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAsCaseVariantKey
// ---------------------------------------------------------------------------

func TestAsCaseVariantKey(t *testing.T) {
	t.Parallel()

	list := []any{map[string]any{"title": "A"}}

	tests := []struct {
		name   string
		input  any
		want   any
		wantOK bool
	}{
		{
			name:   "capitalized key renamed",
			input:  map[string]any{"Slides": list},
			want:   map[string]any{"slides": list},
			wantOK: true,
		},
		{
			name:   "other keys kept",
			input:  map[string]any{"SLIDES": list, "theme": "dark"},
			want:   map[string]any{"slides": list, "theme": "dark"},
			wantOK: true,
		},
		{
			name:   "canonical key present",
			input:  map[string]any{"slides": list, "Slides": list},
			wantOK: false,
		},
		{
			name:   "two variants",
			input:  map[string]any{"Slides": list, "SLIDES": list},
			wantOK: false,
		},
		{
			name:   "similar but different key",
			input:  map[string]any{"slide": list, "slides_list": list},
			wantOK: false,
		},
		{
			name:   "sequence input",
			input:  list,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := asCaseVariantKey(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("asCaseVariantKey() ok = %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("asCaseVariantKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRepair - Variant order
// ---------------------------------------------------------------------------

func TestRepair(t *testing.T) {
	t.Parallel()

	t.Run("first applicable variant wins", func(t *testing.T) {
		t.Parallel()

		name, _, ok := repair([]any{map[string]any{"title": "A"}})
		if !ok || name != "AsSlideList" {
			t.Errorf("repair() = %q, %v, want AsSlideList, true", name, ok)
		}
	})

	t.Run("no variant applies", func(t *testing.T) {
		t.Parallel()

		name, candidate, ok := repair(map[string]any{})
		if ok || name != "" || candidate != nil {
			t.Errorf("repair() = %q, %v, %v, want no repair", name, candidate, ok)
		}
	})

	t.Run("variants do not mutate input", func(t *testing.T) {
		t.Parallel()

		input := map[string]any{"Slides": []any{}, "x": 1}
		if _, _, ok := repair(input); !ok {
			t.Fatal("repair() ok = false, want true")
		}
		if _, exists := input["slides"]; exists {
			t.Error("input gained canonical key")
		}
		if len(input) != 2 {
			t.Errorf("input has %d keys, want 2", len(input))
		}
	})
}
