package assets

import (
	"errors"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.custom != nil {
			t.Error("expected no custom loader for empty path")
		}
		if _, err := resolver.LoadPart(PartTheme); err != nil {
			t.Errorf("LoadPart(theme) error = %v", err)
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if resolver.custom == nil {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_LoadPart_CustomOverridesEmbedded(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "pptx", "theme.xml", "<corporate/>")

	resolver, err := NewAssetResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	got, err := resolver.LoadPart(PartTheme)
	if err != nil {
		t.Fatalf("LoadPart(theme) error = %v", err)
	}
	if got != "<corporate/>" {
		t.Errorf("LoadPart(theme) = %q, want custom content", got)
	}

	// Parts absent from the custom directory come from the embedded set.
	embedded, err := NewEmbeddedLoader().LoadPart(PartSlideMaster)
	if err != nil {
		t.Fatalf("LoadPart(slide-master) error = %v", err)
	}
	got, err = resolver.LoadPart(PartSlideMaster)
	if err != nil {
		t.Fatalf("resolver.LoadPart(slide-master) error = %v", err)
	}
	if got != embedded {
		t.Error("expected embedded fallback for slide-master")
	}

	set, err := LoadPartSet(resolver)
	if err != nil {
		t.Fatalf("LoadPartSet(resolver) error = %v", err)
	}
	if set[PartTheme] != "<corporate/>" {
		t.Error("part set should carry the custom theme")
	}
}

func TestAssetResolver_ValidationErrorsNotFallenBack(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	_, err = resolver.LoadPart("../theme")
	if !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadPart() error = %v, want ErrInvalidAssetName", err)
	}
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"part not found", ErrPartNotFound, true},
		{"style not found", ErrStyleNotFound, true},
		{"invalid name", ErrInvalidAssetName, false},
		{"read error", ErrAssetRead, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isNotFoundError(tt.err); got != tt.want {
				t.Errorf("isNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
