package pipeline

import (
	"strings"
	"testing"
)

// Notes:
// - html/template escaping is exercised with hostile slide text and links;
//   tests assert on substrings of the generated document.

func samplePreviewDeck() PreviewDeck {
	return PreviewDeck{
		Title: "Go <Concurrency>",
		Slides: []PreviewSlide{
			{
				Number:     1,
				Role:       RoleTitle,
				Title:      "Go <Concurrency>",
				TitleColor: "FFFFFF",
				Background: "193264",
				Caption:    &PreviewBox{Text: "Auto-Generated Deck • Powered by AI", Color: "C8C8C8", X: 5, Y: 6.5, Width: 3, Height: 0.5},
				AccentBar:  &PreviewBox{Color: "8A2BE2", X: 0.75, Y: 3.9, Width: 8.5, Height: 0.15},
			},
			{
				Number:     2,
				Role:       RoleContent,
				Title:      "Channels",
				TitleColor: "003366",
				Background: "E6F0FA",
				TextColor:  "323232",
				Lines: []PreviewLine{
					{Marker: "✅", Spans: ParseInline("Use **buffered** channels")},
					{Marker: "📈", Spans: []Span{{Text: "<script>alert(1)</script>"}}},
					{Marker: "🔑", Spans: []Span{{Text: "bad link", Link: "javascript:alert(1)"}}},
				},
				Notes: []string{"Speak slowly", "Pause"},
			},
		},
	}
}

func TestPreviewBuilder_Build(t *testing.T) {
	t.Parallel()

	b, err := NewPreviewBuilder("body { color: black; }")
	if err != nil {
		t.Fatalf("NewPreviewBuilder() error = %v", err)
	}
	got, err := b.Build(samplePreviewDeck())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name    string
		want    string
		present bool
	}{
		{"doctype", "<!DOCTYPE html>", true},
		{"inlined css", "body { color: black; }", true},
		{"title escaped", "Go &lt;Concurrency&gt;", true},
		{"raw title absent", "<h1 class=\"slide-title\" style=\"color: #FFFFFF\">Go <Concurrency>", false},
		{"title background", "background-color: #193264", true},
		{"caption text", "Auto-Generated Deck • Powered by AI", true},
		{"accent bar geometry", "height: 0.15in", true},
		{"bold span", "<strong>buffered</strong>", true},
		{"marker", "✅ Use", true},
		{"script escaped", "&lt;script&gt;alert(1)&lt;/script&gt;", true},
		{"raw script absent", "<script>alert(1)</script>", false},
		{"javascript link neutralized", "javascript:alert", false},
		{"notes", "<p>Speak slowly</p><p>Pause</p>", true},
		{"second slide id", `id="slide-2"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if strings.Contains(got, tt.want) != tt.present {
				t.Errorf("Build() contains %q = %v, want %v", tt.want, !tt.present, tt.present)
			}
		})
	}
}

func TestPreviewBuilder_Build_EmptyDeck(t *testing.T) {
	t.Parallel()

	b, err := NewPreviewBuilder("")
	if err != nil {
		t.Fatalf("NewPreviewBuilder() error = %v", err)
	}
	got, err := b.Build(PreviewDeck{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if strings.Contains(got, "<section") {
		t.Error("empty deck should render no slides")
	}
}
