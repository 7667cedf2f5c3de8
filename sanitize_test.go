package autodeck

import "testing"

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"topic with punctuation", "My Topic!! 2024.pptx", "My_Topic_2024.pptx"},
		{"extension added", "Go generics", "Go_generics.pptx"},
		{"uppercase extension normalized", "Deck.PPTX", "Deck.pptx"},
		{"other extension kept in stem", "notes.txt", "notes.txt.pptx"},
		{"nothing left", "???", "deck.pptx"},
		{"empty", "", "deck.pptx"},
		{"extension only", ".pptx", "deck.pptx"},
		{"dots only", "...", "deck.pptx"},
		{"hidden file dot trimmed", ".secret", "secret.pptx"},
		{"unicode dropped", "Économie 2025", "conomie_2025.pptx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    Input
		topic string
		want  string
	}{
		{"derived from topic", Input{}, "Go Generics", "Go_Generics.pptx"},
		{"derived into output dir", Input{OutputDir: "out"}, "Go", "out/Go.pptx"},
		{"explicit bare name into output dir", Input{OutFile: "talk", OutputDir: "out"}, "Go", "out/talk.pptx"},
		{"explicit path keeps directory", Input{OutFile: "slides/My Talk.pptx", OutputDir: "out"}, "Go", "slides/My_Talk.pptx"},
		{"explicit dot-slash path", Input{OutFile: "./talk.pptx", OutputDir: "out"}, "Go", "talk.pptx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(tt.in, tt.topic); got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
