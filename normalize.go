package autodeck

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeDeck converts raw generated content into a Deck.
//
// The content must be a mapping whose "slides" key holds a non-empty sequence
// of mappings. When it is not, the repair variants are tried in order and the
// first one that applies is normalized once more. If that also fails, or no
// variant applies, the original ErrSchema error is returned.
func NormalizeDeck(raw RawContent) (Deck, error) {
	deck, _, err := normalizeDeck(raw)
	return deck, err
}

// normalizeDeck is NormalizeDeck that also names the repair variant used, if any.
func normalizeDeck(raw RawContent) (Deck, string, error) {
	deck, err := normalize(raw.value)
	if err == nil {
		return deck, "", nil
	}

	variant, candidate, ok := repair(raw.value)
	if !ok {
		return Deck{}, "", err
	}
	repaired, rerr := normalize(candidate)
	if rerr != nil {
		return Deck{}, "", err
	}
	return repaired, variant, nil
}

func normalize(v any) (Deck, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Deck{}, fmt.Errorf("%w: top-level value is %s, not a mapping", ErrSchema, kindOf(v))
	}
	rawSlides, ok := m["slides"]
	if !ok {
		return Deck{}, fmt.Errorf("%w: missing \"slides\" key", ErrSchema)
	}
	list, ok := rawSlides.([]any)
	if !ok || len(list) == 0 {
		return Deck{}, fmt.Errorf("%w: \"slides\" must be a non-empty sequence", ErrSchema)
	}

	slides := make([]Slide, 0, len(list))
	for i, item := range list {
		sm, ok := item.(map[string]any)
		if !ok {
			return Deck{}, fmt.Errorf("%w: slide %d is %s, not a mapping", ErrSchema, i+1, kindOf(item))
		}
		slides = append(slides, Slide{
			Title:   coerceString(sm["title"]),
			Bullets: coerceBullets(sm["bullets"]),
			Notes:   coerceString(sm["notes"]),
		})
	}
	return Deck{slides: slides}, nil
}

// coerceBullets turns any bullets value into trimmed non-empty strings.
// A non-sequence value becomes a single bullet when truthy.
func coerceBullets(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if !truthy(v) {
			return []string{}
		}
		items = []any{v}
	}
	bullets := make([]string, 0, len(items))
	for _, item := range items {
		if s := coerceString(item); s != "" {
			bullets = append(bullets, s)
		}
	}
	return bullets
}

// coerceString renders a scalar as trimmed text. Null becomes "".
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return strings.TrimSpace(fmt.Sprint(t))
		}
		return strings.TrimSpace(string(b))
	}
}

// truthy follows the usual dynamic-language notion of an empty value.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "a mapping"
	case []any:
		return "a sequence"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64, int, int64, uint64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
