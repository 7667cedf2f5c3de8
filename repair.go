package autodeck

import "strings"

// repairVariant reshapes raw content that failed normalization.
// apply never mutates its input and reports false when the variant does not apply.
type repairVariant struct {
	name  string
	apply func(v any) (any, bool)
}

// repairVariants are tried in this order.
var repairVariants = []repairVariant{
	{name: "AsSlideList", apply: asSlideList},
	{name: "AsCaseVariantKey", apply: asCaseVariantKey},
}

// repair returns the name and candidate of the first applicable variant.
func repair(v any) (string, any, bool) {
	for _, variant := range repairVariants {
		if candidate, ok := variant.apply(v); ok {
			return variant.name, candidate, true
		}
	}
	return "", nil, false
}

// asSlideList wraps a bare sequence as {"slides": [...]}, keeping only its
// mapping elements.
func asSlideList(v any) (any, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	slides := make([]any, 0, len(list))
	for _, item := range list {
		if _, ok := item.(map[string]any); ok {
			slides = append(slides, item)
		}
	}
	if len(slides) == 0 {
		return nil, false
	}
	return map[string]any{"slides": slides}, true
}

// asCaseVariantKey moves a differently cased "slides" key to the canonical
// name. Only an exact case-insensitive match counts, and it must be unique.
func asCaseVariantKey(v any) (any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	if _, exact := m["slides"]; exact {
		return nil, false
	}
	match := ""
	for key := range m {
		if strings.EqualFold(key, "slides") {
			if match != "" {
				return nil, false
			}
			match = key
		}
	}
	if match == "" {
		return nil, false
	}
	out := make(map[string]any, len(m))
	for key, val := range m {
		if key == match {
			continue
		}
		out[key] = val
	}
	out["slides"] = m[match]
	return out, true
}
