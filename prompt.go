package autodeck

import (
	"fmt"
	"strings"
)

// SlideCount is the number of slides requested from the generator.
const SlideCount = 7

// Prompt is the instruction pair sent to a Generator.
type Prompt struct {
	System string
	User   string
}

const systemPrompt = "You are a precise technical writer who produces clean, presentation-ready content. " +
	"Return STRICT JSON with keys: slides -> list[ {title, bullets, notes} ]. " +
	"Do not include any commentary outside JSON. Keep bullets concise (<= 17 words each). " +
	"Cite facts conservatively and avoid unverifiable claims."

const shapeExample = `{"slides": [{"title": "<Slide Title>", "bullets": ["bullet 1", "bullet 2", "bullet 3"], "notes": "Presenter notes or empty string"}]}`

const userPromptFormat = `Create a concise slide deck on the topic: %q using BOTH prior knowledge and the provided web snippets.

Required slides (%d total):
1. Title (only the topic as title, no bullets)
2. Overview (5-7 bullets)
3-6. Key Points / Trends / Arguments (each 5-7 bullets)
   - Thematic sections with clear, specific titles (NOT "Key Point 1" etc.)
   - Titles should summarize the content (e.g., "Trends", "Arguments")
7. Conclusion / Takeaways (5-7 bullets)

Guidelines:
- Use plain language; avoid marketing fluff.
- Bullets should be short, scannable, and factual.
- Prefer recent insights inferred from snippets when relevant.
- If the web data seems conflicting, summarize the consensus.

Here are the web snippets (search results):
---
%s
---

Return JSON ONLY in the form:
%s`

// BuildPrompt assembles the generator instructions for topic, embedding
// webContext (which may be empty) and the expected JSON shape.
func BuildPrompt(topic, webContext string) Prompt {
	user := fmt.Sprintf(userPromptFormat, strings.TrimSpace(topic), SlideCount, webContext, shapeExample)
	return Prompt{System: systemPrompt, User: user}
}
