// Package autodeck generates slide decks from a topic.
//
// A run searches the web for context, asks a language model for slide
// content as JSON, normalizes that content into a Deck (repairing common
// shape mistakes once) and renders it as a styled .pptx file. An HTML
// preview and a PDF handout can be produced alongside.
//
// Basic usage:
//
//	// gen is any Generator: Generate(ctx, system, user) (string, error)
//	b, err := autodeck.NewBuilder(
//	    autodeck.WithGenerator(gen),
//	    autodeck.WithSearcher(autodeck.NewWebSearcher(0)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	res, err := b.Build(ctx, autodeck.Input{Topic: "Go generics"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path)
//
// Lower-level pieces are usable on their own: NormalizeDeck validates
// untrusted content, BuildSearchContext formats search results, Requester
// retries generation, and Renderer writes the presentation.
//
// Backgrounds for content slides are picked at random from a fixed palette.
// Pass WithSeed to make output byte-for-byte reproducible.
package autodeck
