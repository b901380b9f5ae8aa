package repository

import "fmt"

// FactExtractionSystemPrompt instructs the model to return facts as a JSON
// array of strings. ParseFactList depends on the bracketed shape.
const FactExtractionSystemPrompt = `Extract every piece of exposition from the given text. Return the set of information in a list format: ["{fact}", "{fact}"]`

// BuildExtractFactsPrompt formats the user prompt for fact extraction.
func BuildExtractFactsPrompt(text string) string {
	return fmt.Sprintf("Extract the exposition from the following text:\n\n%s", text)
}
