// Package extraction turns unstructured text into structured task records.
//
// The pipeline for one input is: build a prompt, call the text generation
// client, parse the structured fields out of the free-text response, issue a
// second independent inference call for the category, and assemble the task
// through the domain builder. When inference is exhausted the package
// degrades to a rule-based heuristic extractor that never fails.
package extraction
