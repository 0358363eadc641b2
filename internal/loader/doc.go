// Package loader reads presentation documents from JSON, YAML and CUE
// files.
//
// Load is lenient in the same way deck decoding is: anything that parses
// and has the overall shape of a document loads, and malformed slide data
// degrades at render time. Validate is the strict path. It checks the
// document against the embedded #Deck schema and reports every problem it
// finds as a Diagnostic with a source position.
package loader
