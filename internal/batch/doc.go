// Package batch parses many title/channel pairs concurrently.
//
// ReadInputs turns a line-oriented input stream (JSON objects or tab
// separated pairs) into Lines, and Runner fans them out to a fixed pool of
// workers sharing one titleparse.Parser. Results come back in input order
// regardless of which worker finished first, so output is reproducible.
package batch
