// Package main hosts the tubetag CLI entrypoint and command graph.
//
// The Cobra command tree parses single titles, runs line-oriented batches on a
// worker pool, browses the optional history database and scaffolds
// configuration. Results go to stdout as a table or indented JSON; logs always
// go to stderr and the configured log file.
//
// Keep this package lean: parsing rules live in internal/titleparse and
// persistence in internal/history. Commands here only resolve configuration,
// wire loggers and render output.
package main
