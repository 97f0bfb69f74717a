// Package logs reads back the tubetag log file.
//
// Last returns the newest lines with bounded memory, optionally keeping only
// lines that mention a run identifier. Follow polls the file from an offset
// and hands new lines to a callback until the context ends, which powers
// `tubetag logs --follow`.
package logs
