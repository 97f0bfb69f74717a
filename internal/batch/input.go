package batch

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"tubetag/internal/titleparse"
)

// ErrNoInput is returned when an input stream holds no records.
var ErrNoInput = errors.New("no input records")

const maxLineBytes = 1 << 20

// Line is one input record with its 1-based position in the source.
// Err is set when the line could not be decoded; the runner reports it
// instead of parsing.
type Line struct {
	Number int
	Input  titleparse.Input
	Err    error
}

// ReadInputs reads one record per line. A record is either a JSON object
// {"title": ..., "channel": ...} or "title<TAB>channel"; a line without a tab
// is a title with no channel. Blank lines and lines starting with '#' are
// skipped.
func ReadInputs(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []Line
	number := 0
	for scanner.Scan() {
		number++
		raw := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, decodeLine(number, raw, trimmed))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input line %d: %w", number+1, err)
	}
	if len(lines) == 0 {
		return nil, ErrNoInput
	}
	return lines, nil
}

func decodeLine(number int, raw, trimmed string) Line {
	line := Line{Number: number}
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal([]byte(trimmed), &line.Input); err != nil {
			line.Err = fmt.Errorf("%w: decode json: %v", titleparse.ErrInvalidInput, err)
		}
		return line
	}
	title, channel, _ := strings.Cut(raw, "\t")
	line.Input = titleparse.Input{Title: title, Channel: channel}
	return line
}
