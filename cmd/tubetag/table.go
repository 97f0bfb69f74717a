package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

type column struct {
	Header string
	Align  columnAlignment
}

// tableView is a rendered result set. Footer, when set, is printed as a
// final separated row.
type tableView struct {
	Columns []column
	Rows    [][]string
	Footer  []string
}

func (v tableView) render() string {
	columns := len(v.Columns)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(padRow(nil, columns, func(i int) string { return v.Columns[i].Header }))
	for _, row := range v.Rows {
		tw.AppendRow(padRow(row, columns, nil))
	}
	if len(v.Footer) > 0 {
		tw.AppendFooter(padRow(v.Footer, columns, nil))
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i, col := range v.Columns {
		align := text.AlignLeft
		if col.Align == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:           i + 1,
			Align:            align,
			AlignHeader:      text.AlignLeft,
			AlignFooter:      align,
			WidthMax:         60,
			WidthMaxEnforcer: text.WrapSoft,
		})
	}
	tw.SetColumnConfigs(configs)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	return tw.Render()
}

func (v tableView) write(w io.Writer) error {
	_, err := fmt.Fprintln(w, v.render())
	return err
}

func padRow(values []string, columns int, fill func(int) string) table.Row {
	row := make(table.Row, columns)
	for i := range columns {
		switch {
		case fill != nil:
			row[i] = fill(i)
		case i < len(values):
			row[i] = values[i]
		default:
			row[i] = ""
		}
	}
	return row
}
