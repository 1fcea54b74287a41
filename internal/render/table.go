// Package render prints roster records as bordered text tables.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/msokolov/rosters/internal/models"
)

// emptyMessage is printed instead of a table when there are no records.
const emptyMessage = "list is empty"

type column struct {
	header string
	width  int
	align  int
}

var (
	workerColumns = []column{
		{"No", 4, tablewriter.ALIGN_RIGHT},
		{"Name", 30, tablewriter.ALIGN_LEFT},
		{"Post", 20, tablewriter.ALIGN_LEFT},
		{"Year", 8, tablewriter.ALIGN_RIGHT},
	}
	trainColumns = []column{
		{"No", 4, tablewriter.ALIGN_RIGHT},
		{"Destination", 30, tablewriter.ALIGN_LEFT},
		{"Type", 20, tablewriter.ALIGN_LEFT},
		{"Route", 15, tablewriter.ALIGN_RIGHT},
	}
)

// Workers renders the worker roster to out. Rows are numbered from 1 in
// the order given.
func Workers(out io.Writer, workers []models.Worker) {
	rows := make([][]string, 0, len(workers))
	for i, w := range workers {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), w.Name, w.Post, strconv.Itoa(w.Year),
		})
	}
	writeTable(out, workerColumns, rows)
}

// Trains renders the train roster to out. Rows are numbered from 1 in the
// order given.
func Trains(out io.Writer, trains []models.Train) {
	rows := make([][]string, 0, len(trains))
	for i, t := range trains {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), t.Destination, t.Type, strconv.Itoa(t.Num),
		})
	}
	writeTable(out, trainColumns, rows)
}

func writeTable(out io.Writer, cols []column, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(out, emptyMessage)
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	// A border line after every data row, not only at the end.
	table.SetRowLine(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)

	headers := make([]string, 0, len(cols))
	aligns := make([]int, 0, len(cols))
	for i, col := range cols {
		headers = append(headers, col.header)
		aligns = append(aligns, col.align)
		table.SetColMinWidth(i, col.width)
	}
	table.SetHeader(headers)
	table.SetColumnAlignment(aligns)

	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
