package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/Lumos7-3/A1-Internship-Project/domain/catalog"
)

// Report output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

var reportHeader = []string{"Filename", "Intact", "Broken", "Status"}

// Totals sums the character counts across a dataset.
type Totals struct {
	Frames int `json:"frames"`
	Intact int `json:"intact"`
	Broken int `json:"broken"`
	// BrokenFrames counts frames whose status is Broken.
	BrokenFrames int `json:"broken_frames"`
	Unreadable   int `json:"unreadable"`
}

// Summarize totals the frame summaries.
func Summarize(sums []catalog.FrameSummary) Totals {
	var t Totals
	for _, s := range sums {
		t.Frames++
		if !s.Readable {
			t.Unreadable++
			continue
		}
		t.Intact += s.Intact
		t.Broken += s.Broken
		if s.Broken > 0 {
			t.BrokenFrames++
		}
	}
	return t
}

type jsonRow struct {
	Filename string `json:"filename"`
	Intact   int    `json:"intact"`
	Broken   int    `json:"broken"`
	Status   string `json:"status"`
}

// WriteReport writes rows and totals to w in the given format.
func WriteReport(w io.Writer, format string, rows []catalog.Row, totals Totals) error {
	switch format {
	case FormatTable, "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Filename\tIntact\tBroken\tStatus")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Filename, r.Intact, r.Broken, r.Status)
		}
		fmt.Fprintf(tw, "\nFrames: %d  Intact: %d  Broken: %d  Broken frames: %d  Unreadable: %d\n",
			totals.Frames, totals.Intact, totals.Broken, totals.BrokenFrames, totals.Unreadable)
		return tw.Flush()
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(reportHeader); err != nil {
			return err
		}
		for _, r := range rows {
			if err := cw.Write([]string{r.Filename, strconv.Itoa(r.Intact), strconv.Itoa(r.Broken), r.Status}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatJSON:
		out := struct {
			Frames []jsonRow `json:"frames"`
			Totals Totals    `json:"totals"`
		}{Frames: make([]jsonRow, len(rows)), Totals: totals}
		for i, r := range rows {
			out.Frames[i] = jsonRow(r)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
