package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/algotrace/algotrace/trace"
)

// renderTrace prints tr as a table, one row per step.
func renderTrace(w io.Writer, tr *trace.Trace) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"#", "Active", "Visited", "Aux", "Message"})
	for i := 0; i < tr.Len(); i++ {
		s := tr.At(i)
		tbl.Append([]string{
			fmt.Sprintf("%d", i),
			formatID(s.Active),
			formatIDs(s.Visited),
			formatIDs(s.Aux),
			s.Msg,
		})
	}
	tbl.Render()
}

func formatID(id trace.NodeID) string {
	if id == trace.None {
		return "-"
	}
	return fmt.Sprintf("%d", id)
}

func formatIDs(ids []trace.NodeID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, " ")
}
