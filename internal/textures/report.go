package textures

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteReport renders a per-texture summary table of a finished run.
func WriteReport(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NAME", "OUTCOME", "BYTES", "DETAIL"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")

	data := make([][]string, 0, len(results))
	for _, r := range results {
		detail := r.Path
		if r.Err != nil {
			detail = r.Err.Error()
		}
		bytes := ""
		if r.Outcome == OutcomeSaved {
			bytes = strconv.Itoa(r.Bytes)
		}
		data = append(data, []string{r.Name, string(r.Outcome), bytes, detail})
	}
	table.AppendBulk(data)
	table.Render()

	succeeded, total := Summarize(results)
	fmt.Fprintf(w, "\nComplete! Generated %d/%d textures\n", succeeded, total)
	if succeeded < total {
		fmt.Fprintln(w, "Some textures failed. Re-run to retry the missing ones.")
	}
}
