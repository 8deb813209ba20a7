// Package report renders the outcome of a simulation run as a Gantt chart
// and a schedule table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/viant/schedly/simulator"
)

// Render writes a titled Gantt chart and schedule table for the result.
func Render(w io.Writer, title string, result *simulator.Result) {
	outputTitle(w, title)
	outputGantt(w, result.Gantt)
	outputSchedule(w, result)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []simulator.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		id := gantt[i].ProcessID
		pad := (8 - len(id)) / 2
		if pad < 0 {
			pad = 0
		}
		padding := strings.Repeat(" ", pad)
		_, _ = fmt.Fprint(w, padding, id, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, result *simulator.Result) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, len(result.Outcomes))
	for i, outcome := range result.Outcomes {
		status := "yes"
		if !outcome.Completed {
			status = "no"
		}
		rows[i] = []string{
			outcome.ID,
			fmt.Sprint(outcome.Priority),
			fmt.Sprint(outcome.Burst),
			fmt.Sprint(outcome.Arrival),
			fmt.Sprint(outcome.Wait),
			fmt.Sprint(outcome.Turnaround),
			status,
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Done"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AvgWait),
		fmt.Sprintf("Average\n%.2f", result.AvgTurnaround),
		fmt.Sprintf("Switches\n%d", result.Preemptions)})
	table.Render()
}
