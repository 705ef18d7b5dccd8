package board

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/andreasstove999/bar-ordering/internal/order"
)

var statusLabels = map[order.Status]string{
	order.StatusNew:      "NY",
	order.StatusStarted:  "PÅBÖRJAD",
	order.StatusReady:    "KLAR",
	order.StatusServed:   "UTLÄMNAD",
	order.StatusArchived: "ARKIV",
}

// ShortID is the prefix staff type to address an order.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Render writes a plain text board: counts, active orders with the
// actions they allow, then the archive.
func Render(w io.Writer, v View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "NY: %d\tPÅBÖRJAD: %d\tKLAR: %d\tARKIV: %d\n", v.Counts.New, v.Counts.Started, v.Counts.Ready, v.Counts.Archived)
	if v.Err != nil {
		fmt.Fprintf(tw, "FEL: %v\n", v.Err)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "ID\tSTATUS\tBORD\tTID\tRADER\tÅTGÄRDER")
	for _, o := range v.Active {
		writeOrder(tw, o)
	}
	if len(v.Active) == 0 {
		fmt.Fprintln(tw, "(inga aktiva ordrar)")
	}

	if len(v.Archived) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "ARKIV")
		for _, o := range v.Archived {
			writeOrder(tw, o)
		}
	}
	return tw.Flush()
}

func writeOrder(w io.Writer, o order.Order) {
	table := o.Table
	if table == "" {
		table = "-"
	}

	lines := make([]string, 0, len(o.Lines))
	for _, l := range o.Lines {
		s := fmt.Sprintf("%dx %s", l.Quantity, l.Name)
		if l.Comment != "" {
			s += " (" + l.Comment + ")"
		}
		lines = append(lines, s)
	}

	actions := make([]string, 0, 2)
	for _, next := range order.NextStatuses(o.Status) {
		actions = append(actions, actionName(next))
	}

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		ShortID(o.ID), statusLabels[o.Status], table, o.CreatedAt.Local().Format("15:04"),
		strings.Join(lines, ", "), strings.Join(actions, " "))
	if o.OrderNote != "" {
		fmt.Fprintf(w, "\tnotering: %s\t\t\t\t\n", o.OrderNote)
	}
}

// actionName is the command word for moving an order to s.
func actionName(s order.Status) string {
	switch s {
	case order.StatusStarted:
		return "start"
	case order.StatusReady:
		return "ready"
	case order.StatusServed:
		return "serve"
	case order.StatusArchived:
		return "archive"
	default:
		return strings.ToLower(string(s))
	}
}
