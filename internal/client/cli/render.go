package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/userdirectory/internal/client/models"
	"github.com/dmitrijs2005/userdirectory/internal/client/view"
)

// render prints the current directory. A blocking error replaces the lists.
func (a *App) render() {
	s := a.directory.State()

	switch s.Status {
	case view.StatusLoading:
		fmt.Fprintln(a.out, "Loading...")
		return
	case view.StatusError:
		fmt.Fprintf(a.out, "Error: %s\n", s.Error)
		return
	}

	rows := a.directory.Visible()

	if len(rows.Local) > 0 {
		fmt.Fprintln(a.out, "Local only (not saved):")
		a.table(rows.Local, false)
	}

	title := "Users:"
	if s.Search != "" {
		title = fmt.Sprintf("Users matching %q:", s.Search)
	}
	fmt.Fprintln(a.out, title)
	if len(rows.Server) == 0 {
		fmt.Fprintln(a.out, "  (none)")
	} else {
		a.table(rows.Server, false)
	}

	if len(rows.Imported) > 0 {
		fmt.Fprintln(a.out, "Imported (use 'promote <n>' to save):")
		a.table(rows.Imported, true)
	}
}

func (a *App) table(rows []models.Row, numbered bool) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)

	first := "ID"
	if numbered {
		first = "N"
	}
	fmt.Fprintf(tw, "  %s\tFIRST NAME\tLAST NAME\tCOMPANY\tROLE\tCOUNTRY\n", first)

	for i, r := range rows {
		key := strconv.FormatInt(r.ID, 10)
		if numbered {
			key = strconv.Itoa(i + 1)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n", key, r.FirstName, r.LastName, r.CompanyName, r.Role, r.Country)
	}
	_ = tw.Flush()
}

// printNotices drains and prints pending notifications.
func (a *App) printNotices() {
	for _, n := range a.directory.Notices() {
		fmt.Fprintf(a.out, "[%s] %s\n", n.Kind, n.Text)
	}
}
