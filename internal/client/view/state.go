// Package view holds the CLI's directory state: the server-backed list,
// locally-only additions, imported demo candidates, the search term and the
// add-user form, plus the transitions driven by API calls.
package view

import "github.com/dmitrijs2005/userdirectory/internal/client/models"

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a transient, non-blocking message for the user.
type Notice struct {
	Kind NoticeKind
	Text string
}

// User-facing texts.
const (
	msgFetchFailed    = "Failed to fetch users"
	msgImportFailed   = "Failed to fetch dummy users"
	msgNamesRequired  = "First name and last name are required"
	msgAdded          = "User added successfully"
	msgAddFailed      = "Failed to add user"
	msgAddedLocally   = "User added locally (not saved to database)"
	msgDeleteFailed   = "Failed to delete user"
	msgPromoted       = "User saved to database"
	msgPromoteFailed  = "Failed to save user"
	msgUnknownField   = "Unknown field"
	msgNoSuchImported = "No such imported user"
)

// State is a snapshot of the view. Slices in a snapshot are copies.
type State struct {
	Status   Status
	Error    string
	Server   []models.User
	Local    []models.User
	Imported []models.User
	Search   string
	Form     models.User
	FormOpen bool
}

// Rows is what the list screen renders.
type Rows struct {
	Local    []models.Row
	Server   []models.Row
	Imported []models.Row
}

// Filter returns the users matching term on any of the five text fields,
// case-insensitively. An empty term returns users unchanged.
func Filter(users []models.User, term string) []models.User {
	if term == "" {
		return users
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Matches(term) {
			out = append(out, u)
		}
	}
	return out
}

func tag(users []models.User, o models.Origin) []models.Row {
	rows := make([]models.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, models.Row{User: u, Origin: o})
	}
	return rows
}
