// Package models defines the directory records handled by the CLI.
package models

import "strings"

// User is a directory record as served by the API. Imported and locally
// added records use the same shape.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	Country     string `json:"country"`
}

// Origin tells which collection a displayed record belongs to.
type Origin string

const (
	OriginServer   Origin = "server"
	OriginLocal    Origin = "local"
	OriginImported Origin = "imported"
)

// Row is a record tagged with its origin, ready for display.
type Row struct {
	User
	Origin Origin
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Matches reports whether term occurs case-insensitively in any of the
// five text fields. An empty term matches everything.
func (u User) Matches(term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	for _, f := range []string{u.FirstName, u.LastName, u.CompanyName, u.Role, u.Country} {
		if strings.Contains(strings.ToLower(f), t) {
			return true
		}
	}
	return false
}
