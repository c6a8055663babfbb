// Package models defines server-side data models persisted in the database.
package models

// User is a directory entry. ID is assigned by the store on insert and is
// never reused.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	Country     string `json:"country"`
}
