package users

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

// scanUsers drains rows into a non-nil slice so an empty table encodes as [].
func scanUsers(rows *sql.Rows) ([]models.User, error) {
	result := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.CompanyName, &u.Role, &u.Country); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
