package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/userdirectory/internal/client/models"
	"github.com/dmitrijs2005/userdirectory/internal/common"
)

const (
	unknownCompany = "Unknown"
	notAvailable   = "N/A"
)

type demoResponse struct {
	Users []demoUser `json:"users"`
}

type demoUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   *struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	} `json:"company"`
	Address *struct {
		Country string `json:"country"`
	} `json:"address"`
}

// DemoSource reads sample users from a dummyjson-style feed.
type DemoSource struct {
	url  string
	http *http.Client
}

func NewDemoSource(url string, hc *http.Client) *DemoSource {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &DemoSource{url: url, http: hc}
}

// Fetch returns at most common.DemoImportLimit projected users.
func (d *DemoSource) Fetch(ctx context.Context) ([]models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: demo source answered %s", ErrServer, resp.Status)
	}

	var dr demoResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("%w: malformed demo payload: %v", ErrServer, err)
	}

	return project(dr.Users), nil
}

func project(in []demoUser) []models.User {
	if len(in) > common.DemoImportLimit {
		in = in[:common.DemoImportLimit]
	}
	out := make([]models.User, 0, len(in))
	for _, d := range in {
		u := models.User{
			ID:          d.ID,
			FirstName:   d.FirstName,
			LastName:    d.LastName,
			CompanyName: unknownCompany,
			Role:        notAvailable,
			Country:     notAvailable,
		}
		if d.Company != nil {
			u.CompanyName = orDefault(d.Company.Name, unknownCompany)
			u.Role = orDefault(d.Company.Title, notAvailable)
		}
		if d.Address != nil {
			u.Country = orDefault(d.Address.Country, notAvailable)
		}
		out = append(out, u)
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
