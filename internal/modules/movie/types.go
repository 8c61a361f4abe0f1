package movie

import (
	"errors"
	"strings"

	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/models"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/response"
)

type MovieDTO struct {
	Title     string `json:"title"`
	Type      string `json:"type"`
	Director  string `json:"director"`
	Budget    string `json:"budget"`
	Location  string `json:"location"`
	Duration  string `json:"duration"`
	YearTime  string `json:"year_time"`
	PosterURL string `json:"poster_url"`
}

// listResponse mirrors the original API shape consumed by the
// infinite-scroll frontend.
type listResponse struct {
	Movies  []models.MovieModel `json:"movies"`
	Total   int64               `json:"total"`
	HasMore bool                `json:"hasMore"`
}

var ErrNotFound = errors.New("entry not found")

func (d *MovieDTO) Validate() []response.FieldError {
	var details []response.FieldError
	if strings.TrimSpace(d.Title) == "" {
		details = append(details, response.FieldError{Field: "title", Message: "Title is required"})
	}
	if d.Type != models.TypeMovie && d.Type != models.TypeTVShow {
		details = append(details, response.FieldError{Field: "type", Message: `Type must be "Movie" or "TV Show"`})
	}
	if strings.TrimSpace(d.Director) == "" {
		details = append(details, response.FieldError{Field: "director", Message: "Director is required"})
	}
	return details
}
