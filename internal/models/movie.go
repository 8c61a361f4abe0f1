package models

// Entry types accepted by the API.
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

// MovieModel is a movie or TV show entry in a user's collection.
type MovieModel struct {
	Base
	UserID    uint   `json:"-"          gorm:"index;not null"`
	Title     string `json:"title"      gorm:"not null"`
	Type      string `json:"type"       gorm:"size:32;not null"`
	Director  string `json:"director"   gorm:"not null"`
	Budget    string `json:"budget"`
	Location  string `json:"location"`
	Duration  string `json:"duration"`
	YearTime  string `json:"year_time"`
	PosterURL string `json:"poster_url" gorm:"type:text"`
}

func (MovieModel) TableName() string { return "movies" }
