// Package meta reconciles TMDB and TheTVDB records into the canonical
// metadata object served to the catalog client. One request runs one
// stateless pipeline: resolve the inbound identifier, fetch the provider
// payloads, enrich concurrently (logo, rating), and assemble the record.
package meta

import "time"

// Media kinds handled by the builders.
const (
	TypeMovie  = "movie"
	TypeSeries = "series"
)

// Meta is the canonical metadata record.
type Meta struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Name           string          `json:"name"`
	ImdbID         string          `json:"imdb_id,omitempty"`
	Slug           string          `json:"slug,omitempty"`
	Genres         []string        `json:"genres,omitempty"`
	Description    string          `json:"description,omitempty"`
	Director       string          `json:"director,omitempty"`
	Writer         string          `json:"writer,omitempty"`
	Year           string          `json:"year,omitempty"`
	Released       *time.Time      `json:"released,omitempty"`
	Runtime        string          `json:"runtime,omitempty"`
	Status         string          `json:"status,omitempty"`
	Country        string          `json:"country,omitempty"`
	ImdbRating     string          `json:"imdbRating"`
	Poster         string          `json:"poster,omitempty"`
	Background     string          `json:"background,omitempty"`
	Logo           string          `json:"logo,omitempty"`
	Trailers       []Trailer       `json:"trailers,omitempty"`
	TrailerStreams []TrailerStream `json:"trailerStreams,omitempty"`
	Videos         []Video         `json:"videos,omitempty"`
	Links          []Link          `json:"links,omitempty"`
	BehaviorHints  BehaviorHints   `json:"behaviorHints"`
	AppExtras      AppExtras       `json:"app_extras"`
}

// Video is one episode entry of a series record. Available is a snapshot
// taken at build time, not a live property.
type Video struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Season    int        `json:"season"`
	Episode   int        `json:"episode"`
	Thumbnail string     `json:"thumbnail,omitempty"`
	Overview  string     `json:"overview,omitempty"`
	Released  *time.Time `json:"released"`
	Available bool       `json:"available"`
}

// Link is a deep link rendered under the record.
type Link struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// CastMember is one entry of the record's cast list.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Photo     string `json:"photo,omitempty"`
}

// Trailer references a YouTube trailer.
type Trailer struct {
	Source string `json:"source"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	YtID   string `json:"ytId"`
}

// TrailerStream is the playable form of a trailer reference.
type TrailerStream struct {
	Title string `json:"title"`
	YtID  string `json:"ytId"`
}

// BehaviorHints steer the catalog client's playback behavior.
type BehaviorHints struct {
	DefaultVideoID     *string `json:"defaultVideoId"`
	HasScheduledVideos bool    `json:"hasScheduledVideos"`
}

// AppExtras carries fields consumed only by companion apps.
type AppExtras struct {
	Cast []CastMember `json:"cast"`
}

// MediaPreview is the condensed record used for catalog rows.
type MediaPreview struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Genre       []string `json:"genre"`
	Poster      string   `json:"poster,omitempty"`
	Background  string   `json:"background,omitempty"`
	PosterShape string   `json:"posterShape"`
	ImdbRating  string   `json:"imdbRating"`
	Year        string   `json:"year"`
	Description string   `json:"description,omitempty"`
}

// MetaResponse wraps a record for the catalog client; Meta is nil when the
// record could not be built.
type MetaResponse struct {
	Meta *Meta `json:"meta"`
}
