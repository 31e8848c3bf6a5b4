package meta

import (
	"fmt"
	"strings"

	"github.com/aiometa/aiometa/internal/meta/tmdb"
)

const profileImageBaseURL = "https://image.tmdb.org/t/p/w276_and_h350_face"

// FormatRuntime renders a minute count as "45min", "1h", "1h30min" or
// "2h5min". Zero or negative runtimes render empty.
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dmin", hours, rest)
}

// Slug builds the record's URL slug: "<type>/<title-with-dashes>-<imdb digits>".
func Slug(mediaType, title, imdbID string) string {
	return fmt.Sprintf("%s/%s-%s",
		mediaType,
		strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		strings.TrimPrefix(imdbID, "tt"))
}

// Directors lists the names credited with the Director job.
func Directors(credits Credits) []string {
	var names []string
	for _, c := range credits.Crew {
		if c.Job == "Director" {
			names = append(names, c.Name)
		}
	}
	return names
}

// Writers lists the names from the Writing department plus anyone credited
// as Creator, deduplicated, order preserved.
func Writers(credits Credits) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, c := range credits.Crew {
		if c.Department == "Writing" {
			add(c.Name)
		}
	}
	for _, c := range credits.Crew {
		if c.Job == "Creator" {
			add(c.Name)
		}
	}
	return names
}

// CastMembers maps the reconciled cast into the output shape, keeping at
// most limit entries when limited is true.
func CastMembers(credits Credits, limit int, limited bool) []CastMember {
	cast := credits.Cast
	if limited && len(cast) > limit {
		cast = cast[:limit]
	}

	members := make([]CastMember, len(cast))
	for i, c := range cast {
		members[i] = CastMember{
			Name:      c.Name,
			Character: c.Character,
			Photo:     profilePhotoURL(c.ProfilePath),
		}
	}
	return members
}

// profilePhotoURL absolutizes a profile image reference. Absolute URLs pass
// through; provider-relative paths go through the face-crop size.
func profilePhotoURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	return profileImageBaseURL + path
}

// Trailers keeps the YouTube-hosted trailers from the videos payload.
func Trailers(videos []tmdb.Video) []Trailer {
	var trailers []Trailer
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			trailers = append(trailers, Trailer{
				Source: v.Key,
				Type:   v.Type,
				Name:   v.Name,
				YtID:   v.Key,
			})
		}
	}
	return trailers
}

// TrailerStreams renders the same selection in the playable stream shape.
func TrailerStreams(videos []tmdb.Video) []TrailerStream {
	var streams []TrailerStream
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			streams = append(streams, TrailerStream{
				Title: v.Name,
				YtID:  v.Key,
			})
		}
	}
	return streams
}

// CountryNames joins production country names.
func CountryNames(countries []tmdb.ProductionCountry) string {
	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// GenreNames lists the genre names of a TMDB payload.
func GenreNames(genres []tmdb.Genre) []string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return names
}

// YearRange renders a series' run: the start year, or "start-end" for an
// ended series whose start and end years differ.
func YearRange(status, firstAirDate, lastAirDate string) string {
	startYear := ""
	if len(firstAirDate) >= 4 {
		startYear = firstAirDate[:4]
	}
	if status == "Ended" && len(lastAirDate) >= 4 {
		endYear := lastAirDate[:4]
		if endYear != startYear {
			return startYear + "-" + endYear
		}
	}
	return startYear
}

// PreviewFromTMDB maps one TMDB list element to a catalog row, resolving
// genre ids against the genre list of the catalog being rendered.
func PreviewFromTMDB(el tmdb.ListItem, mediaType string, genreList []tmdb.Genre) MediaPreview {
	byID := make(map[int]string, len(genreList))
	for _, g := range genreList {
		byID[g.ID] = g.Name
	}
	var genres []string
	for _, id := range el.GenreIDs {
		if name, ok := byID[id]; ok {
			genres = append(genres, name)
		}
	}

	name := el.Title
	date := el.ReleaseDate
	if mediaType != TypeMovie {
		name = el.Name
		date = el.FirstAirDate
	}
	year := ""
	if len(date) >= 4 {
		year = date[:4]
	}

	rating := "N/A"
	if el.VoteAverage > 0 {
		rating = fmt.Sprintf("%.1f", el.VoteAverage)
	}

	preview := MediaPreview{
		ID:          fmt.Sprintf("tmdb:%d", el.ID),
		Type:        mediaType,
		Name:        name,
		Genre:       genres,
		PosterShape: "regular",
		ImdbRating:  rating,
		Year:        year,
		Description: el.Overview,
	}
	if el.PosterPath != "" {
		preview.Poster = "https://image.tmdb.org/t/p/w500" + el.PosterPath
	}
	if el.BackdropPath != "" {
		preview.Background = "https://image.tmdb.org/t/p/original" + el.BackdropPath
	}
	return preview
}
