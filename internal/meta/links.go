package meta

import (
	"fmt"
	"net/url"
)

// buildLinks assembles the record's link rows: the IMDb rating link, the
// share link, one link per genre, and search links for cast, directors and
// writers. Records without an IMDb id carry no links at all.
func buildLinks(imdbRating, imdbID, title, mediaType string, genres []string, credits Credits, castLimit int, castLimited bool, hostName, configString string) []Link {
	if imdbID == "" {
		return []Link{}
	}

	links := []Link{
		{
			Name:     imdbRating,
			Category: "imdb",
			URL:      fmt.Sprintf("https://imdb.com/title/%s", imdbID),
		},
		{
			Name:     "Share",
			Category: "share",
			URL:      fmt.Sprintf("https://www.strem.io/s/%s/%s/%s", mediaType, imdbID, url.PathEscape(title)),
		},
	}
	links = append(links, genreLinks(genres, mediaType, hostName, configString)...)

	for _, member := range CastMembers(credits, castLimit, castLimited) {
		links = append(links, searchLink(member.Name, "Cast"))
	}
	for _, director := range Directors(credits) {
		links = append(links, searchLink(director, "Directors"))
	}
	for _, writer := range Writers(credits) {
		links = append(links, searchLink(writer, "Writers"))
	}
	return links
}

// genreLinks deep-links each genre into the addon's own discover catalog.
// Without a configured host there is nothing to link into.
func genreLinks(genres []string, mediaType, hostName, configString string) []Link {
	if hostName == "" {
		return nil
	}
	manifestURL := hostName + "/manifest.json"
	if configString != "" {
		manifestURL = fmt.Sprintf("%s/%s/manifest.json", hostName, configString)
	}

	var links []Link
	for _, genre := range genres {
		if genre == "" {
			continue
		}
		links = append(links, Link{
			Name:     genre,
			Category: "Genres",
			URL: fmt.Sprintf("stremio:///discover/%s/%s/tmdb.top?genre=%s",
				url.QueryEscape(manifestURL), mediaType, url.QueryEscape(genre)),
		})
	}
	return links
}

func searchLink(name, category string) Link {
	return Link{
		Name:     name,
		Category: category,
		URL:      "stremio:///search?search=" + url.QueryEscape(name),
	}
}
