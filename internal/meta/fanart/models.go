package fanart

type logoEntry struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Lang string `json:"lang"`
}

type movieResponse struct {
	Name        string      `json:"name"`
	TmdbID      string      `json:"tmdb_id"`
	HDMovieLogo []logoEntry `json:"hdmovielogo"`
	MovieLogo   []logoEntry `json:"movielogo"`
}

type tvResponse struct {
	Name      string      `json:"name"`
	TvdbID    string      `json:"thetvdb_id"`
	HDTVLogo  []logoEntry `json:"hdtvlogo"`
	ClearLogo []logoEntry `json:"clearlogo"`
}
