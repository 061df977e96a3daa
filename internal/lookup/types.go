// Package lookup resolves reference URLs for titles through the imdb8 title
// search API.
package lookup

import "strings"

// FindResponse is the body of a title/find request.
type FindResponse struct {
	Query   string   `json:"query"`
	Results []Result `json:"results"`
}

// Result is one title/find match.
type Result struct {
	ID        string `json:"id"` // e.g. "/title/tt1375666/"
	Title     string `json:"title"`
	TitleType string `json:"titleType"`
	Year      int    `json:"year"`
}

// Path returns the reference path of the result, always starting with "/".
func (r Result) Path() string {
	if r.ID == "" || strings.HasPrefix(r.ID, "/") {
		return r.ID
	}
	return "/" + r.ID
}
