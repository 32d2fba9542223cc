package service

import "unicode/utf8"

const (
	maxTitleLen = 60
	maxYearLen  = 4
	editYearLen = 4
	maxNameLen  = 20
)

// MovieInput is the form payload for creating or editing a movie.
type MovieInput struct {
	Title string
	Year  string
}

func charLen(s string) int {
	return utf8.RuneCountInString(s)
}

func validTitle(title string) bool {
	return title != "" && charLen(title) <= maxTitleLen
}

// validateNewMovie accepts years of up to four characters.
func validateNewMovie(in MovieInput) bool {
	return validTitle(in.Title) && in.Year != "" && charLen(in.Year) <= maxYearLen
}

// validateMovieEdit requires a year of exactly four characters. Creation is
// looser; both rules are kept as they are.
func validateMovieEdit(in MovieInput) bool {
	return validTitle(in.Title) && charLen(in.Year) == editYearLen
}

func validName(name string) bool {
	return name != "" && charLen(name) <= maxNameLen
}
