package models

type Movie struct {
	ID    int    `json:"id"`
	Title string `json:"title"` // at most 60 characters
	Year  string `json:"year"`  // four characters, e.g. "1994"
}
