package model

// Priority is one AI adoption goal with the share of respondents citing it.
type Priority struct {
	Name  string
	Value float64
}
