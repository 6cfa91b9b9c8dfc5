package model

// Todo is a titled task with a completion flag.
// ID is assigned by the persistence layer on insert and never changes afterwards.
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
