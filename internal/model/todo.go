package model

// ID identifies a todo for the lifetime of a session.
// Values are opaque; only equality is meaningful.
type ID string

// Todo is the domain model for a todo entry.
type Todo struct {
	ID        ID     `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}
