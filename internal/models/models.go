package models

// Worker is a worker row joined with its post title.
type Worker struct {
	Name string `json:"name"`
	Post string `json:"post"`
	Year int    `json:"year"`
}

// Train is a train row joined with its type title.
type Train struct {
	Destination string `json:"destination"`
	Type        string `json:"type"`
	Num         int    `json:"num"`
}
