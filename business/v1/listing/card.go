package listing

import (
	"strings"

	"github.com/ribgsilva/note-keeper/business/v1/note"
)

// UntitledLabel is shown for notes without a title.
const UntitledLabel = "Untitled"

const excerptLines = 2

// Card is the list entry of one note.
type Card struct {
	Id        string `json:"id" example:"0b7e2c4a-3f7d-4b8e-9a51-2c1f0e6d9b3a"`
	Title     string `json:"title" example:"Grocery"`
	Excerpt   string `json:"excerpt" example:"milk"`
	Thumbnail string `json:"thumbnail,omitempty" example:"file:///photos/milk.jpg"`
}

// NewCard builds the card of n: the title or UntitledLabel, the first two
// lines of content and the first image.
func NewCard(n note.Note) Card {
	c := Card{
		Id:      n.Id,
		Title:   n.Title,
		Excerpt: excerpt(n.Content),
	}
	if c.Title == "" {
		c.Title = UntitledLabel
	}
	if len(n.Images) > 0 {
		c.Thumbnail = n.Images[0]
	}
	return c
}

func excerpt(content string) string {
	lines := strings.SplitN(content, "\n", excerptLines+1)
	if len(lines) > excerptLines {
		lines = lines[:excerptLines]
	}
	return strings.Join(lines, "\n")
}
