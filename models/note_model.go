package models

import (
	"sort"
	"time"
)

type NoteImage struct {
	ID    string `bson:"id" json:"id"`
	URL   string `bson:"url" json:"url"`
	Order int    `bson:"order" json:"order"`
}

type Note struct {
	ID        string      `bson:"_id" json:"id"`
	Content   string      `bson:"content" json:"content"`
	CreatedAt time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updated_at" json:"updatedAt"`
	Likes     int         `bson:"likes" json:"likes"`
	Comments  int         `bson:"comments" json:"comments"`
	Shares    int         `bson:"shares" json:"shares"`
	Images    []NoteImage `bson:"images" json:"images"`
}

// NormalizeImages guarantees the JSON contract for images: never null,
// always sorted by display order ascending.
func (n *Note) NormalizeImages() {
	if n.Images == nil {
		n.Images = []NoteImage{}
	}
	sort.Slice(n.Images, func(i, j int) bool {
		return n.Images[i].Order < n.Images[j].Order
	})
}
