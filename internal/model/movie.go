package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Movie is a single film in the catalog.  Documents live in the "movies"
// collection and are addressed by a store-assigned ObjectID.
//
// Fields:
//  ID          – _id, assigned on insert.
//  Title       – required, non-empty.
//  Description – free text synopsis.
//  Year        – release year; nil when unknown.
//  Category    – genre label (e.g. "Sci-Fi").
//  Poster      – poster image URL.
//  VideoURL    – playable stream URL.
type Movie struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Year        *int          `json:"year,omitempty" bson:"year,omitempty"`
	Category    string        `json:"category,omitempty" bson:"category,omitempty"`
	Poster      string        `json:"poster,omitempty" bson:"poster,omitempty"`
	VideoURL    string        `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
}
