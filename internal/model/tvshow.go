package model

import "go.mongodb.org/mongo-driver/v2/bson"

// TvShow is a series stored in the "tvshows" collection.  Its seasons and
// episodes are embedded in the same document: they have no identifier of their
// own and are written together with the show in a single insert.
type TvShow struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Year        *int          `json:"year,omitempty" bson:"year,omitempty"`
	Category    string        `json:"category,omitempty" bson:"category,omitempty"`
	Poster      string        `json:"poster,omitempty" bson:"poster,omitempty"`
	Seasons     []Season      `json:"seasons" bson:"seasons"`
}

// Season groups the episodes of one season in broadcast order.
type Season struct {
	SeasonNumber *int      `json:"seasonNumber,omitempty" bson:"seasonNumber,omitempty"`
	Episodes     []Episode `json:"episodes" bson:"episodes"`
}

// Episode is a single playable entry within a season.
type Episode struct {
	Title         string `json:"title,omitempty" bson:"title,omitempty"`
	EpisodeNumber *int   `json:"episodeNumber,omitempty" bson:"episodeNumber,omitempty"`
	VideoURL      string `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
}

// Normalize replaces nil season and episode slices with empty ones so the
// stored document and the JSON response always carry arrays.
func (s *TvShow) Normalize() {
	if s.Seasons == nil {
		s.Seasons = []Season{}
	}
	for i := range s.Seasons {
		if s.Seasons[i].Episodes == nil {
			s.Seasons[i].Episodes = []Episode{}
		}
	}
}
