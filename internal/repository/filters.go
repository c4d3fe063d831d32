package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseID converts a path parameter into an ObjectID.
func ParseID(raw string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// titleContains builds a case-insensitive substring filter on title.  The
// fragment is quoted so regex metacharacters match literally; "(" or "a+b"
// never produce a pattern error.
func titleContains(fragment string) bson.D {
	return bson.D{{Key: "title", Value: bson.Regex{
		Pattern: regexp.QuoteMeta(fragment),
		Options: "i",
	}}}
}

func byID(id bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}
