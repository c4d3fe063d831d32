// Package docs holds the OpenAPI document served at /docs and /swagger.json.
// It is kept in the layout `swag init -g cmd/server/main.go` produces from the
// handler annotations; regenerate it after changing a route.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/add": {
			"post": {
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["Movies"],
				"summary": "Add a movie",
				"parameters": [
					{
						"description": "Movie fields; title is required",
						"name": "movie",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/handler.movieRequest"}
					}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.movieCreated"}},
					"400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}
				}
			}
		},
		"/api/delete/{id}": {
			"delete": {
				"description": "Idempotent: deleting an id that matches nothing also succeeds.",
				"produces": ["application/json"],
				"tags": ["Movies"],
				"summary": "Delete a movie",
				"parameters": [
					{"type": "string", "description": "Movie ObjectID", "name": "id", "in": "path", "required": true}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.successBody"}},
					"500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorBody"}}
				}
			}
		},
		"/api/info/{id}": {
			"get": {
				"produces": ["application/json"],
				"tags": ["Movies"],
				"summary": "Get a movie by id",
				"parameters": [
					{"type": "string", "description": "Movie ObjectID", "name": "id", "in": "path", "required": true}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Movie"}},
					"400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handler.errorBody"}},
					"404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/handler.errorBody"}}
				}
			}
		},
		"/api/movies": {
			"get": {
				"produces": ["application/json"],
				"tags": ["Movies"],
				"summary": "List all movies",
				"responses": {
					"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Movie"}}},
					"500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorBody"}}
				}
			}
		},
		"/api/search/{title}": {
			"get": {
				"description": "Case-insensitive substring match on the title. The fragment is matched literally.",
				"produces": ["application/json"],
				"tags": ["Movies"],
				"summary": "Search movies by title",
				"parameters": [
					{"type": "string", "description": "Title fragment", "name": "title", "in": "path", "required": true}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Movie"}}},
					"500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorBody"}}
				}
			}
		},
		"/api/tv/add": {
			"post": {
				"description": "Seasons and episodes are stored inside the show document in a single write.",
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["TV Shows"],
				"summary": "Add a TV show",
				"parameters": [
					{
						"description": "TV show fields; title is required",
						"name": "tv",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/handler.tvShowRequest"}
					}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tvShowCreated"}},
					"400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}
				}
			}
		},
		"/api/tv/delete/{id}": {
			"delete": {
				"produces": ["application/json"],
				"tags": ["TV Shows"],
				"summary": "Delete a TV show",
				"parameters": [
					{"type": "string", "description": "TV show ObjectID", "name": "id", "in": "path", "required": true}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.successBody"}},
					"500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorBody"}}
				}
			}
		},
		"/api/tv/{id}": {
			"get": {
				"produces": ["application/json"],
				"tags": ["TV Shows"],
				"summary": "Get a TV show by id",
				"parameters": [
					{"type": "string", "description": "TV show ObjectID", "name": "id", "in": "path", "required": true}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TvShow"}},
					"400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handler.errorBody"}},
					"404": {"description": "TV show not found", "schema": {"$ref": "#/definitions/handler.errorBody"}}
				}
			}
		},
		"/api/tvshows": {
			"get": {
				"produces": ["application/json"],
				"tags": ["TV Shows"],
				"summary": "List all TV shows",
				"responses": {
					"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TvShow"}}},
					"500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorBody"}}
				}
			}
		}
	},
	"definitions": {
		"handler.episodeRequest": {
			"type": "object",
			"properties": {
				"episodeNumber": {"type": "integer", "example": 1},
				"title": {"type": "string", "example": "Pilot"},
				"videoUrl": {"type": "string", "example": "https://example.com/s01e01.mp4"}
			}
		},
		"handler.errorBody": {
			"type": "object",
			"properties": {
				"error": {"type": "string", "example": "Invalid ID"}
			}
		},
		"handler.movieCreated": {
			"type": "object",
			"properties": {
				"movie": {"$ref": "#/definitions/model.Movie"},
				"success": {"type": "boolean", "example": true}
			}
		},
		"handler.movieRequest": {
			"type": "object",
			"required": ["title"],
			"properties": {
				"category": {"type": "string", "example": "Sci-Fi"},
				"description": {"type": "string", "example": "A noble family becomes embroiled in a war for control of the desert planet Arrakis."},
				"poster": {"type": "string", "example": "https://example.com/dune.jpg"},
				"title": {"type": "string", "example": "Dune"},
				"videoUrl": {"type": "string", "example": "https://example.com/dune.mp4"},
				"year": {"type": "integer", "example": 2021}
			}
		},
		"handler.seasonRequest": {
			"type": "object",
			"properties": {
				"episodes": {"type": "array", "items": {"$ref": "#/definitions/handler.episodeRequest"}},
				"seasonNumber": {"type": "integer", "example": 1}
			}
		},
		"handler.successBody": {
			"type": "object",
			"properties": {
				"success": {"type": "boolean", "example": true}
			}
		},
		"handler.tvShowCreated": {
			"type": "object",
			"properties": {
				"success": {"type": "boolean", "example": true},
				"tv": {"$ref": "#/definitions/model.TvShow"}
			}
		},
		"handler.tvShowRequest": {
			"type": "object",
			"required": ["title"],
			"properties": {
				"category": {"type": "string", "example": "Thriller"},
				"description": {"type": "string", "example": "A missing child sets four families on a frantic hunt for answers."},
				"poster": {"type": "string", "example": "https://example.com/dark.jpg"},
				"seasons": {"type": "array", "items": {"$ref": "#/definitions/handler.seasonRequest"}},
				"title": {"type": "string", "example": "Dark"},
				"year": {"type": "integer", "example": 2017}
			}
		},
		"model.Episode": {
			"type": "object",
			"properties": {
				"episodeNumber": {"type": "integer"},
				"title": {"type": "string"},
				"videoUrl": {"type": "string"}
			}
		},
		"model.Movie": {
			"type": "object",
			"properties": {
				"_id": {"type": "string"},
				"category": {"type": "string"},
				"description": {"type": "string"},
				"poster": {"type": "string"},
				"title": {"type": "string"},
				"videoUrl": {"type": "string"},
				"year": {"type": "integer"}
			}
		},
		"model.Season": {
			"type": "object",
			"properties": {
				"episodes": {"type": "array", "items": {"$ref": "#/definitions/model.Episode"}},
				"seasonNumber": {"type": "integer"}
			}
		},
		"model.TvShow": {
			"type": "object",
			"properties": {
				"_id": {"type": "string"},
				"category": {"type": "string"},
				"description": {"type": "string"},
				"poster": {"type": "string"},
				"seasons": {"type": "array", "items": {"$ref": "#/definitions/model.Season"}},
				"title": {"type": "string"},
				"year": {"type": "integer"}
			}
		}
	},
	"tags": [
		{"description": "Movie catalog: list, search, lookup, add and delete", "name": "Movies"},
		{"description": "TV shows with embedded seasons and episodes", "name": "TV Shows"}
	]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "OBEDTECH Movie & TV API",
	Description:      "REST catalog of movies and TV shows backed by MongoDB.\n\n**Try out each endpoint directly below!**",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
