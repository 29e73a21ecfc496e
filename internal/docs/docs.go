// Package docs registra en swag el documento OpenAPI que sirve /swagger/doc.json.
// Se mantiene a mano junto con las anotaciones godoc de internal/domain/animals.
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
        "/animals": {
            "get": {
                "description": "Devuelve la respuesta de Petfinder sin tocar. Si trae status 4xx/5xx embebido se responde con ese status; cualquier otro valor => 502.",
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Búsqueda cruda de animales",
                "parameters": [
                    {"type": "string", "description": "Código postal o ciudad", "name": "location", "in": "query", "required": true},
                    {"type": "integer", "description": "Millas", "name": "distance", "in": "query"},
                    {"type": "string", "description": "Especie", "name": "type", "in": "query", "required": true},
                    {"type": "string", "description": "Male,Female,Unknown", "name": "gender", "in": "query"},
                    {"type": "string", "description": "Lista separada por coma", "name": "coat", "in": "query"},
                    {"type": "string", "description": "Lista separada por coma", "name": "color", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD o YYYY-MM-DD HH:MM:SS", "name": "after", "in": "query"},
                    {"type": "integer", "description": "Página (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Resultados por página (default 50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/petfinder.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/animals.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/animals.errorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Dashboard de búsqueda (mapa, gráficos y tabla)",
                "parameters": [
                    {"type": "string", "description": "Default 90210", "name": "location", "in": "query"},
                    {"type": "integer", "description": "Default 20", "name": "distance", "in": "query"},
                    {"type": "string", "description": "Default Cat", "name": "type", "in": "query"},
                    {"type": "boolean", "description": "Default true", "name": "male", "in": "query"},
                    {"type": "boolean", "description": "Default true", "name": "female", "in": "query"},
                    {"type": "string", "description": "Default: todos los del catálogo", "name": "coat", "in": "query"},
                    {"type": "string", "description": "Lista separada por coma", "name": "color", "in": "query"},
                    {"type": "string", "description": "Default: hoy - 7 días", "name": "after", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.Dashboard"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/animals.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/animals.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/animals.errorResponse"}}
                }
            }
        },
        "/types/{species}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Catálogo de una especie",
                "parameters": [
                    {"type": "string", "description": "Especie (Cat, Dog, ...)", "name": "species", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/petfinder.AnimalType"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/animals.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "animals.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "animals.GeoPoint": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "name": {"type": "string"}
            }
        },
        "animals.Dashboard": {
            "type": "object",
            "properties": {
                "search_id": {"type": "string"},
                "filter": {"type": "object"},
                "origin": {"$ref": "#/definitions/geocoding.Location"},
                "map_message": {"type": "string"},
                "points": {"type": "array", "items": {"$ref": "#/definitions/animals.GeoPoint"}},
                "plotted": {"type": "integer"},
                "gender": {
                    "type": "object",
                    "properties": {"male": {"type": "integer"}, "female": {"type": "integer"}}
                },
                "coats": {
                    "type": "object",
                    "properties": {
                        "categories": {"type": "array", "items": {"type": "string"}},
                        "counts": {"type": "array", "items": {"type": "integer"}}
                    }
                },
                "columns": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"type": "object"}},
                "pagination": {"$ref": "#/definitions/petfinder.Pagination"}
            }
        },
        "geocoding.Location": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "display_name": {"type": "string"}
            }
        },
        "petfinder.AnimalType": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "coats": {"type": "array", "items": {"type": "string"}},
                "colors": {"type": "array", "items": {"type": "string"}},
                "genders": {"type": "array", "items": {"type": "string"}}
            }
        },
        "petfinder.Pagination": {
            "type": "object",
            "properties": {
                "count_per_page": {"type": "integer"},
                "total_count": {"type": "integer"},
                "current_page": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "petfinder.SearchResponse": {
            "type": "object",
            "properties": {
                "animals": {"type": "array", "items": {"type": "object"}},
                "pagination": {"$ref": "#/definitions/petfinder.Pagination"},
                "status": {"type": "integer"},
                "type": {"type": "string"},
                "title": {"type": "string"},
                "detail": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Finder API",
	Description:      "Búsqueda de animales en adopción sobre la API de Petfinder: catálogo, búsqueda y dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
