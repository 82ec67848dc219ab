// Package docs registra el documento OpenAPI que sirve /swagger/.
// Mantener en sync con las anotaciones de internal/domain/pets/handler.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Lista todas las mascotas (orden de inserción)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Guarda una mascota nueva desde el editor",
                "parameters": [
                    {"description": "formulario del editor", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.EditorForm"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "204": {"description": "formulario vacío, no se guarda nada"},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Borra todas las mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.rowsResponse"}}
                }
            }
        },
        "/pets/dummy": {
            "post": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Inserta la mascota de ejemplo (Toto, Terrier)",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.petResponse"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Carga una mascota en el editor",
                "parameters": [
                    {"type": "integer", "description": "id", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Reemplaza una mascota existente (guardar en el editor)",
                "parameters": [
                    {"type": "integer", "description": "id", "name": "petID", "in": "path", "required": true},
                    {"description": "formulario del editor", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.EditorForm"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "204": {"description": "formulario vacío, no se guarda nada"},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Borra una mascota",
                "parameters": [
                    {"type": "integer", "description": "id", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.rowsResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "pets.EditorForm": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "gender": {"type": "string", "description": "unknown|male|female (o 0|1|2)"},
                "weight": {"type": "string", "description": "entero entre 0 y 2147483647; vacío = 0"}
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "gender": {"type": "integer", "enum": [0, 1, 2]},
                "gender_label": {"type": "string"},
                "weight": {"type": "integer"}
            }
        },
        "pets.rowsResponse": {
            "type": "object",
            "properties": {
                "rows": {"type": "integer"}
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
	Title:            "Pet Shelter API",
	Description:      "Catálogo y editor de mascotas del refugio.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
