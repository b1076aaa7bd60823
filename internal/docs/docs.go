// Package docs registra la especificación Swagger servida en /swagger/*.
// Regenerar con: swag init -g cmd/api/main.go -o internal/docs
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
        "/v1/evento": {
            "get": {
                "description": "Lista los eventos habilitados del usuario actual.",
                "produces": ["application/json"],
                "tags": ["eventos"],
                "summary": "Listar eventos",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token en producción", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/events.eventoSummary"}}},
                    "401": {"description": "unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Crea un evento cuyo creador es el usuario actual. Devuelve el id asignado.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["eventos"],
                "summary": "Crear evento",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token en producción", "name": "Authorization", "in": "header"},
                    {"description": "Datos del evento", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/events.eventoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/events.idResponse"}},
                    "400": {"description": "errores por campo", "schema": {"$ref": "#/definitions/errdef.ValidationError"}},
                    "401": {"description": "unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/v1/evento/{eventoID}": {
            "get": {
                "description": "Busca un evento del usuario actual por id. Un evento de otro usuario o eliminado da 404.",
                "produces": ["application/json"],
                "tags": ["eventos"],
                "summary": "Buscar evento",
                "parameters": [
                    {"type": "string", "description": "ID del evento", "name": "eventoID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/events.eventoResponse"}},
                    "404": {"description": "not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Actualiza los campos enviados de un evento del usuario actual; los que no vienen se conservan.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["eventos"],
                "summary": "Actualizar evento",
                "parameters": [
                    {"type": "string", "description": "ID del evento", "name": "eventoID", "in": "path", "required": true},
                    {"description": "Campos a actualizar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/events.eventoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/events.eventoResponse"}},
                    "400": {"description": "errores por campo", "schema": {"$ref": "#/definitions/errdef.ValidationError"}},
                    "404": {"description": "not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "description": "Elimina (soft delete) un evento del usuario actual.",
                "tags": ["eventos"],
                "summary": "Eliminar evento",
                "parameters": [
                    {"type": "string", "description": "ID del evento", "name": "eventoID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/v1/evento/{eventoID}/picture": {
            "get": {
                "description": "Devuelve el id de la imagen asociada al evento (vacío si no tiene).",
                "produces": ["application/json"],
                "tags": ["eventos"],
                "summary": "Foto del evento",
                "parameters": [
                    {"type": "string", "description": "ID del evento", "name": "eventoID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/events.pictureResponse"}},
                    "404": {"description": "not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Guarda la imagen (base64 o data URL) y la asocia al evento. Devuelve el id de la imagen.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["eventos"],
                "summary": "Subir foto del evento",
                "parameters": [
                    {"type": "string", "description": "ID del evento", "name": "eventoID", "in": "path", "required": true},
                    {"description": "Imagen en base64", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/events.pictureRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/events.idResponse"}},
                    "400": {"description": "imagen inválida", "schema": {"$ref": "#/definitions/errdef.ValidationError"}},
                    "404": {"description": "not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/v1/image/{imageID}": {
            "get": {
                "description": "Devuelve los bytes de una imagen subida (foto de un evento).",
                "produces": ["image/png", "image/jpeg"],
                "tags": ["images"],
                "summary": "Obtener imagen",
                "parameters": [
                    {"type": "string", "description": "ID de la imagen", "name": "imageID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "errdef.FieldError": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "errdef.ValidationError": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "items": {"$ref": "#/definitions/errdef.FieldError"}}
            }
        },
        "events.eventoRequest": {
            "type": "object",
            "properties": {
                "titulo": {"type": "string", "maxLength": 256},
                "descripcion": {"type": "string", "maxLength": 1024},
                "fechaEvento": {"type": "string"},
                "lugarEvento": {"type": "string"}
            }
        },
        "events.eventoSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "titulo": {"type": "string"},
                "descripcion": {"type": "string"},
                "fechaEvento": {"type": "string"},
                "lugarEvento": {"type": "string"},
                "picture": {"type": "string"}
            }
        },
        "events.eventoResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "titulo": {"type": "string"},
                "descripcion": {"type": "string"},
                "fechaCreacion": {"type": "string"},
                "fechaEvento": {"type": "string"},
                "lugarEvento": {"type": "string"},
                "creador": {"type": "string"},
                "picture": {"type": "string"}
            }
        },
        "events.idResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "events.pictureRequest": {
            "type": "object",
            "required": ["image"],
            "properties": {
                "image": {"type": "string"}
            }
        },
        "events.pictureResponse": {
            "type": "object",
            "properties": {
                "picture": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo guarda la info exportada del spec para poder modificarla en runtime.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Events API",
	Description:      "Eventos de mascotas del usuario logueado: alta, edición, baja lógica y foto.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
