// Package docs holds the Swagger document served at /swagger. Regenerate with
// `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users except the caller",
                "parameters": [
                    {"type": "integer", "description": "Page number, starting at 0", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (1-100)", "name": "size", "in": "query"},
                    {"type": "string", "description": "Sort, e.g. username,desc", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Page-model_UserView"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Candidate user", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GenericResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/{username}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by username",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update the caller's profile",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Profile changes", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in with Basic credentials or a JSON body",
                "parameters": [
                    {"description": "Credentials when no Basic header is sent", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Refresh access token",
                "parameters": [
                    {"description": "Refresh token", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RefreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out and revoke the current tokens",
                "parameters": [
                    {"description": "Refresh token", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RefreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GenericResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/hoaxes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hoaxes"],
                "summary": "List all hoaxes",
                "parameters": [
                    {"type": "integer", "description": "Page number, starting at 0", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (1-100)", "name": "size", "in": "query"},
                    {"type": "string", "description": "Sort, e.g. id,desc", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Page-model_HoaxView"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["hoaxes"],
                "summary": "Post a hoax as the caller",
                "parameters": [
                    {"description": "Hoax content", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateHoaxRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HoaxView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/hoaxes/{id}": {
            "get": {
                "description": "direction=after (default) returns every newer hoax as a list, or {count} with count=true.\nAny other direction returns a page of older hoaxes, newest first.",
                "produces": ["application/json"],
                "tags": ["hoaxes"],
                "summary": "Hoaxes relative to a reference id",
                "parameters": [
                    {"type": "integer", "description": "Reference hoax ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "default": "after", "description": "after or before", "name": "direction", "in": "query"},
                    {"type": "boolean", "description": "Return only the number of newer hoaxes", "name": "count", "in": "query"},
                    {"type": "integer", "description": "Page number for direction=before", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size for direction=before", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.HoaxView"}}}
                }
            }
        },
        "/users/{username}/hoaxes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hoaxes"],
                "summary": "List the hoaxes of one user",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number, starting at 0", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (1-100)", "name": "size", "in": "query"},
                    {"type": "string", "description": "Sort, e.g. id,desc", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Page-model_HoaxView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/{username}/hoaxes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hoaxes"],
                "summary": "Hoaxes of one user relative to a reference id",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "path", "required": true},
                    {"type": "integer", "description": "Reference hoax ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "default": "after", "description": "after or before", "name": "direction", "in": "query"},
                    {"type": "boolean", "description": "Return only the number of newer hoaxes", "name": "count", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.HoaxView"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "integer"},
                "status": {"type": "integer"},
                "message": {"type": "string"},
                "url": {"type": "string"},
                "code": {"type": "string"},
                "validationErrors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.GenericResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["username", "displayName", "password"],
            "properties": {
                "username": {"type": "string", "minLength": 4, "maxLength": 255},
                "displayName": {"type": "string", "minLength": 4, "maxLength": 255},
                "password": {"type": "string", "minLength": 8, "maxLength": 255}
            }
        },
        "handler.UpdateUserRequest": {
            "type": "object",
            "required": ["displayName"],
            "properties": {
                "displayName": {"type": "string", "minLength": 4, "maxLength": 255},
                "image": {"type": "string", "description": "base64 encoded PNG or JPEG"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.LoginResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "displayName": {"type": "string"},
                "image": {"type": "string"},
                "token": {"type": "string"},
                "refreshToken": {"type": "string"}
            }
        },
        "handler.RefreshRequest": {
            "type": "object",
            "required": ["refreshToken"],
            "properties": {"refreshToken": {"type": "string"}}
        },
        "handler.TokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "handler.CreateHoaxRequest": {
            "type": "object",
            "required": ["content"],
            "properties": {"content": {"type": "string", "minLength": 10, "maxLength": 5000}}
        },
        "model.UserView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "displayName": {"type": "string"},
                "image": {"type": "string"}
            }
        },
        "model.HoaxView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "content": {"type": "string"},
                "date": {"type": "integer"},
                "user": {"$ref": "#/definitions/model.UserView"}
            }
        },
        "model.Page-model_UserView": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/model.UserView"}},
                "number": {"type": "integer"},
                "size": {"type": "integer"},
                "totalElements": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "numberOfElements": {"type": "integer"},
                "first": {"type": "boolean"},
                "last": {"type": "boolean"}
            }
        },
        "model.Page-model_HoaxView": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/model.HoaxView"}},
                "number": {"type": "integer"},
                "size": {"type": "integer"},
                "totalElements": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "numberOfElements": {"type": "integer"},
                "first": {"type": "boolean"},
                "last": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/1.0",
	Schemes:          []string{"http"},
	Title:            "Hoaxify API",
	Description:      "Social posting API with users, hoaxes, timeline pagination and profile images.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
