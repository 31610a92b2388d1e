// Package docs registers the OpenAPI document served at /swagger/*. The
// document is written by hand; api.TestRouter_SwaggerMatchesAPIRoutes fails
// when it and the router disagree.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/api/auth/admin/login": {
            "post": {
                "tags": ["auth"], "summary": "Admin login",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/auth/client/login": {
            "post": {
                "tags": ["auth"], "summary": "Client login",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/admin/products": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"], "summary": "Add a product",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "Idempotency-Key", "type": "string", "description": "Replays the first create made with this key"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/addProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "Idempotent replay", "schema": {"$ref": "#/definitions/productEnvelope"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/productEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Same Idempotency-Key still being created", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/admin/products/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"], "summary": "Get a product",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/productEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"], "summary": "Update a product",
                "description": "name and price replace the stored values; quantity is added to the current stock.",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/addProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/productEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/admin/password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"], "summary": "Change the admin's password",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/changePasswordRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Incorrect current password", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/client/password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"], "summary": "Change the client's password",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/changePasswordRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Incorrect current password", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "tokenResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "token": {"type": "string"},
                "account": {"$ref": "#/definitions/account"}
            }
        },
        "account": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "role": {"type": "string"}, "name": {"type": "string"},
                "email": {"type": "string"}, "phoneNo": {"type": "string"}, "address": {"type": "string"}
            }
        },
        "addProductRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "price": {"type": "number"}, "quantity": {"type": "integer"}}
        },
        "product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "price": {"type": "number"},
                "quantity": {"type": "integer"}, "addedOn": {"type": "string"}, "updatedOn": {"type": "string"}
            }
        },
        "productEnvelope": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "data": {"$ref": "#/definitions/product"}}
        },
        "changePasswordRequest": {
            "type": "object",
            "properties": {
                "passwords": {
                    "type": "object",
                    "properties": {"currentPassword": {"type": "string"}, "newPassword": {"type": "string"}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Coffee Shop Admin API",
	Description:      "Product and credential management for the coffee shop back office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
