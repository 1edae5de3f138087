// Package docs holds the OpenAPI description served at /swagger
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
        "/shell": {
            "get": {"tags": ["shell"], "summary": "Get the active pane", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Shell"}}}},
            "put": {"tags": ["shell"], "summary": "Switch pane", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "Pane", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateShellRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Shell"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/itinerary": {
            "get": {"tags": ["itinerary"], "summary": "Get the itinerary", "produces": ["application/json"],
                "parameters": [
                    {"enum": ["A", "B"], "type": "string", "description": "Optional day choice", "name": "option", "in": "query"},
                    {"type": "boolean", "description": "Merge the live forecast", "name": "live", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}}
        },
        "/itinerary/items/{id}": {
            "get": {"tags": ["itinerary"], "summary": "Get one activity", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Activity ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}},
            "put": {"tags": ["itinerary"], "summary": "Edit an activity", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Activity ID", "name": "id", "in": "path", "required": true},
                    {"description": "Edited fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ActivityEdit"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/itinerary/items/{id}/comment": {
            "put": {"tags": ["itinerary"], "summary": "Set an activity comment", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Activity ID", "name": "id", "in": "path", "required": true},
                    {"description": "Comment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateCommentRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/itinerary/items/{id}/images": {
            "post": {"tags": ["itinerary"], "summary": "Attach a photo to an activity", "consumes": ["multipart/form-data"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Activity ID", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "JPEG or PNG", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/itinerary/items/{id}/images/{index}": {
            "delete": {"tags": ["itinerary"], "summary": "Remove an activity photo", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Activity ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Photo position", "name": "index", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/weather": {
            "get": {"tags": ["itinerary"], "summary": "Get the live forecast", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/info": {
            "get": {"tags": ["info"], "summary": "Get trip reference data", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/spots/{id}/distance": {
            "get": {"tags": ["info"], "summary": "Check the distance to a saved spot", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Spot ID", "name": "id", "in": "path", "required": true},
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Longitude", "name": "lng", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/expenses": {
            "get": {"tags": ["expenses"], "summary": "List expenses", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["expenses"], "summary": "Append an expense", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "Expense", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateExpenseRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/expenses/{id}": {
            "delete": {"tags": ["expenses"], "summary": "Remove an expense",
                "parameters": [{"type": "string", "description": "Expense ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/expenses/export": {
            "get": {"tags": ["expenses"], "summary": "Export the ledger", "produces": ["text/plain"], "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}}
        },
        "/expenses/import": {
            "post": {"tags": ["expenses"], "summary": "Import a ledger", "consumes": ["text/plain"], "produces": ["application/json"],
                "parameters": [
                    {"type": "boolean", "description": "Replace the current ledger", "name": "confirm", "in": "query"},
                    {"description": "Exported ledger text", "name": "blob", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/convert": {
            "get": {"tags": ["tools"], "summary": "Convert JPY to TWD", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Amount in yen", "name": "jpy", "in": "query"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/translate": {
            "get": {"tags": ["tools"], "summary": "Build a translation link", "produces": ["application/json"],
                "parameters": [
                    {"enum": ["jp-tw", "tw-jp"], "type": "string", "description": "Direction", "name": "mode", "in": "query", "required": true},
                    {"type": "string", "description": "Text to translate", "name": "text", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ProblemDetails"}}}}
        },
        "/phrases": {
            "get": {"tags": ["tools"], "summary": "List preset phrases", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "domain.Shell": {"type": "object", "properties": {"active": {"type": "string"}, "scrollOffset": {"type": "integer"}}},
        "domain.ActivityEdit": {"type": "object", "properties": {"title": {"type": "string"}, "time": {"type": "string"}, "openingHours": {"type": "string"}, "description": {"type": "string"}}},
        "handler.UpdateShellRequest": {"type": "object", "properties": {"pane": {"type": "string"}, "scrollOffset": {"type": "integer"}}},
        "handler.UpdateCommentRequest": {"type": "object", "properties": {"comment": {"type": "string"}}},
        "handler.CreateExpenseRequest": {"type": "object", "properties": {"title": {"type": "string"}, "amount": {"type": "string"}, "category": {"type": "string"}, "paymentMethod": {"type": "string"}}},
        "handler.ValidationError": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}},
        "handler.ProblemDetails": {"type": "object", "properties": {
            "type": {"type": "string"}, "title": {"type": "string"}, "status": {"type": "integer"},
            "detail": {"type": "string"}, "instance": {"type": "string"},
            "errors": {"type": "array", "items": {"$ref": "#/definitions/handler.ValidationError"}}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Tabi API",
	Description:      "Trip companion: itinerary, expense ledger, converter and travel helpers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
