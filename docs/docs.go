// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/assistant/chat": {"post": {"tags": ["Assistant"], "summary": "Chat with the scheduling assistant", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"message": {"type": "string"}, "history": {"type": "array", "items": {"type": "object", "properties": {"role": {"type": "string", "enum": ["user", "assistant"]}, "content": {"type": "string"}}}}}}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "429": {"description": "Too Many Requests"}, "503": {"description": "Assistant unavailable"}}}},
        "/api/v1/tasks": {
            "get": {"tags": ["Planner"], "summary": "List tasks", "parameters": [{"in": "query", "name": "status", "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Planner"], "summary": "Create a task", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/reminders": {
            "get": {"tags": ["Planner"], "summary": "List reminders in a study window", "parameters": [{"in": "query", "name": "period", "type": "string", "enum": ["daily", "weekly", "monthly"]}, {"in": "query", "name": "at", "type": "string", "format": "date-time"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Planner"], "summary": "Create a reminder", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/sessions": {"post": {"tags": ["Stats"], "summary": "Log a study session", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/stats/summary": {"get": {"tags": ["Stats"], "summary": "Study totals per window", "parameters": [{"in": "query", "name": "period", "type": "string", "enum": ["daily", "weekly", "monthly"]}, {"in": "query", "name": "at", "type": "string", "format": "date-time"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/settings/study-day": {
            "get": {"tags": ["Settings"], "summary": "Get study-day start", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Settings"], "summary": "Set study-day start", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Study Tracker API",
	Description:      "Study sessions, reminders and a conversational scheduling assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
