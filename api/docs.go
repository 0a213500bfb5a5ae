// Package api holds the OpenAPI document served at /docs. Keep it in sync
// with the handler annotations when routes change.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "AGPL-3.0",
            "url": "https://www.gnu.org/licenses/agpl-3.0.en.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/router.RootResponse"}
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/httperror.Error"}
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/router.VersionResponse"}
                    }
                }
            }
        },
        "/v1/auth/register": {
            "post": {
                "description": "Registers a new profile with the default categories",
                "tags": ["Auth"],
                "summary": "Register",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "profile",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/v1.RegisterEditable"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.ProfileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.ProfileResponse"}}
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "description": "Exchanges credentials for a bearer token",
                "tags": ["Auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/v1.LoginEditable"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/v1.TokenResponse"}}
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Revokes the bearer token of the request",
                "tags": ["Auth"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Categories"],
                "summary": "Get categories",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.CategoryListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Categories"],
                "summary": "Create categories",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.CategoryCreateResponse"}}}
            }
        },
        "/v1/expenses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Expenses"],
                "summary": "Get expenses",
                "parameters": [
                    {"type": "string", "description": "Case insensitive search in the description", "name": "search", "in": "query"},
                    {"type": "string", "description": "Filter by category ID", "name": "category", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ExpenseListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Expenses"],
                "summary": "Create expenses",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.ExpenseCreateResponse"}}}
            }
        },
        "/v1/budgets": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Budgets"],
                "summary": "Get budgets",
                "parameters": [
                    {"type": "string", "description": "Filter by category ID", "name": "category", "in": "query"},
                    {"type": "string", "description": "Filter by period", "name": "period", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.BudgetListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Budgets"],
                "summary": "Create budgets",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.BudgetCreateResponse"}}}
            }
        },
        "/v1/goals": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Goals"],
                "summary": "Get savings goals",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.GoalListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Goals"],
                "summary": "Create savings goals",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.GoalCreateResponse"}}}
            }
        },
        "/v1/goals/{id}/progress": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Goals"],
                "summary": "Add progress",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.GoalResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/v1.GoalResponse"}}
                }
            }
        },
        "/v1/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Dashboard"],
                "summary": "Get dashboard",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.DashboardResponse"}}}
            }
        },
        "/v1/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Export"],
                "summary": "Export data",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ExportResponse"}}}
            }
        }
    },
    "definitions": {
        "httperror.Error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {"links": {"type": "object"}}
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {"data": {"type": "object"}}
        },
        "v1.RegisterEditable": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "jane@example.com"},
                "password": {"type": "string"},
                "displayName": {"type": "string", "example": "Jane"}
            }
        },
        "v1.LoginEditable": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "jane@example.com"},
                "password": {"type": "string"}
            }
        },
        "v1.TokenResponse": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"type": "string"}}},
        "v1.ProfileResponse": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"type": "string"}}},
        "v1.CategoryListResponse": {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "object"}}, "error": {"type": "string"}}},
        "v1.CategoryCreateResponse": {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "object"}}, "error": {"type": "string"}}},
        "v1.ExpenseListResponse": {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "object"}}, "error": {"type": "string"}}},
        "v1.ExpenseCreateResponse": {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "object"}}, "error": {"type": "string"}}},
        "v1.BudgetListResponse": {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "object"}}, "error": {"type": "string"}}},
        "v1.BudgetCreateResponse": {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "object"}}, "error": {"type": "string"}}},
        "v1.GoalListResponse": {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "object"}}, "error": {"type": "string"}}},
        "v1.GoalCreateResponse": {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "object"}}, "error": {"type": "string"}}},
        "v1.GoalResponse": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"type": "string"}}},
        "v1.DashboardResponse": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"type": "string"}}},
        "v1.ExportResponse": {
            "type": "object",
            "properties": {
                "version": {"type": "string"},
                "creationTime": {"type": "string"},
                "clacks": {"type": "string"},
                "data": {"type": "object"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer token as returned by the login endpoint, prefixed with \"Bearer \"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
