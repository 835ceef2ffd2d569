// Package docs holds the Swagger document served at /swagger.
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
        "/api/v1/tasks/capture": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tasks"
                ],
                "summary": "Capture tasks from free text",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Acting user",
                        "name": "X-User-ID",
                        "in": "header"
                    },
                    {
                        "description": "Command text",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.captureReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.captureResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "422": {
                        "description": "Nothing to capture",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/tasks/board": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tasks"
                ],
                "summary": "Project the task board",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Acting user",
                        "name": "X-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Custom view id",
                        "name": "view_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "inbox (default), today, upcoming or all",
                        "name": "standard_view",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Case-insensitive title search",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.boardResp"
                        }
                    },
                    "404": {
                        "description": "View Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/tasks/{id}/move": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tasks"
                ],
                "summary": "Move a task to another bucket",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Acting user",
                        "name": "X-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Dimension and target bucket",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.moveReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.moveResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/views/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Views"
                ],
                "summary": "Get a custom view",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Acting user",
                        "name": "X-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "View ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.viewResp"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Views"
                ],
                "summary": "Create or replace a custom view",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Acting user",
                        "name": "X-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "View ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "View configuration",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.saveViewReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.viewResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/statuses": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Catalog"
                ],
                "summary": "List workflow statuses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/http.statusResp"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/projects": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Catalog"
                ],
                "summary": "List projects",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/http.projectResp"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "http.captureReq": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "dry_run": {
                    "type": "boolean"
                }
            }
        },
        "http.moveReq": {
            "type": "object",
            "properties": {
                "dimension": {
                    "type": "string"
                },
                "target": {
                    "type": "string"
                }
            },
            "required": [
                "dimension",
                "target"
            ]
        },
        "http.viewFiltersReq": {
            "type": "object",
            "properties": {
                "project_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "priorities": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "statuses": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "http.saveViewReq": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "layout": {
                    "type": "string"
                },
                "group_by": {
                    "type": "string"
                },
                "sort_by": {
                    "type": "string"
                },
                "filters": {
                    "$ref": "#/definitions/http.viewFiltersReq"
                }
            }
        },
        "http.taskResp": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "event_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "priority": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "list_id": {
                    "type": "string"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "http.captureResp": {
            "type": "object",
            "properties": {
                "tasks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.taskResp"
                    }
                },
                "count": {
                    "type": "integer"
                },
                "persisted": {
                    "type": "boolean"
                }
            }
        },
        "http.viewFiltersResp": {
            "type": "object",
            "properties": {
                "project_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "priorities": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "statuses": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "http.viewResp": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "layout": {
                    "type": "string"
                },
                "group_by": {
                    "type": "string"
                },
                "sort_by": {
                    "type": "string"
                },
                "filters": {
                    "$ref": "#/definitions/http.viewFiltersResp"
                }
            }
        },
        "http.groupResp": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "tasks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.taskResp"
                    }
                }
            }
        },
        "http.boardResp": {
            "type": "object",
            "properties": {
                "view": {
                    "$ref": "#/definitions/http.viewResp"
                },
                "standard_view": {
                    "type": "string"
                },
                "today": {
                    "type": "string"
                },
                "group_by": {
                    "type": "string"
                },
                "groups": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.groupResp"
                    }
                }
            }
        },
        "http.moveResp": {
            "type": "object",
            "properties": {
                "moved": {
                    "type": "boolean"
                },
                "task": {
                    "$ref": "#/definitions/http.taskResp"
                }
            }
        },
        "http.statusResp": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "completed": {
                    "type": "boolean"
                }
            }
        },
        "http.projectResp": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Aura Task API",
	Description:      "Quick-capture task manager: Spanish natural-language capture, filtered boards and kanban moves.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
