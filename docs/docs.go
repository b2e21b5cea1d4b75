// Package docs contiene el documento OpenAPI del servicio, generado con
// swaggo/swag a partir de las anotaciones de internal/adapters/httpserver.
//
//	swag init -g cmd/enterprised/main.go -o docs --parseInternal
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
        "/enterprises": {
            "get": {
                "produces": ["application/json"],
                "tags": ["enterprises"],
                "summary": "List enterprises",
                "description": "Returns every record ordered by created_at descending.",
                "responses": {
                    "200": {
                        "description": "Fetched",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/httpserver.envelope"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/httpserver.enterpriseDTO"}
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/httpserver.problem"}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["enterprises"],
                "summary": "Create an enterprise",
                "description": "Validates and normalizes the payload, assigns id, verified and created_at.",
                "parameters": [
                    {
                        "description": "Enterprise",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/usecase.CreateEnterpriseInput"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/httpserver.envelope"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/httpserver.enterpriseDTO"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/httpserver.problem"}
                    }
                }
            }
        },
        "/enterprises/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["enterprises"],
                "summary": "Export enterprises as xlsx",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "file"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/httpserver.problem"}
                    }
                }
            }
        },
        "/enterprises/import": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["enterprises"],
                "summary": "Import enterprises from xlsx",
                "description": "Each data row goes through the create pipeline; failures are reported per row.",
                "parameters": [
                    {
                        "type": "file",
                        "description": "xlsx workbook",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Imported",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/httpserver.envelope"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/usecase.ImportResult"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/httpserver.problem"}
                    }
                }
            }
        },
        "/enterprises/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["enterprises"],
                "summary": "Get an enterprise",
                "parameters": [
                    {"type": "string", "description": "Enterprise ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Fetched",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/httpserver.envelope"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/httpserver.enterpriseDTO"}
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Enterprise not found",
                        "schema": {"$ref": "#/definitions/httpserver.problem"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["enterprises"],
                "summary": "Delete an enterprise",
                "parameters": [
                    {"type": "string", "description": "Enterprise ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/httpserver.envelope"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"type": "string"}
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Enterprise not found",
                        "schema": {"$ref": "#/definitions/httpserver.problem"}
                    }
                }
            }
        },
        "/enterprises/{id}/toggle": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["enterprises"],
                "summary": "Toggle the disabled flag",
                "parameters": [
                    {"type": "string", "description": "Enterprise ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Disabled or Enabled",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/httpserver.envelope"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/httpserver.enterpriseDTO"}
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Enterprise not found",
                        "schema": {"$ref": "#/definitions/httpserver.problem"}
                    }
                }
            }
        }
    },
    "definitions": {
        "httpserver.envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "httpserver.problem": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {"type": "string"}
                    }
                },
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "httpserver.enterpriseDTO": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "balance": {"type": "number", "example": 10.5},
                "created_at": {"type": "string", "format": "date-time"},
                "disabled": {"type": "boolean"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "phone": {"type": "string"},
                "tax_address": {"$ref": "#/definitions/httpserver.taxAddressDTO"},
                "tax_number": {"type": "integer"},
                "title": {"type": "string"},
                "verified": {"type": "boolean"}
            }
        },
        "httpserver.taxAddressDTO": {
            "type": "object",
            "properties": {
                "district": {"type": "string"},
                "province": {"type": "string"}
            }
        },
        "usecase.CreateEnterpriseInput": {
            "type": "object",
            "required": ["address", "balance", "email", "phone", "tax_address", "tax_number", "title"],
            "properties": {
                "address": {"type": "string", "minLength": 5},
                "balance": {"type": "string", "example": "10,5"},
                "email": {"type": "string"},
                "phone": {"type": "string", "example": "901234567890"},
                "tax_address": {"$ref": "#/definitions/usecase.TaxAddressInput"},
                "tax_number": {"type": "string", "example": "1234567890"},
                "title": {"type": "string", "maxLength": 200, "minLength": 2}
            }
        },
        "usecase.TaxAddressInput": {
            "type": "object",
            "required": ["district", "province"],
            "properties": {
                "district": {"type": "string", "maxLength": 100, "minLength": 2},
                "province": {"type": "string", "maxLength": 100, "minLength": 2}
            }
        },
        "usecase.ImportFailure": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {"type": "string"}
                    }
                },
                "row": {"type": "integer"}
            }
        },
        "usecase.ImportResult": {
            "type": "object",
            "properties": {
                "created": {"type": "integer"},
                "failed": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/usecase.ImportFailure"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "v1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Enterprises API",
	Description:      "CRUD service for enterprise records. Routes are also served under /api.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
