package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Bank Bukti API",
        "description": "Audit evidence bank: requests, evidence and the fulfillment dashboard",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Dashboard", "description": "Fulfillment statistics and deadline classification"},
        {"name": "Permintaan", "description": "Evidence requests from auditors"},
        {"name": "Bukti", "description": "Evidence bank"},
        {"name": "Settings", "description": "Warning window"}
    ],
    "paths": {
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Fulfillment dashboard statistics",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "format": "date", "description": "Reference date, defaults to today"},
                    {"name": "warningDays", "in": "query", "type": "integer", "description": "Warning window override in days"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/deadline": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Classify a single due date",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "tenggat", "in": "query", "type": "string", "format": "date", "required": true},
                    {"name": "date", "in": "query", "type": "string", "format": "date"},
                    {"name": "warningDays", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings/warning-days": {
            "get": {
                "tags": ["Settings"],
                "summary": "Current warning window",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Adjust the warning window",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WarningDaysSetting"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/permintaan": {
            "get": {
                "tags": ["Permintaan"],
                "summary": "List evidence requests",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Permintaan"],
                "summary": "Create evidence request",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RequestPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/permintaan/export": {
            "get": {
                "tags": ["Permintaan"],
                "summary": "Download fulfilled requests",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/permintaan/{id}": {
            "get": {
                "tags": ["Permintaan"],
                "summary": "Get evidence request",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Permintaan"],
                "summary": "Update evidence request",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RequestPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Permintaan"],
                "summary": "Delete evidence request",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/bukti": {
            "get": {
                "tags": ["Bukti"],
                "summary": "List evidence items",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Bukti"],
                "summary": "Create evidence item",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EvidencePayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/bukti/{id}": {
            "get": {
                "tags": ["Bukti"],
                "summary": "Get evidence item",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Bukti"],
                "summary": "Update evidence item",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EvidencePayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Bukti"],
                "summary": "Delete evidence item",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "WarningDaysSetting": {
            "type": "object",
            "required": ["warningDays"],
            "properties": {
                "warningDays": {"type": "integer"}
            }
        },
        "RequestPayload": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "tanggal": {"type": "string", "format": "date"},
                "unit": {"type": "string"},
                "deskripsi": {"type": "string"},
                "tenggat": {"type": "string", "format": "date"},
                "pic": {"type": "string"},
                "buktiTerkait": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string", "enum": ["Belum", "Terpenuhi"]},
                "pemenuhan": {"type": "string", "format": "date"}
            }
        },
        "EvidencePayload": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kategori": {"type": "string"},
                "deskripsi": {"type": "string"},
                "link": {"type": "string", "format": "uri"},
                "unit": {"type": "string"},
                "pic": {"type": "string"},
                "tglDiterima": {"type": "string", "format": "date"},
                "validitas": {"type": "string", "enum": ["Valid", "Perlu Perbaikan"]},
                "catatan": {"type": "string"},
                "prmTerkait": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
