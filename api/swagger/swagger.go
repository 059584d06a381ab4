package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Duty Roster API",
        "description": "Fair duty-roster scheduling with preference-aware assignment",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Roster", "description": "Roster membership and date preferences"},
        {"name": "Schedule", "description": "Schedule configuration and generation"},
        {"name": "Calendar", "description": "Calendar-event projection of runs"},
        {"name": "Export", "description": "Flat-file downloads of runs"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check with metrics snapshot",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/roster": {
            "get": {
                "tags": ["Roster"],
                "summary": "List roster members in insertion order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Roster"],
                "summary": "Add a person to the duty roster",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddPersonRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already on the roster"}
                }
            }
        },
        "/roster/{email}": {
            "delete": {
                "tags": ["Roster"],
                "summary": "Remove a person and their preferences",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Removed"},
                    "404": {"description": "Unknown email"}
                }
            }
        },
        "/roster/{email}/preferences": {
            "get": {
                "tags": ["Roster"],
                "summary": "Get stored date preferences",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Roster"],
                "summary": "Replace date preferences",
                "description": "Dates are canonicalized to YYYY-MM-DD. A date listed as both preferred and not preferred is rejected.",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PreferencesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Date in both lists or unparseable"}
                }
            }
        },
        "/roster/preferences/import": {
            "post": {
                "tags": ["Roster"],
                "summary": "Import date preferences from CSV",
                "description": "Columns are sniffed from the header. Bad rows become warnings, never batch failures.",
                "consumes": ["multipart/form-data", "text/csv"],
                "responses": {
                    "200": {"description": "Import summary", "schema": {"$ref": "#/definitions/ImportSummary"}}
                }
            }
        },
        "/schedule/config": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get the effective schedule configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Schedule"],
                "summary": "Set shift counts and the scheduling window",
                "description": "Shift counts are clamped to [0,10].",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleConfigRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/generate": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Run the scheduling pipeline",
                "responses": {
                    "200": {"description": "Run ID, schedule and fairness report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Demand exceeds roster capacity or date range unset"}
                }
            }
        },
        "/schedule/runs/{id}": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Fetch a stored schedule run",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Run not found or expired"}
                }
            }
        },
        "/schedule/runs/{id}/calendar": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Project a run into timed calendar events",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "person", "in": "query", "type": "string"},
                    {"name": "role", "in": "query", "type": "string", "enum": ["primary", "secondary"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/runs/{id}/export/csv": {
            "get": {
                "tags": ["Export"],
                "summary": "Download a run as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV attachment"}
                }
            }
        },
        "/schedule/runs/{id}/export/whentowork": {
            "get": {
                "tags": ["Export"],
                "summary": "Download a run in WhenToWork import layout",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "team", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV attachment"}
                }
            }
        },
        "/schedule/runs/{id}/export/pdf": {
            "get": {
                "tags": ["Export"],
                "summary": "Download a run as a tabular PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF attachment"}
                }
            }
        }
    },
    "definitions": {
        "AddPersonRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"}
            },
            "required": ["name", "email"]
        },
        "PreferencesRequest": {
            "type": "object",
            "properties": {
                "preferredDates": {"type": "array", "items": {"type": "string"}},
                "notPreferredDates": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ScheduleConfigRequest": {
            "type": "object",
            "properties": {
                "primaryPerDay": {"type": "integer"},
                "secondaryPerDay": {"type": "integer"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"}
            },
            "required": ["startDate", "endDate"]
        },
        "ImportSummary": {
            "type": "object",
            "properties": {
                "rowsSeen": {"type": "integer"},
                "rowsApplied": {"type": "integer"},
                "warnings": {"type": "array", "items": {"type": "string"}}
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
