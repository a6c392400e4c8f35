package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academic Support Planner API",
        "description": "Interactive curriculum planner: subject catalog, semester timeline and graduation tracking",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Subjects", "description": "Catalog, placements and deletion"},
        {"name": "Semesters", "description": "Timeline slots and range configuration"},
        {"name": "Graduation", "description": "Derived readiness summary"},
        {"name": "Export", "description": "Plan overview documents"},
        {"name": "Activity", "description": "Recent plan mutations"}
    ],
    "paths": {
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List catalog subjects",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Subjects"],
                "summary": "Create or update a subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubjectDraft"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects/unassigned": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List unassigned subjects grouped by offered term",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects/{id}/move": {
            "post": {
                "tags": ["Subjects"],
                "summary": "Move a subject into a semester, or back to the pool",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MoveSubjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "Moved", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Placement rejected", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects/{id}/toggle": {
            "post": {
                "tags": ["Subjects"],
                "summary": "Toggle a subject between MANDATORY and ELECTIVE",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown subject", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects/{id}": {
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete a subject globally, or unassign it from one semester",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteSubjectRequest"}}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "428": {"description": "Confirmation or choice required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/semesters": {
            "get": {
                "tags": ["Semesters"],
                "summary": "List semester slots with assignments and credit subtotals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/semesters/range": {
            "put": {
                "tags": ["Semesters"],
                "summary": "Reconfigure the timeline range",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RangeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/graduation": {
            "get": {
                "tags": ["Graduation"],
                "summary": "Graduation readiness against the configured thresholds",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/plan": {
            "get": {
                "tags": ["Export"],
                "summary": "Export the plan overview as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Document"}
                }
            }
        },
        "/activity": {
            "get": {
                "tags": ["Activity"],
                "summary": "List recent plan mutations, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "SubjectDraft": {
            "type": "object",
            "required": ["id", "name", "category", "offered_term"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "credits": {"type": "integer", "minimum": 0, "maximum": 15},
                "category": {"type": "string", "enum": ["MANDATORY", "ELECTIVE"]},
                "offered_term": {"type": "integer", "enum": [1, 2]},
                "prerequisites": {"type": "string", "description": "Comma-separated subject IDs"},
                "is_retake": {"type": "boolean"}
            }
        },
        "MoveSubjectRequest": {
            "type": "object",
            "properties": {
                "semester_id": {"type": "string", "x-nullable": true}
            }
        },
        "DeleteSubjectRequest": {
            "type": "object",
            "properties": {
                "semester_id": {"type": "string", "x-nullable": true},
                "choice": {"type": "string", "enum": ["unassign", "delete"]},
                "confirm": {"type": "boolean"}
            }
        },
        "RangeRequest": {
            "type": "object",
            "required": ["start_year", "start_term", "end_year", "end_term"],
            "properties": {
                "start_year": {"type": "integer"},
                "start_term": {"type": "integer", "enum": [1, 2]},
                "end_year": {"type": "integer"},
                "end_term": {"type": "integer", "enum": [1, 2]}
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
