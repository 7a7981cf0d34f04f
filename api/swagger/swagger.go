package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Scholar Hours API",
        "description": "Volunteer hour tracking and compliance reporting for scholarship programs",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login, token refresh, session management"},
        {"name": "Scholars", "description": "Scholar roster management"},
        {"name": "Scholar Portal", "description": "Scholar-facing profile and activity views"},
        {"name": "Activities", "description": "Activity submission and review workflow"},
        {"name": "Categories", "description": "Activity category reference data"},
        {"name": "Reports", "description": "Monthly compliance reports"},
        {"name": "Dashboard", "description": "Program-wide counters"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Refresh access token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Logout current session",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/scholars": {
            "get": {
                "tags": ["Scholars"],
                "summary": "List scholars with stats",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Scholars"],
                "summary": "Enrol scholar",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateScholarRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/scholars/{id}": {
            "get": {
                "tags": ["Scholars"],
                "summary": "Get scholar",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "tags": ["Scholars"],
                "summary": "Update scholar",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateScholarRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/scholars/{id}/stats": {
            "get": {
                "tags": ["Scholars"],
                "summary": "Scholar activity stats",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScholarStats"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/scholar/profile": {
            "get": {
                "tags": ["Scholar Portal"],
                "summary": "Current scholar profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/scholar/stats": {
            "get": {
                "tags": ["Scholar Portal"],
                "summary": "Current scholar activity stats",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScholarStats"}}
                }
            }
        },
        "/scholar/activities": {
            "get": {
                "tags": ["Scholar Portal"],
                "summary": "Current scholar activity history",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/scholar/activities/recent": {
            "get": {
                "tags": ["Scholar Portal"],
                "summary": "Current scholar recent activities",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/activities": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities for review",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Activities"],
                "summary": "Submit activity",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateActivityRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/activities/recent": {
            "get": {
                "tags": ["Activities"],
                "summary": "Most recently submitted activities",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/activities/{id}/approve": {
            "post": {
                "tags": ["Activities"],
                "summary": "Approve pending activity",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/ReviewActivityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Already Reviewed"}
                }
            }
        },
        "/activities/{id}/reject": {
            "post": {
                "tags": ["Activities"],
                "summary": "Reject pending activity",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/ReviewActivityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Already Reviewed"}
                }
            }
        },
        "/categories": {
            "get": {
                "tags": ["Categories"],
                "summary": "List activity categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Categories"],
                "summary": "Create activity category",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/monthly": {
            "get": {
                "tags": ["Reports"],
                "summary": "Monthly compliance report",
                "parameters": [
                    {"name": "month", "in": "query", "required": true, "type": "string", "description": "Target month (YYYY-MM)"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/reports/monthly/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export monthly compliance report",
                "parameters": [
                    {"name": "month", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Program-wide dashboard counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardStats"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "CreateScholarRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "scholarCode": {"type": "string"},
                "level": {"type": "string"},
                "requiredHoursPerMonth": {"type": "integer"}
            },
            "required": ["email", "password", "firstName", "scholarCode", "level"]
        },
        "UpdateScholarRequest": {
            "type": "object",
            "properties": {
                "level": {"type": "string"},
                "requiredHoursPerMonth": {"type": "integer"},
                "isActive": {"type": "boolean"}
            }
        },
        "CreateActivityRequest": {
            "type": "object",
            "properties": {
                "categoryId": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "activityDate": {"type": "string", "description": "YYYY-MM-DD"},
                "hours": {"type": "integer", "minimum": 1, "maximum": 24}
            },
            "required": ["title", "activityDate", "hours"]
        },
        "ReviewActivityRequest": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"}
            }
        },
        "CreateCategoryRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "icon": {"type": "string"}
            },
            "required": ["name"]
        },
        "ScholarStats": {
            "type": "object",
            "properties": {
                "scholarId": {"type": "string"},
                "totalHours": {"type": "integer"},
                "currentMonthHours": {"type": "integer"},
                "pendingActivities": {"type": "integer"},
                "approvedActivities": {"type": "integer"},
                "rejectedActivities": {"type": "integer"}
            }
        },
        "MonthlyReportRow": {
            "type": "object",
            "properties": {
                "scholarId": {"type": "string"},
                "scholarName": {"type": "string"},
                "scholarLevel": {"type": "string"},
                "requiredHours": {"type": "integer"},
                "completedHours": {"type": "integer"},
                "pendingHours": {"type": "integer"},
                "approvedActivities": {"type": "integer"},
                "pendingActivities": {"type": "integer"},
                "rejectedActivities": {"type": "integer"},
                "isCompliant": {"type": "boolean"}
            }
        },
        "DashboardStats": {
            "type": "object",
            "properties": {
                "totalScholars": {"type": "integer"},
                "activeThisMonth": {"type": "integer"},
                "pendingApprovals": {"type": "integer"},
                "hoursThisMonth": {"type": "integer"}
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
