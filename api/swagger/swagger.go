package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Saarthi API",
        "description": "AI tutoring, assessments, student progress and interventions",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Users", "description": "Accounts and role lookups"},
        {"name": "Auth", "description": "Login and token introspection"},
        {"name": "Chat", "description": "AI tutor conversation"},
        {"name": "Assessments", "description": "Generated assessments and student attempts"},
        {"name": "Progress", "description": "Per-subject student progress"},
        {"name": "Interventions", "description": "Educator interventions"},
        {"name": "Analytics", "description": "Risk overview and system statistics"}
    ],
    "paths": {
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users by role, or look one up by username or email",
                "parameters": [
                    {"name": "role", "in": "query", "type": "string", "enum": ["student", "educator", "admin"]},
                    {"name": "username", "in": "query", "type": "string"},
                    {"name": "email", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Create user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange credentials for an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/chat/{userId}": {
            "get": {
                "tags": ["Chat"],
                "summary": "Chat history of a user, oldest first",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ChatMessage"}}}
                }
            }
        },
        "/chat": {
            "post": {
                "tags": ["Chat"],
                "summary": "Send a message and receive the tutor reply",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ChatExchange"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/assessments": {
            "get": {
                "tags": ["Assessments"],
                "summary": "List assessments",
                "parameters": [{"name": "createdBy", "in": "query", "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Assessment"}}}
                }
            },
            "post": {
                "tags": ["Assessments"],
                "summary": "Create an assessment, generating questions when none are given",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Assessment"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Assessment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/assessments/{id}": {
            "get": {
                "tags": ["Assessments"],
                "summary": "Get assessment",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Assessment"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "put": {
                "tags": ["Assessments"],
                "summary": "Partially update assessment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Assessment"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/student-assessments/{studentId}": {
            "get": {
                "tags": ["Assessments"],
                "summary": "Attempts of a student, or the attempt for one assessment",
                "parameters": [
                    {"name": "studentId", "in": "path", "required": true, "type": "integer"},
                    {"name": "assessmentId", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentAssessment"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/student-assessments": {
            "post": {
                "tags": ["Assessments"],
                "summary": "Start an attempt",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentAssessment"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/StudentAssessment"}}
                }
            }
        },
        "/student-assessments/{id}": {
            "put": {
                "tags": ["Assessments"],
                "summary": "Partially update an attempt",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentAssessment"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/student-progress/{studentId}": {
            "get": {
                "tags": ["Progress"],
                "summary": "Progress of a student, or the record for one subject",
                "parameters": [
                    {"name": "studentId", "in": "path", "required": true, "type": "integer"},
                    {"name": "subject", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentProgress"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/student-progress": {
            "post": {
                "tags": ["Progress"],
                "summary": "Create progress record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentProgress"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/StudentProgress"}}
                }
            }
        },
        "/student-progress/{id}": {
            "put": {
                "tags": ["Progress"],
                "summary": "Partially update progress record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentProgress"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/interventions": {
            "get": {
                "tags": ["Interventions"],
                "summary": "List interventions",
                "parameters": [
                    {"name": "studentId", "in": "query", "type": "integer"},
                    {"name": "educatorId", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Intervention"}}}
                }
            },
            "post": {
                "tags": ["Interventions"],
                "summary": "Create intervention",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Intervention"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Intervention"}}
                }
            }
        },
        "/interventions/{id}": {
            "put": {
                "tags": ["Interventions"],
                "summary": "Partially update intervention",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Intervention"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/analytics/risk": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Risk overview across students",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/analytics/risk/export": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Download the at-risk report",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/analytics/system": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Runtime and record statistics",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "educator", "admin"]},
                "name": {"type": "string"},
                "grade": {"type": "string"},
                "subjects": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "required": ["username", "email", "password", "role", "name"],
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"},
                "name": {"type": "string"},
                "grade": {"type": "string"},
                "subjects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/User"},
                "accessToken": {"type": "string"},
                "expiresIn": {"type": "integer"}
            }
        },
        "ChatMessage": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "userId": {"type": "integer"},
                "message": {"type": "string"},
                "isAI": {"type": "boolean"},
                "subject": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "ChatMessageRequest": {
            "type": "object",
            "required": ["userId", "message"],
            "properties": {
                "userId": {"type": "integer"},
                "message": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "ChatExchange": {
            "type": "object",
            "properties": {
                "userMessage": {"$ref": "#/definitions/ChatMessage"},
                "aiMessage": {"$ref": "#/definitions/ChatMessage"}
            }
        },
        "Assessment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "subject": {"type": "string"},
                "grade": {"type": "string"},
                "duration": {"type": "integer"},
                "difficulty": {"type": "string", "enum": ["easy", "medium", "hard", "mixed"]},
                "totalQuestions": {"type": "integer"},
                "questionTypes": {"type": "array", "items": {"type": "string"}},
                "questions": {"type": "array", "items": {"type": "object"}},
                "createdBy": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "StudentAssessment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "studentId": {"type": "integer"},
                "assessmentId": {"type": "integer"},
                "answers": {"type": "object"},
                "score": {"type": "integer"},
                "maxScore": {"type": "integer"},
                "startedAt": {"type": "string", "format": "date-time"},
                "completedAt": {"type": "string", "format": "date-time"}
            }
        },
        "StudentProgress": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "studentId": {"type": "integer"},
                "subject": {"type": "string"},
                "progress": {"type": "integer"},
                "engagementScore": {"type": "integer"},
                "lastActivity": {"type": "string", "format": "date-time"},
                "riskLevel": {"type": "string", "enum": ["low", "medium", "high"]}
            }
        },
        "Intervention": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "studentId": {"type": "integer"},
                "educatorId": {"type": "integer"},
                "type": {"type": "string", "enum": ["tutoring", "pace_adjustment", "engagement"]},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "in_progress", "completed"]}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "code": {"type": "string"}
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
