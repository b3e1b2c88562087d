package swagger

import "github.com/swaggo/swag"

// docTemplate is served at /docs. Probes (/health, /ready) and /metrics live
// outside basePath and are not listed.
const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Class Schedule API",
        "description": "Weekly class timetable: lessons, subjects, week copy and exports.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Auth",
            "description": "Sign in and registration"
        },
        {
            "name": "Schedule",
            "description": "Lessons, cancellations, week copy and export"
        },
        {
            "name": "Subjects",
            "description": "Subject catalog"
        },
        {
            "name": "Catalog",
            "description": "Lesson times and rooms"
        },
        {
            "name": "Diagnostics",
            "description": "Demo data and raw dumps"
        }
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Sign in with username and password",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/UserInfo"
                        }
                    },
                    "400": {
                        "description": "Missing fields",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Create an account",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/UserInfo"
                        }
                    },
                    "400": {
                        "description": "Invalid or duplicate",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": [
                    "Subjects"
                ],
                "summary": "List subjects alphabetically",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Subject"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Subjects"
                ],
                "summary": "Create a subject",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateSubjectRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/Subject"
                        }
                    },
                    "400": {
                        "description": "Empty or duplicate name",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/subjects/{id}": {
            "delete": {
                "tags": [
                    "Subjects"
                ],
                "summary": "Delete a subject",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/Subject"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/schedule": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "List lessons joined with slot times",
                "parameters": [
                    {
                        "name": "date",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ScheduleEntry"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Create or overwrite a lesson",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpsertLessonRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Saved",
                        "schema": {
                            "$ref": "#/definitions/Lesson"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/schedule/export": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Download the timetable of a week",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "week",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/schedule/copy": {
            "post": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Copy a week onto other dates in one transaction",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CopyWeekRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Copied",
                        "schema": {
                            "$ref": "#/definitions/CopyWeekResult"
                        }
                    },
                    "400": {
                        "description": "Invalid dates",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Rolled back",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/schedule/{date}/{lessonNumber}": {
            "put": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Update an existing lesson",
                "parameters": [
                    {
                        "name": "date",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "lessonNumber",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 6
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateLessonRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/LessonResult"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Delete a lesson",
                "parameters": [
                    {
                        "name": "date",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "lessonNumber",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 6
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/DeleteLessonResult"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/schedule/{date}/{lessonNumber}/status": {
            "patch": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Cancel or resume a whole lesson",
                "parameters": [
                    {
                        "name": "date",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "lessonNumber",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 6
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/LessonResult"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/schedule/{date}/{lessonNumber}/half/{half}/status": {
            "patch": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Cancel or resume one half of a lesson",
                "parameters": [
                    {
                        "name": "date",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "lessonNumber",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 6
                    },
                    {
                        "name": "half",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "first",
                            "second"
                        ]
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/LessonResult"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/schedule/{date}/{lessonNumber}/half/{half}": {
            "delete": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Clear the subject and room of a half",
                "parameters": [
                    {
                        "name": "date",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "lessonNumber",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 6
                    },
                    {
                        "name": "half",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "first",
                            "second",
                            "both"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Cleared",
                        "schema": {
                            "$ref": "#/definitions/LessonResult"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/test-data": {
            "post": {
                "tags": [
                    "Diagnostics"
                ],
                "summary": "Replace lessons, subjects and rooms with demo data",
                "responses": {
                    "200": {
                        "description": "Seeded",
                        "schema": {
                            "$ref": "#/definitions/MessageResult"
                        }
                    }
                }
            }
        },
        "/lessons": {
            "get": {
                "tags": [
                    "Diagnostics"
                ],
                "summary": "Raw lessons table",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Lesson"
                            }
                        }
                    }
                }
            }
        },
        "/lesson-times": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Lesson slot times",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/LessonTime"
                            }
                        }
                    }
                }
            }
        },
        "/rooms": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Rooms",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Room"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": [
                "username",
                "password"
            ],
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "RegisterRequest": {
            "type": "object",
            "required": [
                "username",
                "password",
                "roleId",
                "fullName"
            ],
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "roleId": {
                    "type": "integer",
                    "enum": [
                        1,
                        2
                    ]
                },
                "fullName": {
                    "type": "string"
                }
            }
        },
        "UserInfo": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "username": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "student",
                        "teacher"
                    ]
                },
                "fullName": {
                    "type": "string"
                }
            }
        },
        "Subject": {
            "type": "object",
            "properties": {
                "subjects_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "Room": {
            "type": "object",
            "properties": {
                "room_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "CreateSubjectRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                }
            }
        },
        "LessonTime": {
            "type": "object",
            "properties": {
                "lesson_times_id": {
                    "type": "integer"
                },
                "lesson_number": {
                    "type": "integer"
                },
                "first_half_start": {
                    "type": "string"
                },
                "first_half_end": {
                    "type": "string"
                },
                "second_half_start": {
                    "type": "string"
                },
                "second_half_end": {
                    "type": "string"
                },
                "break_duration": {
                    "type": "integer"
                }
            }
        },
        "Lesson": {
            "type": "object",
            "properties": {
                "lesson_id": {
                    "type": "integer"
                },
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "lesson_number": {
                    "type": "integer"
                },
                "first_half_subject": {
                    "type": "string",
                    "x-nullable": true
                },
                "second_half_subject": {
                    "type": "string",
                    "x-nullable": true
                },
                "room": {
                    "type": "string",
                    "x-nullable": true
                },
                "is_cancelled": {
                    "type": "boolean"
                },
                "is_cancelled_first_half": {
                    "type": "boolean"
                },
                "is_cancelled_second_half": {
                    "type": "boolean"
                },
                "room_first_half": {
                    "type": "string",
                    "x-nullable": true
                },
                "room_second_half": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "ScheduleEntry": {
            "type": "object",
            "properties": {
                "lesson_id": {
                    "type": "integer"
                },
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "lesson_number": {
                    "type": "integer"
                },
                "first_half_subject": {
                    "type": "string",
                    "x-nullable": true
                },
                "second_half_subject": {
                    "type": "string",
                    "x-nullable": true
                },
                "room": {
                    "type": "string",
                    "x-nullable": true
                },
                "is_cancelled": {
                    "type": "boolean"
                },
                "is_cancelled_first_half": {
                    "type": "boolean"
                },
                "is_cancelled_second_half": {
                    "type": "boolean"
                },
                "room_first_half": {
                    "type": "string",
                    "x-nullable": true
                },
                "room_second_half": {
                    "type": "string",
                    "x-nullable": true
                },
                "first_half_start": {
                    "type": "string",
                    "x-nullable": true
                },
                "first_half_end": {
                    "type": "string",
                    "x-nullable": true
                },
                "second_half_start": {
                    "type": "string",
                    "x-nullable": true
                },
                "second_half_end": {
                    "type": "string",
                    "x-nullable": true
                },
                "break_duration": {
                    "type": "integer",
                    "x-nullable": true
                }
            }
        },
        "UpsertLessonRequest": {
            "type": "object",
            "required": [
                "date",
                "lessonNumber"
            ],
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "lessonNumber": {
                    "type": "integer"
                },
                "firstHalfSubject": {
                    "type": "string",
                    "x-nullable": true
                },
                "secondHalfSubject": {
                    "type": "string",
                    "x-nullable": true
                },
                "roomFirstHalf": {
                    "type": "string",
                    "x-nullable": true
                },
                "roomSecondHalf": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "UpdateLessonRequest": {
            "type": "object",
            "properties": {
                "firstHalfSubject": {
                    "type": "string",
                    "x-nullable": true
                },
                "secondHalfSubject": {
                    "type": "string",
                    "x-nullable": true
                },
                "roomFirstHalf": {
                    "type": "string",
                    "x-nullable": true
                },
                "roomSecondHalf": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "StatusRequest": {
            "type": "object",
            "required": [
                "isCancelled"
            ],
            "properties": {
                "isCancelled": {
                    "type": "boolean"
                }
            }
        },
        "CopyWeekRequest": {
            "type": "object",
            "required": [
                "currentWeekDates",
                "nextWeekDates"
            ],
            "properties": {
                "currentWeekDates": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "date"
                    }
                },
                "nextWeekDates": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "date"
                    }
                }
            }
        },
        "LessonResult": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "lesson": {
                    "$ref": "#/definitions/Lesson"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "DeleteLessonResult": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                },
                "deletedLesson": {
                    "$ref": "#/definitions/Lesson"
                }
            }
        },
        "CopyWeekResult": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                },
                "schedule": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ScheduleEntry"
                    }
                }
            }
        },
        "MessageResult": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "error": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                }
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
