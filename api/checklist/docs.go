// Package checklist holds the Swagger specification for the FleetCheck API.
// Regenerate with: swag init -g internal/checklist/http/router.go -o api/checklist
package checklist

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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["fleet"],
                "summary": "Form bootstrap",
                "description": "Returns the van roster and current actor for the checklist form.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/fleetsdk.FormBootstrapResponse"}
                    },
                    "303": {"description": "redirect to sign-in"}
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/fleetsdk.CredentialsRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/fleetsdk.SessionResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    }
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "204": {"description": "session cleared"}
                }
            }
        },
        "/v1/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {
                        "description": "New account",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/fleetsdk.SignupRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/fleetsdk.SessionResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    }
                }
            }
        },
        "/v1/entries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "List recent entries",
                "description": "Returns up to 300 of the most recent checklist entries. Admin only.",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Maximum entries to return (capped at 300)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/fleetsdk.EntryRecord"}
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Submit a checklist entry",
                "parameters": [
                    {
                        "description": "Checklist payload",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/fleetsdk.SubmitResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    }
                }
            }
        },
        "/v1/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/fleetsdk.SessionResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    }
                }
            }
        },
        "/v1/vans": {
            "get": {
                "produces": ["application/json"],
                "tags": ["fleet"],
                "summary": "Van roster",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/fleetsdk.VansResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/fleetsdk.APIError"}
                    }
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/fleetsdk.HealthResponse"}
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/fleetsdk.HealthResponse"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/fleetsdk.HealthResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "fleetsdk.APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "ok": {"type": "boolean"}
            }
        },
        "fleetsdk.ActorInfo": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "name": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "fleetsdk.CredentialsRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "fleetsdk.SignupRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "fleetsdk.SessionResponse": {
            "type": "object",
            "properties": {
                "actor": {"$ref": "#/definitions/fleetsdk.ActorInfo"},
                "ok": {"type": "boolean"},
                "token": {"type": "string"}
            }
        },
        "fleetsdk.SubmitResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "ok": {"type": "boolean"}
            }
        },
        "fleetsdk.VansResponse": {
            "type": "object",
            "properties": {
                "vans": {"type": "array", "items": {"type": "string"}}
            }
        },
        "fleetsdk.FormBootstrapResponse": {
            "type": "object",
            "properties": {
                "actor": {"$ref": "#/definitions/fleetsdk.ActorInfo"},
                "vans": {"type": "array", "items": {"type": "string"}}
            }
        },
        "fleetsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"$ref": "#/definitions/fleetsdk.HealthChecks"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "fleetsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"}
            }
        },
        "fleetsdk.EntryRecord": {
            "type": "object",
            "properties": {
                "backup_camera_ok": {"type": "boolean"},
                "brake_lights_ok": {"type": "boolean"},
                "created_at": {"type": "string"},
                "fire_extinguisher_present": {"type": "boolean"},
                "first_aid_present": {"type": "boolean"},
                "fluids_ok": {"type": "boolean"},
                "fuel_level": {"type": "integer"},
                "horn_ok": {"type": "boolean"},
                "id": {"type": "integer"},
                "interior_clean": {"type": "boolean"},
                "jack_present": {"type": "boolean"},
                "lights_ok": {"type": "boolean"},
                "mechanic": {"type": "string"},
                "notes": {"type": "string"},
                "odometer": {"type": "integer"},
                "registration_present": {"type": "boolean"},
                "seatbelts_ok": {"type": "boolean"},
                "shift": {"type": "string"},
                "spare_tire_present": {"type": "boolean"},
                "tires_ok": {"type": "boolean"},
                "tools_secured": {"type": "boolean"},
                "trash_removed": {"type": "boolean"},
                "turn_signals_ok": {"type": "boolean"},
                "van_id": {"type": "string"},
                "wiper_fluid_ok": {"type": "boolean"},
                "windshield_clean": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "FleetCheck API",
	Description:      "Fleet vehicle pre/post-shift checklist tracker.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
