// Package docs holds the OpenAPI document served at /swagger. Regenerate
// with `swag init -g cmd/server/main.go`.
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
		"/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Service banner",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.HealthResponse"
						}
					}
				}
			}
		},
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Service health",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.HealthResponse"
						}
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Register a new user",
				"parameters": [
					{
						"description": "Registration data",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.RegisterRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Exchange credentials for an access token",
				"parameters": [
					{
						"description": "Login credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.TokenResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/me": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/assessments": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"assessments"
				],
				"summary": "List the caller's assessments, oldest first",
				"parameters": [
					{
						"type": "integer",
						"default": 0,
						"description": "Records to skip",
						"name": "skip",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 10,
						"description": "Page size (max 100)",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.HistoryResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"assessments"
				],
				"summary": "Score a clinical input and record the assessment",
				"parameters": [
					{
						"description": "Clinical input",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.AssessmentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.AssessmentResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"errors.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"handler.AssessmentRequest": {
			"type": "object",
			"required": [
				"age",
				"amh",
				"avg_f_size_l",
				"avg_f_size_r",
				"blood_group",
				"bmi",
				"bp_diastolic",
				"bp_systolic",
				"cycle",
				"cycle_length",
				"endometrium",
				"fast_food",
				"follicle_no_l",
				"follicle_no_r",
				"fsh",
				"fsh_lh",
				"hair_growth",
				"hair_loss",
				"hb",
				"height",
				"hip",
				"i_beta_hcg_1",
				"i_beta_hcg_2",
				"lh",
				"marriage_status",
				"no_of_abortions",
				"pimples",
				"pregnant",
				"prg",
				"prl",
				"pulse_rate",
				"rbs",
				"reg_exercise",
				"rr",
				"skin_darkening",
				"tsh",
				"vit_d3",
				"waist",
				"waist_hip_ratio",
				"weight",
				"weight_gain"
			],
			"properties": {
				"age": {
					"type": "number"
				},
				"amh": {
					"type": "number"
				},
				"avg_f_size_l": {
					"type": "number"
				},
				"avg_f_size_r": {
					"type": "number"
				},
				"blood_group": {
					"type": "string"
				},
				"bmi": {
					"type": "number"
				},
				"bp_diastolic": {
					"type": "number"
				},
				"bp_systolic": {
					"type": "number"
				},
				"cycle": {
					"type": "string"
				},
				"cycle_length": {
					"type": "number"
				},
				"endometrium": {
					"type": "number"
				},
				"fast_food": {
					"type": "string"
				},
				"follicle_no_l": {
					"type": "number"
				},
				"follicle_no_r": {
					"type": "number"
				},
				"fsh": {
					"type": "number"
				},
				"fsh_lh": {
					"type": "number"
				},
				"hair_growth": {
					"type": "string"
				},
				"hair_loss": {
					"type": "string"
				},
				"hb": {
					"type": "number"
				},
				"height": {
					"type": "number"
				},
				"hip": {
					"type": "number"
				},
				"i_beta_hcg_1": {
					"type": "number"
				},
				"i_beta_hcg_2": {
					"type": "number"
				},
				"lh": {
					"type": "number"
				},
				"marriage_status": {
					"type": "string"
				},
				"no_of_abortions": {
					"type": "number"
				},
				"pimples": {
					"type": "string"
				},
				"pregnant": {
					"type": "string"
				},
				"prg": {
					"type": "number"
				},
				"prl": {
					"type": "number"
				},
				"pulse_rate": {
					"type": "number"
				},
				"rbs": {
					"type": "number"
				},
				"reg_exercise": {
					"type": "string"
				},
				"rr": {
					"type": "number"
				},
				"skin_darkening": {
					"type": "string"
				},
				"tsh": {
					"type": "number"
				},
				"vit_d3": {
					"type": "number"
				},
				"waist": {
					"type": "number"
				},
				"waist_hip_ratio": {
					"type": "number"
				},
				"weight": {
					"type": "number"
				},
				"weight_gain": {
					"type": "string"
				}
			}
		},
		"handler.HealthResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"model_loaded": {
					"type": "boolean"
				},
				"scaler_loaded": {
					"type": "boolean"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"handler.HistoryResponse": {
			"type": "object",
			"properties": {
				"assessments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/service.AssessmentResult"
					}
				},
				"total_count": {
					"type": "integer"
				}
			}
		},
		"handler.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"handler.RegisterRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"maxLength": 72
				}
			}
		},
		"handler.TokenResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				}
			}
		},
		"model.RiskLevel": {
			"type": "string",
			"enum": [
				"Low",
				"Moderate",
				"High"
			],
			"x-enum-varnames": [
				"RiskLevelLow",
				"RiskLevelModerate",
				"RiskLevelHigh"
			]
		},
		"model.User": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"service.AssessmentResult": {
			"type": "object",
			"properties": {
				"confidence": {
					"type": "number"
				},
				"created_at": {
					"type": "string"
				},
				"feature_importance": {
					"type": "object",
					"additionalProperties": {
						"type": "number"
					}
				},
				"id": {
					"type": "integer"
				},
				"recommendations": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"risk_level": {
					"$ref": "#/definitions/model.RiskLevel"
				},
				"risk_score": {
					"type": "number"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "PCOS Prediction API with Authentication",
	Description:      "Scores PCOS risk from clinical inputs and keeps a per-user assessment history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
