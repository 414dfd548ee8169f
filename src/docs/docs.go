// Package docs holds the OpenAPI document served under /swagger. Keep it in step with the handler annotations.
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
		"/api/auth/me/": {
			"get": {
				"tags": [
					"Auth"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/serializer.UserDTO"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/auth/me/qr/": {
			"get": {
				"tags": [
					"Auth"
				],
				"summary": "Identifier QR code",
				"produces": [
					"image/png"
				],
				"responses": {
					"200": {
						"description": "PNG image"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "size",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/auth/update-status/": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Update online status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"is_online"
							],
							"properties": {
								"is_online": {
									"type": "boolean"
								}
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/contacts/": {
			"get": {
				"tags": [
					"Contacts"
				],
				"summary": "Confirmed contacts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/serializer.ContactDTO"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"Contacts"
				],
				"summary": "Send a contact request",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/serializer.ContactDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"identifier"
							],
							"properties": {
								"identifier": {
									"type": "string"
								}
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/contacts/incoming-requests/": {
			"get": {
				"tags": [
					"Contacts"
				],
				"summary": "Pending requests sent to the caller",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/serializer.ContactDTO"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/contacts/outgoing-requests/": {
			"get": {
				"tags": [
					"Contacts"
				],
				"summary": "Pending requests sent by the caller",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/serializer.ContactDTO"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/contacts/{id}/": {
			"get": {
				"tags": [
					"Contacts"
				],
				"summary": "Confirmed contact by id",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/serializer.ContactDTO"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/contacts/{id}/accept/": {
			"post": {
				"tags": [
					"Contacts"
				],
				"summary": "Accept an incoming request",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/serializer.ContactDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/contacts/{id}/cancel/": {
			"post": {
				"tags": [
					"Contacts"
				],
				"summary": "Cancel an outgoing request",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/favorites/": {
			"get": {
				"tags": [
					"Favorites"
				],
				"summary": "Favorites of the caller",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/serializer.FavoriteDTO"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"Favorites"
				],
				"summary": "Add a user to favorites",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/serializer.FavoriteDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"contact_id"
							],
							"properties": {
								"contact_id": {
									"type": "integer"
								}
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/favorites/{id}/": {
			"get": {
				"tags": [
					"Favorites"
				],
				"summary": "Favorite by id",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/serializer.FavoriteDTO"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"Favorites"
				],
				"summary": "Remove a favorite",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/location/update/": {
			"post": {
				"tags": [
					"Location"
				],
				"summary": "Report current coordinates",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"latitude",
								"longitude"
							],
							"properties": {
								"latitude": {
									"type": "number"
								},
								"longitude": {
									"type": "number"
								}
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/location/me/": {
			"get": {
				"tags": [
					"Location"
				],
				"summary": "Own location",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/serializer.LocationDTO"
						}
					},
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"Location"
				],
				"summary": "Create or overwrite own location",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/serializer.LocationDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"latitude",
								"longitude"
							],
							"properties": {
								"latitude": {
									"type": "number"
								},
								"longitude": {
									"type": "number"
								}
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/sos/": {
			"get": {
				"tags": [
					"SOS"
				],
				"summary": "Own SOS signals, newest first",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/serializer.SosSignalDTO"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"SOS"
				],
				"summary": "Raise an SOS signal",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/serializer.SosSignalDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"latitude",
								"longitude"
							],
							"properties": {
								"latitude": {
									"type": "number"
								},
								"longitude": {
									"type": "number"
								},
								"is_active": {
									"type": "boolean"
								}
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/sos/{id}/": {
			"get": {
				"tags": [
					"SOS"
				],
				"summary": "Own SOS signal by id",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/serializer.SosSignalDTO"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"SOS"
				],
				"summary": "Activate or deactivate an own SOS signal",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/serializer.SosSignalDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"is_active"
							],
							"properties": {
								"is_active": {
									"type": "boolean"
								}
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/keywords/": {
			"get": {
				"tags": [
					"Keywords"
				],
				"summary": "Own trigger keywords",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/serializer.KeywordDTO"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"Keywords"
				],
				"summary": "Add a trigger keyword",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/serializer.KeywordDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"word"
							],
							"properties": {
								"word": {
									"type": "string"
								}
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/keywords/{id}/": {
			"get": {
				"tags": [
					"Keywords"
				],
				"summary": "Keyword by id",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/serializer.KeywordDTO"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"Keywords"
				],
				"summary": "Replace a keyword",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/serializer.KeywordDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"word"
							],
							"properties": {
								"word": {
									"type": "string"
								}
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"Keywords"
				],
				"summary": "Delete a keyword",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/internal/users/": {
			"post": {
				"tags": [
					"Internal"
				],
				"summary": "Provision a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/serializer.UserDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"required": [
								"email",
								"phone_number"
							],
							"properties": {
								"email": {
									"type": "string"
								},
								"phone_number": {
									"type": "string"
								},
								"first_name": {
									"type": "string"
								},
								"last_name": {
									"type": "string"
								},
								"username": {
									"type": "string"
								},
								"role": {
									"type": "string",
									"enum": [
										"user",
										"parent",
										"child",
										"admin"
									]
								}
							}
						}
					}
				]
			}
		},
		"/internal/users/{id}/": {
			"delete": {
				"tags": [
					"Internal"
				],
				"summary": "Delete a user and everything it owns",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		}
	},
	"definitions": {
		"serializer.LocationSummaryDTO": {
			"type": "object",
			"properties": {
				"latitude": {
					"type": "number"
				},
				"longitude": {
					"type": "number"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"serializer.UserDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"phone_number": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"avatar": {
					"type": "string"
				},
				"identifier": {
					"type": "string"
				},
				"is_online": {
					"type": "boolean"
				},
				"last_seen": {
					"type": "string",
					"format": "date-time"
				},
				"last_seen_display": {
					"type": "string"
				},
				"location": {
					"$ref": "#/definitions/serializer.LocationSummaryDTO"
				}
			}
		},
		"serializer.LocationDTO": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/serializer.UserDTO"
				},
				"latitude": {
					"type": "number"
				},
				"longitude": {
					"type": "number"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"serializer.ContactDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"from_user": {
					"$ref": "#/definitions/serializer.UserDTO"
				},
				"to_user": {
					"$ref": "#/definitions/serializer.UserDTO"
				},
				"is_accepted": {
					"type": "boolean"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"is_favorite": {
					"type": "boolean"
				}
			}
		},
		"serializer.FavoriteDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"contact": {
					"$ref": "#/definitions/serializer.UserDTO"
				},
				"location": {
					"$ref": "#/definitions/serializer.LocationDTO"
				},
				"is_favorite": {
					"type": "boolean"
				}
			}
		},
		"serializer.SosSignalDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"sender": {
					"$ref": "#/definitions/serializer.UserDTO"
				},
				"latitude": {
					"type": "number"
				},
				"longitude": {
					"type": "number"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"serializer.KeywordDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"word": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
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
	Schemes:          []string{},
	Title:            "SOS Contacts API",
	Description:      "Contacts, favorites, presence and SOS signals for the personal-safety app",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
