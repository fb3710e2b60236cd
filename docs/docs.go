// Package docs registra en swag el documento OpenAPI de la API; cmd/api lo sirve en /docs.
// Se mantiene a mano junto a las anotaciones godoc de los handlers.
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
    "definitions": {
        "dto.AddProductResponse": {
            "properties": {
                "message": {
                    "type": "string"
                },
                "projection": {
                    "$ref": "#/definitions/dto.ProjectionResponse"
                }
            },
            "type": "object"
        },
        "dto.DeleteProductResponse": {
            "properties": {
                "flatDeleted": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                },
                "warehousesModified": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.ErrorResponse": {
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.MessageResponse": {
            "properties": {
                "message": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ProductEntryRequest": {
            "properties": {
                "productID": {
                    "type": "string"
                },
                "productName": {
                    "type": "string"
                },
                "productQuantity": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "dto.ProjectionResponse": {
            "properties": {
                "entries": {
                    "type": "integer"
                },
                "pruned": {
                    "type": "integer"
                },
                "runID": {
                    "type": "string"
                },
                "upserted": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.SeedResponse": {
            "properties": {
                "message": {
                    "type": "string"
                },
                "projection": {
                    "$ref": "#/definitions/dto.ProjectionResponse"
                },
                "warehouses": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "entity.Product": {
            "properties": {
                "_id": {
                    "type": "string"
                },
                "productID": {
                    "type": "string"
                },
                "productName": {
                    "type": "string"
                },
                "productQuantity": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "entity.ProductEntry": {
            "properties": {
                "productID": {
                    "type": "string"
                },
                "productName": {
                    "type": "string"
                },
                "productQuantity": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "entity.Warehouse": {
            "additionalProperties": true,
            "properties": {
                "_id": {
                    "type": "string"
                },
                "warehouseData": {
                    "items": {
                        "$ref": "#/definitions/entity.WarehouseData"
                    },
                    "type": "array"
                },
                "warehouseID": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "entity.WarehouseData": {
            "additionalProperties": true,
            "properties": {
                "productData": {
                    "items": {
                        "$ref": "#/definitions/entity.ProductEntry"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Estado del servicio",
                "tags": [
                    "health"
                ]
            }
        },
        "/insert": {
            "get": {
                "description": "Inserta las bodegas del archivo configurado y reproyecta los productos. Si alguna ya existe responde 409.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SeedResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Cargar datos iniciales",
                "tags": [
                    "seed"
                ]
            }
        },
        "/product": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/entity.Product"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Listar productos",
                "tags": [
                    "product"
                ]
            }
        },
        "/product/{id}": {
            "delete": {
                "description": "Borra el registro plano y quita las entradas anidadas de todas las bodegas.",
                "parameters": [
                    {
                        "description": "productID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DeleteProductResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Eliminar producto",
                "tags": [
                    "product"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "productID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/entity.Product"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Obtener producto por productID",
                "tags": [
                    "product"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "El id de la ruta es el warehouseID. La entrada va al primer bloque de datos y luego se reproyecta la colección plana.",
                "parameters": [
                    {
                        "description": "warehouseID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Entrada de producto",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ProductEntryRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.AddProductResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Agregar producto a una bodega",
                "tags": [
                    "product"
                ]
            }
        },
        "/warehouse": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/entity.Warehouse"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Listar bodegas",
                "tags": [
                    "warehouse"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "El documento se guarda completo, incluidos los campos adicionales.",
                "parameters": [
                    {
                        "description": "Documento de la bodega",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/entity.Warehouse"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Crear bodega",
                "tags": [
                    "warehouse"
                ]
            }
        },
        "/warehouse/{id}": {
            "delete": {
                "description": "No reproyecta la colección de productos.",
                "parameters": [
                    {
                        "description": "warehouseID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Eliminar bodega",
                "tags": [
                    "warehouse"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "warehouseID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/entity.Warehouse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Obtener bodega por warehouseID",
                "tags": [
                    "warehouse"
                ]
            }
        }
    }
}`

// SwaggerInfo metadatos del documento; se pueden ajustar antes de servirlo.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bodega Sync API",
	Description:      "Bodegas con productos anidados y colección plana de productos derivada por proyección.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
