// Package docs registers the OpenAPI document served under /swagger.
// Regenerate it from the handler annotations with:
//
//	go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -o docs
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
        "/v1/amenities": {
            "get": {
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by category",
                        "in": "query",
                        "name": "category",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_amenity_model_dto_GetAmenitiesResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get all amenities",
                "tags": [
                    "Amenity"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Create Amenity Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.CreateAmenityRequest"
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_amenity_model_dto_AmenityResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Name already taken",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create an amenity",
                "tags": [
                    "Amenity"
                ]
            }
        },
        "/v1/amenities/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Amenity ID",
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
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete an amenity",
                "tags": [
                    "Amenity"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Amenity ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_amenity_model_dto_AmenityResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get an amenity by ID",
                "tags": [
                    "Amenity"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Amenity ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Update Amenity Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.UpdateAmenityRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update an amenity",
                "tags": [
                    "Amenity"
                ]
            }
        },
        "/v1/bookings": {
            "get": {
                "consumes": [
                    "application/json"
                ],
                "description": "Retrieve bookings with optional filtering and pagination.",
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by room type ID",
                        "in": "query",
                        "name": "room_type_id",
                        "type": "string"
                    },
                    {
                        "description": "Filter by guest ID",
                        "in": "query",
                        "name": "user_id",
                        "type": "string"
                    },
                    {
                        "description": "Filter by status (pending, confirmed, cancelled, completed)",
                        "in": "query",
                        "name": "status",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_booking_model_dto_GetBookingsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get all bookings",
                "tags": [
                    "Booking"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Reserve rooms for a stay. Prices are quoted at creation and kept on the booking.",
                "parameters": [
                    {
                        "description": "Create Booking Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_booking_model_dto.CreateBookingRequest"
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_booking_model_dto_BookingResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Not enough rooms left for the stay",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/v1/bookings/me": {
            "get": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_booking_model_dto_GetBookingsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get my bookings",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/v1/bookings/reference/{reference}": {
            "get": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Booking reference",
                        "in": "path",
                        "name": "reference",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_booking_model_dto_BookingResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a booking by reference",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/v1/bookings/{id}": {
            "get": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Booking ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_booking_model_dto_BookingResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a booking by ID",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/v1/bookings/{id}/cancel": {
            "post": {
                "parameters": [
                    {
                        "description": "Booking ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_booking_model_dto_BookingResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Booking is already cancelled or completed",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Cancel a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/v1/bookings/{id}/complete": {
            "post": {
                "parameters": [
                    {
                        "description": "Booking ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_booking_model_dto_BookingResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Booking is not confirmed or the stay has not ended",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Complete a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/v1/bookings/{id}/confirm": {
            "post": {
                "parameters": [
                    {
                        "description": "Booking ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_booking_model_dto_BookingResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Booking is not pending",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Confirm a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/v1/destinations": {
            "get": {
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by country",
                        "in": "query",
                        "name": "country",
                        "type": "string"
                    },
                    {
                        "description": "Filter by city",
                        "in": "query",
                        "name": "city",
                        "type": "string"
                    },
                    {
                        "description": "Filter featured destinations",
                        "in": "query",
                        "name": "is_featured",
                        "type": "boolean"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_destination_model_dto_GetDestinationsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get all destinations",
                "tags": [
                    "Destination"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Create Destination Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_destination_model_dto.CreateDestinationRequest"
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_destination_model_dto_DestinationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a destination",
                "tags": [
                    "Destination"
                ]
            }
        },
        "/v1/destinations/{id}": {
            "delete": {
                "description": "Removes the destination, its hotels, their room types, bookings, payments, reviews and links in one transaction.",
                "parameters": [
                    {
                        "description": "Destination ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_cascade_model_dto_DeleteResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a destination",
                "tags": [
                    "Destination"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Destination ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_destination_model_dto_DestinationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get a destination by ID",
                "tags": [
                    "Destination"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Destination ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Update Destination Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_destination_model_dto.UpdateDestinationRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a destination",
                "tags": [
                    "Destination"
                ]
            }
        },
        "/v1/hotels": {
            "get": {
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by destination ID",
                        "in": "query",
                        "name": "destination_id",
                        "type": "string"
                    },
                    {
                        "description": "Filter by type (hotel, resort, apartment, guesthouse, hostel)",
                        "in": "query",
                        "name": "hotel_type",
                        "type": "string"
                    },
                    {
                        "description": "Filter by star rating",
                        "in": "query",
                        "name": "star_rating",
                        "type": "integer"
                    },
                    {
                        "description": "Filter by active flag",
                        "in": "query",
                        "name": "is_active",
                        "type": "boolean"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_hotel_model_dto_GetHotelsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get all hotels",
                "tags": [
                    "Hotel"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Check-in and check-out times default to 14:00 and 11:00.",
                "parameters": [
                    {
                        "description": "Create Hotel Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_hotel_model_dto.CreateHotelRequest"
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_hotel_model_dto_HotelResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Destination not found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a hotel",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/v1/hotels/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Hotel ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_cascade_model_dto_DeleteResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a hotel",
                "tags": [
                    "Hotel"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Hotel ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_hotel_model_dto_HotelResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get a hotel by ID",
                "tags": [
                    "Hotel"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Hotel ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Update Hotel Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_hotel_model_dto.UpdateHotelRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a hotel",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/v1/hotels/{id}/amenities": {
            "get": {
                "parameters": [
                    {
                        "description": "Hotel ID",
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
                            "$ref": "#/definitions/response.Data-array_voyage_internal_domains_amenity_model_dto_AmenityResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get hotel amenities",
                "tags": [
                    "Hotel"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Hotel ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Amenity Link Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.LinkRequest"
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
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Amenity already attached",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Attach an amenity to a hotel",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/v1/hotels/{id}/amenities/{amenity_id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Hotel ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Amenity ID",
                        "in": "path",
                        "name": "amenity_id",
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
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Detach an amenity from a hotel",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/v1/hotels/{id}/images": {
            "get": {
                "parameters": [
                    {
                        "description": "Hotel ID",
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
                            "$ref": "#/definitions/response.Data-array_voyage_internal_domains_hotel_model_dto_ImageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get hotel images",
                "tags": [
                    "Hotel"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Hotel ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Add Image Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_hotel_model_dto.AddImageRequest"
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_hotel_model_dto_ImageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Add a hotel image",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/v1/hotels/{id}/rating": {
            "get": {
                "parameters": [
                    {
                        "description": "Hotel ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_review_model_dto_SummaryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get hotel rating",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/v1/payments": {
            "get": {
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by booking ID",
                        "in": "query",
                        "name": "booking_id",
                        "type": "string"
                    },
                    {
                        "description": "Filter by status (pending, completed, failed, refunded)",
                        "in": "query",
                        "name": "status",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_payment_model_dto_GetPaymentsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get all payments",
                "tags": [
                    "Payment"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Create Payment Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_payment_model_dto.CreatePaymentRequest"
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_payment_model_dto_PaymentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Booking already paid or transaction ID reused",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a payment",
                "tags": [
                    "Payment"
                ]
            }
        },
        "/v1/payments/{id}": {
            "get": {
                "parameters": [
                    {
                        "description": "Payment ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_payment_model_dto_PaymentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a payment by ID",
                "tags": [
                    "Payment"
                ]
            }
        },
        "/v1/payments/{id}/complete": {
            "post": {
                "parameters": [
                    {
                        "description": "Payment ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_payment_model_dto_PaymentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Complete a payment",
                "tags": [
                    "Payment"
                ]
            }
        },
        "/v1/payments/{id}/fail": {
            "post": {
                "parameters": [
                    {
                        "description": "Payment ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_payment_model_dto_PaymentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Fail a payment",
                "tags": [
                    "Payment"
                ]
            }
        },
        "/v1/payments/{id}/refund": {
            "post": {
                "parameters": [
                    {
                        "description": "Payment ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_payment_model_dto_PaymentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Refund a payment",
                "tags": [
                    "Payment"
                ]
            }
        },
        "/v1/reviews": {
            "get": {
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by hotel ID",
                        "in": "query",
                        "name": "hotel_id",
                        "type": "string"
                    },
                    {
                        "description": "Filter by author ID",
                        "in": "query",
                        "name": "user_id",
                        "type": "string"
                    },
                    {
                        "description": "Filter by verification",
                        "in": "query",
                        "name": "is_verified",
                        "type": "boolean"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_review_model_dto_GetReviewsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get all reviews",
                "tags": [
                    "Review"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "A review tied to a completed booking of the same guest and hotel is marked verified.",
                "parameters": [
                    {
                        "description": "Create Review Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_review_model_dto.CreateReviewRequest"
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_review_model_dto_ReviewResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Booking already reviewed",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a review",
                "tags": [
                    "Review"
                ]
            }
        },
        "/v1/reviews/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Review ID",
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
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a review",
                "tags": [
                    "Review"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Review ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_review_model_dto_ReviewResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get a review by ID",
                "tags": [
                    "Review"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Review ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Update Review Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_review_model_dto.UpdateReviewRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a review",
                "tags": [
                    "Review"
                ]
            }
        },
        "/v1/reviews/{id}/photos": {
            "get": {
                "parameters": [
                    {
                        "description": "Review ID",
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
                            "$ref": "#/definitions/response.Data-array_voyage_internal_domains_review_model_dto_PhotoResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get photos of a review",
                "tags": [
                    "Review"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Review ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Add Photo Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_review_model_dto.AddPhotoRequest"
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_review_model_dto_PhotoResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Add a photo to a review",
                "tags": [
                    "Review"
                ]
            }
        },
        "/v1/reviews/{id}/votes": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Review ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Vote Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_review_model_dto.VoteRequest"
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
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Already voted",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Vote on a review",
                "tags": [
                    "Review"
                ]
            }
        },
        "/v1/room-types": {
            "get": {
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by hotel ID",
                        "in": "query",
                        "name": "hotel_id",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_roomtype_model_dto_GetRoomTypesResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get all room types",
                "tags": [
                    "RoomType"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Create Room Type Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_roomtype_model_dto.CreateRoomTypeRequest"
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_roomtype_model_dto_RoomTypeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Hotel not found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a room type",
                "tags": [
                    "RoomType"
                ]
            }
        },
        "/v1/room-types/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Room Type ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_cascade_model_dto_DeleteResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a room type",
                "tags": [
                    "RoomType"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Room Type ID",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_roomtype_model_dto_RoomTypeResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get a room type by ID",
                "tags": [
                    "RoomType"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "total_rooms cannot drop below the rooms already reserved on any future night.",
                "parameters": [
                    {
                        "description": "Room Type ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Update Room Type Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_roomtype_model_dto.UpdateRoomTypeRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Rooms already reserved",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a room type",
                "tags": [
                    "RoomType"
                ]
            }
        },
        "/v1/room-types/{id}/amenities": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Room Type ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Amenity Link Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.LinkRequest"
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
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Amenity already attached",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Attach an amenity to a room type",
                "tags": [
                    "RoomType"
                ]
            }
        },
        "/v1/room-types/{id}/amenities/{amenity_id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Room Type ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Amenity ID",
                        "in": "path",
                        "name": "amenity_id",
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
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Detach an amenity from a room type",
                "tags": [
                    "RoomType"
                ]
            }
        },
        "/v1/room-types/{id}/availability": {
            "get": {
                "parameters": [
                    {
                        "description": "Room Type ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Check-in date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "check_in",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Check-out date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "check_out",
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
                            "$ref": "#/definitions/response.Data-voyage_internal_domains_inventory_model_dto_AvailabilityResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Get room availability",
                "tags": [
                    "RoomType"
                ]
            }
        }
    },
    "definitions": {
        "response.Data-array_voyage_internal_domains_amenity_model_dto_AmenityResponse": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.AmenityResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "response.Data-array_voyage_internal_domains_hotel_model_dto_ImageResponse": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_hotel_model_dto.ImageResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "response.Data-array_voyage_internal_domains_review_model_dto_PhotoResponse": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_review_model_dto.PhotoResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_amenity_model_dto_AmenityResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.AmenityResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_amenity_model_dto_GetAmenitiesResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.GetAmenitiesResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_booking_model_dto_BookingResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_booking_model_dto.BookingResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_booking_model_dto_GetBookingsResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_booking_model_dto.GetBookingsResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_cascade_model_dto_DeleteResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_cascade_model_dto.DeleteResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_destination_model_dto_DestinationResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_destination_model_dto.DestinationResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_destination_model_dto_GetDestinationsResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_destination_model_dto.GetDestinationsResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_hotel_model_dto_GetHotelsResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_hotel_model_dto.GetHotelsResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_hotel_model_dto_HotelResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_hotel_model_dto.HotelResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_hotel_model_dto_ImageResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_hotel_model_dto.ImageResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_inventory_model_dto_AvailabilityResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_inventory_model_dto.AvailabilityResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_payment_model_dto_GetPaymentsResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_payment_model_dto.GetPaymentsResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_payment_model_dto_PaymentResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_payment_model_dto.PaymentResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_review_model_dto_GetReviewsResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_review_model_dto.GetReviewsResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_review_model_dto_PhotoResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_review_model_dto.PhotoResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_review_model_dto_ReviewResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_review_model_dto.ReviewResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_review_model_dto_SummaryResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_review_model_dto.SummaryResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_roomtype_model_dto_GetRoomTypesResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_roomtype_model_dto.GetRoomTypesResponse"
                }
            },
            "type": "object"
        },
        "response.Data-voyage_internal_domains_roomtype_model_dto_RoomTypeResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/voyage_internal_domains_roomtype_model_dto.RoomTypeResponse"
                }
            },
            "type": "object"
        },
        "response.Error": {
            "properties": {
                "error": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "response.Message": {
            "properties": {
                "message": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_amenity_model_dto.AmenityResponse": {
            "properties": {
                "category": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_amenity_model_dto.CreateAmenityRequest": {
            "properties": {
                "category": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "category",
                "name"
            ],
            "type": "object"
        },
        "voyage_internal_domains_amenity_model_dto.GetAmenitiesResponse": {
            "properties": {
                "amenities": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.AmenityResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_amenity_model_dto.LinkRequest": {
            "properties": {
                "amenity_id": {
                    "type": "string"
                }
            },
            "required": [
                "amenity_id"
            ],
            "type": "object"
        },
        "voyage_internal_domains_amenity_model_dto.UpdateAmenityRequest": {
            "properties": {
                "category": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_booking_model_dto.BookingResponse": {
            "properties": {
                "booking_reference": {
                    "type": "string"
                },
                "check_in": {
                    "type": "string"
                },
                "check_out": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "guest_email": {
                    "type": "string"
                },
                "guest_first_name": {
                    "type": "string"
                },
                "guest_last_name": {
                    "type": "string"
                },
                "guest_phone": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "num_guests": {
                    "type": "integer"
                },
                "num_nights": {
                    "type": "integer"
                },
                "num_rooms": {
                    "type": "integer"
                },
                "price_per_night": {
                    "type": "string"
                },
                "room_type_id": {
                    "type": "string"
                },
                "special_requests": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "subtotal": {
                    "type": "string"
                },
                "taxes": {
                    "type": "string"
                },
                "total_price": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_booking_model_dto.CreateBookingRequest": {
            "properties": {
                "check_in": {
                    "type": "string"
                },
                "check_out": {
                    "type": "string"
                },
                "guest_email": {
                    "type": "string"
                },
                "guest_first_name": {
                    "type": "string"
                },
                "guest_last_name": {
                    "type": "string"
                },
                "guest_phone": {
                    "type": "string"
                },
                "num_guests": {
                    "type": "integer"
                },
                "num_rooms": {
                    "type": "integer"
                },
                "room_type_id": {
                    "type": "string"
                },
                "special_requests": {
                    "type": "string"
                }
            },
            "required": [
                "check_in",
                "check_out",
                "guest_email",
                "guest_first_name",
                "guest_last_name",
                "num_guests",
                "num_rooms",
                "room_type_id"
            ],
            "type": "object"
        },
        "voyage_internal_domains_booking_model_dto.GetBookingsResponse": {
            "properties": {
                "bookings": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_booking_model_dto.BookingResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_cascade_model_dto.DeleteResponse": {
            "properties": {
                "deleted": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_cascade_model_dto.LevelResponse"
                    },
                    "type": "array"
                },
                "id": {
                    "type": "string"
                },
                "root": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_cascade_model_dto.LevelResponse": {
            "properties": {
                "level": {
                    "type": "string"
                },
                "rows": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_destination_model_dto.CreateDestinationRequest": {
            "properties": {
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "is_featured": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "city",
                "country",
                "name"
            ],
            "type": "object"
        },
        "voyage_internal_domains_destination_model_dto.DestinationResponse": {
            "properties": {
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "is_featured": {
                    "type": "boolean"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_destination_model_dto.GetDestinationsResponse": {
            "properties": {
                "destinations": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_destination_model_dto.DestinationResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_destination_model_dto.UpdateDestinationRequest": {
            "properties": {
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "is_featured": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_hotel_model_dto.AddImageRequest": {
            "properties": {
                "caption": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "is_primary": {
                    "type": "boolean"
                },
                "sort_order": {
                    "type": "integer"
                }
            },
            "required": [
                "image"
            ],
            "type": "object"
        },
        "voyage_internal_domains_hotel_model_dto.CreateHotelRequest": {
            "properties": {
                "address": {
                    "type": "string"
                },
                "cancellation_policy": {
                    "type": "string"
                },
                "check_in_time": {
                    "type": "string"
                },
                "check_out_time": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "destination_id": {
                    "type": "string"
                },
                "hotel_type": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "latitude": {
                    "type": "string"
                },
                "longitude": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "star_rating": {
                    "type": "integer"
                }
            },
            "required": [
                "address",
                "destination_id",
                "hotel_type",
                "name",
                "star_rating"
            ],
            "type": "object"
        },
        "voyage_internal_domains_hotel_model_dto.GetHotelsResponse": {
            "properties": {
                "hotels": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_hotel_model_dto.HotelResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_hotel_model_dto.HotelResponse": {
            "properties": {
                "address": {
                    "type": "string"
                },
                "amenities": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.AmenityResponse"
                    },
                    "type": "array"
                },
                "cancellation_policy": {
                    "type": "string"
                },
                "check_in_time": {
                    "type": "string"
                },
                "check_out_time": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "destination_id": {
                    "type": "string"
                },
                "hotel_type": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "images": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_hotel_model_dto.ImageResponse"
                    },
                    "type": "array"
                },
                "is_active": {
                    "type": "boolean"
                },
                "latitude": {
                    "type": "string"
                },
                "longitude": {
                    "type": "string"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "rating": {
                    "$ref": "#/definitions/voyage_internal_domains_review_model_dto.SummaryResponse"
                },
                "star_rating": {
                    "type": "integer"
                },
                "starting_price": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_hotel_model_dto.ImageResponse": {
            "properties": {
                "caption": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "is_primary": {
                    "type": "boolean"
                },
                "sort_order": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_hotel_model_dto.UpdateHotelRequest": {
            "properties": {
                "address": {
                    "type": "string"
                },
                "cancellation_policy": {
                    "type": "string"
                },
                "check_in_time": {
                    "type": "string"
                },
                "check_out_time": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "hotel_type": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "latitude": {
                    "type": "string"
                },
                "longitude": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "star_rating": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_inventory_model_dto.AvailabilityResponse": {
            "properties": {
                "available_units": {
                    "type": "integer"
                },
                "check_in": {
                    "type": "string"
                },
                "check_out": {
                    "type": "string"
                },
                "nights": {
                    "type": "integer"
                },
                "price_per_night": {
                    "type": "string"
                },
                "room_type_id": {
                    "type": "string"
                },
                "total_rooms": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_payment_model_dto.CreatePaymentRequest": {
            "properties": {
                "booking_id": {
                    "type": "string"
                },
                "card_brand": {
                    "type": "string"
                },
                "card_last4": {
                    "type": "string"
                },
                "payment_method": {
                    "type": "string"
                },
                "transaction_id": {
                    "type": "string"
                }
            },
            "required": [
                "booking_id",
                "payment_method",
                "transaction_id"
            ],
            "type": "object"
        },
        "voyage_internal_domains_payment_model_dto.GetPaymentsResponse": {
            "properties": {
                "payments": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_payment_model_dto.PaymentResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_payment_model_dto.PaymentResponse": {
            "properties": {
                "amount": {
                    "type": "string"
                },
                "booking_id": {
                    "type": "string"
                },
                "card_brand": {
                    "type": "string"
                },
                "card_last4": {
                    "type": "string"
                },
                "completed_at": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "payment_method": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "transaction_id": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_review_model_dto.AddPhotoRequest": {
            "properties": {
                "caption": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                }
            },
            "required": [
                "image"
            ],
            "type": "object"
        },
        "voyage_internal_domains_review_model_dto.CreateReviewRequest": {
            "properties": {
                "booking_id": {
                    "type": "string"
                },
                "cleanliness_rating": {
                    "type": "integer"
                },
                "content": {
                    "type": "string"
                },
                "hotel_id": {
                    "type": "string"
                },
                "location_rating": {
                    "type": "integer"
                },
                "overall_rating": {
                    "type": "integer"
                },
                "service_rating": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "value_rating": {
                    "type": "integer"
                }
            },
            "required": [
                "cleanliness_rating",
                "content",
                "hotel_id",
                "location_rating",
                "overall_rating",
                "service_rating",
                "value_rating"
            ],
            "type": "object"
        },
        "voyage_internal_domains_review_model_dto.GetReviewsResponse": {
            "properties": {
                "reviews": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_review_model_dto.ReviewResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_review_model_dto.PhotoResponse": {
            "properties": {
                "caption": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "review_id": {
                    "type": "string"
                },
                "uploaded_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_review_model_dto.ReviewResponse": {
            "properties": {
                "booking_id": {
                    "type": "string"
                },
                "cleanliness_rating": {
                    "type": "integer"
                },
                "content": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "helpful_count": {
                    "type": "integer"
                },
                "hotel_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "is_verified": {
                    "type": "boolean"
                },
                "location_rating": {
                    "type": "integer"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "not_helpful_count": {
                    "type": "integer"
                },
                "overall_rating": {
                    "type": "integer"
                },
                "service_rating": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                },
                "value_rating": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_review_model_dto.SummaryResponse": {
            "properties": {
                "average_rating": {
                    "type": "number"
                },
                "cleanliness_rating": {
                    "type": "number"
                },
                "hotel_id": {
                    "type": "string"
                },
                "location_rating": {
                    "type": "number"
                },
                "review_count": {
                    "type": "integer"
                },
                "service_rating": {
                    "type": "number"
                },
                "value_rating": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_review_model_dto.UpdateReviewRequest": {
            "properties": {
                "cleanliness_rating": {
                    "type": "integer"
                },
                "content": {
                    "type": "string"
                },
                "location_rating": {
                    "type": "integer"
                },
                "overall_rating": {
                    "type": "integer"
                },
                "service_rating": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "value_rating": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_review_model_dto.VoteRequest": {
            "properties": {
                "vote_type": {
                    "type": "string"
                }
            },
            "required": [
                "vote_type"
            ],
            "type": "object"
        },
        "voyage_internal_domains_roomtype_model_dto.CreateRoomTypeRequest": {
            "properties": {
                "bed_type": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "hotel_id": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "max_occupancy": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "price_per_night": {
                    "type": "string"
                },
                "size_sqm": {
                    "type": "integer"
                },
                "total_rooms": {
                    "type": "integer"
                }
            },
            "required": [
                "hotel_id",
                "max_occupancy",
                "name",
                "price_per_night"
            ],
            "type": "object"
        },
        "voyage_internal_domains_roomtype_model_dto.GetRoomTypesResponse": {
            "properties": {
                "room_types": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_roomtype_model_dto.RoomTypeResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_roomtype_model_dto.RoomTypeResponse": {
            "properties": {
                "amenities": {
                    "items": {
                        "$ref": "#/definitions/voyage_internal_domains_amenity_model_dto.AmenityResponse"
                    },
                    "type": "array"
                },
                "bed_type": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "hotel_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "max_occupancy": {
                    "type": "integer"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price_per_night": {
                    "type": "string"
                },
                "size_sqm": {
                    "type": "integer"
                },
                "total_rooms": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "voyage_internal_domains_roomtype_model_dto.UpdateRoomTypeRequest": {
            "properties": {
                "bed_type": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "max_occupancy": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "price_per_night": {
                    "type": "string"
                },
                "size_sqm": {
                    "type": "integer"
                },
                "total_rooms": {
                    "type": "integer"
                }
            },
            "type": "object"
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
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Voyage API",
	Description:      "Hotel catalogue, room inventory, bookings, payments and reviews.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
