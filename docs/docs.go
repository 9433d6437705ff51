// Package docs provides the generated Swagger/OpenAPI documentation.
// Code generated by swag init; edits belong in the handler annotations.
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Token pair and user"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a client account",
                "responses": {
                    "201": {"description": "Created account"},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Refresh tokens",
                "responses": {
                    "200": {"description": "New token pair"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {"200": {"description": "Profile"}}
            }
        },
        "/invoices": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "List invoices",
                "responses": {"200": {"description": "List of invoices"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "Create an invoice",
                "responses": {
                    "201": {"description": "Invoice created"},
                    "404": {"description": "Project not found"}
                }
            }
        },
        "/invoices/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "Invoice summary",
                "responses": {"200": {"description": "Summary"}}
            }
        },
        "/invoices/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "Export invoices as XLSX",
                "responses": {"200": {"description": "XLSX workbook"}}
            }
        },
        "/invoices/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "Get invoice by ID",
                "responses": {
                    "200": {"description": "Invoice details"},
                    "404": {"description": "Invoice not found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "Delete an invoice",
                "responses": {"200": {"description": "Invoice deleted"}}
            }
        },
        "/invoices/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "Update invoice status",
                "responses": {
                    "200": {"description": "Updated invoice"},
                    "400": {"description": "Invalid status"}
                }
            }
        },
        "/invoices/{id}/report-payment": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "Report a payment",
                "responses": {
                    "200": {"description": "Payment reported"},
                    "400": {"description": "Invoice not in a reportable status"},
                    "403": {"description": "Not the invoice owner"}
                }
            }
        },
        "/notifications": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["notifications"],
                "summary": "List notifications",
                "responses": {"200": {"description": "Notifications"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["notifications"],
                "summary": "Send a notification",
                "responses": {
                    "201": {"description": "Created count"},
                    "400": {"description": "Invalid recipients"}
                }
            }
        },
        "/notifications/broadcast": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["notifications"],
                "summary": "Broadcast a notification",
                "responses": {"201": {"description": "Created count"}}
            }
        },
        "/notifications/callback": {
            "post": {
                "tags": ["notifications"],
                "summary": "Request a callback",
                "responses": {
                    "201": {"description": "Created count"},
                    "400": {"description": "No active admin accounts"}
                }
            }
        },
        "/notifications/unread-count": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["notifications"],
                "summary": "Unread notification count",
                "responses": {"200": {"description": "Unread count"}}
            }
        },
        "/notifications/read-all": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["notifications"],
                "summary": "Mark all notifications read",
                "responses": {"200": {"description": "All marked read"}}
            }
        },
        "/notifications/{id}/read": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["notifications"],
                "summary": "Mark a notification read",
                "responses": {
                    "200": {"description": "Marked read"},
                    "403": {"description": "Not the recipient"}
                }
            }
        },
        "/notifications/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["notifications"],
                "summary": "Delete a notification",
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/messages": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["messages"],
                "summary": "List messages",
                "responses": {"200": {"description": "Messages"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["messages"],
                "summary": "Send a message",
                "responses": {"201": {"description": "Message sent"}}
            }
        },
        "/messages/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["messages"],
                "summary": "Get message by ID",
                "responses": {
                    "200": {"description": "Message"},
                    "403": {"description": "Not a participant"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["messages"],
                "summary": "Delete a message",
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/messages/{id}/reply": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["messages"],
                "summary": "Reply to a message",
                "responses": {"201": {"description": "Reply sent"}}
            }
        },
        "/messages/{id}/read": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["messages"],
                "summary": "Mark a message read",
                "responses": {"200": {"description": "Marked read"}}
            }
        },
        "/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["projects"],
                "summary": "List projects",
                "responses": {"200": {"description": "Projects"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["projects"],
                "summary": "Create a project",
                "responses": {"201": {"description": "Project created"}}
            }
        },
        "/projects/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["projects"],
                "summary": "Get project by ID",
                "responses": {"200": {"description": "Project details"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["projects"],
                "summary": "Update a project",
                "responses": {"200": {"description": "Updated project"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["projects"],
                "summary": "Delete a project",
                "responses": {"200": {"description": "Project deleted"}}
            }
        },
        "/contact": {
            "post": {
                "tags": ["contact"],
                "summary": "Submit a contact request",
                "responses": {
                    "201": {"description": "Request stored"},
                    "429": {"description": "Rate limit exceeded"}
                }
            }
        },
        "/contacts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["contact"],
                "summary": "List contact requests",
                "responses": {"200": {"description": "Contact requests"}}
            }
        },
        "/contacts/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["contact"],
                "summary": "Update contact status",
                "responses": {"200": {"description": "Status updated"}}
            }
        },
        "/contacts/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["contact"],
                "summary": "Delete a contact request",
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/feedback": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["feedback"],
                "summary": "List feedback",
                "responses": {"200": {"description": "Feedback entries"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["feedback"],
                "summary": "Submit feedback",
                "responses": {"201": {"description": "Feedback stored"}}
            }
        },
        "/feedback/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["feedback"],
                "summary": "Moderate feedback",
                "responses": {"200": {"description": "Updated feedback"}}
            }
        },
        "/feedback/testimonials": {
            "get": {
                "tags": ["feedback"],
                "summary": "Public testimonials",
                "responses": {"200": {"description": "Testimonials"}}
            }
        },
        "/push/subscribe": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["push"],
                "summary": "Register a push subscription",
                "responses": {
                    "201": {"description": "Subscription stored"},
                    "503": {"description": "Push not configured"}
                }
            }
        },
        "/push/unsubscribe": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["push"],
                "summary": "Remove a push subscription",
                "responses": {"200": {"description": "Subscription removed"}}
            }
        },
        "/push/vapid-public-key": {
            "get": {
                "tags": ["push"],
                "summary": "VAPID public key",
                "responses": {"200": {"description": "Public key"}}
            }
        },
        "/uploads": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["uploads"],
                "summary": "Upload an attachment",
                "responses": {
                    "201": {"description": "Attachment stored"},
                    "413": {"description": "File too large"}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "List users",
                "responses": {"200": {"description": "Users"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Create a user",
                "responses": {"201": {"description": "User created"}}
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Get user by ID",
                "responses": {"200": {"description": "User"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Update a user",
                "responses": {"200": {"description": "Updated user"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Deactivate a user",
                "responses": {"200": {"description": "User deactivated"}}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "AgencyHub API",
	Description:      "Agency management backend: invoices, notifications, messaging, projects, and client accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
