package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	"github.com/allisson/authgate/internal/route"
)

// APIOperations declares the operations served under /v1, before token injection.
//
// /v1/routes is public and declares its own optional token so the injection step leaves it alone.
func APIOperations() []route.Operation {
	return []route.Operation{
		{
			Method:  http.MethodGet,
			Path:    "/v1/me",
			Summary: "Return the authenticated caller",
		},
		{
			Method:  http.MethodGet,
			Path:    "/v1/routes",
			Summary: "List the API operations and their parameters",
			Params: []route.Param{
				{
					Name:        authDomain.TokenParam,
					Type:        route.TypeString,
					Description: "Authentication token (optional)",
					Required:    false,
				},
			},
		},
	}
}

// Operations returns the API operations with the authentication token declared on each.
func Operations() []route.Operation {
	return route.WithAuthToken(APIOperations())
}

// OperationDescription is one operation together with the JSON Schema of its parameters.
type OperationDescription struct {
	route.Operation
	Schema *jsonschema.Schema `json:"schema"`
}

// DescribeOperations pairs each operation with its parameter schema, keeping the input order.
func DescribeOperations(ops []route.Operation) []OperationDescription {
	descriptions := make([]OperationDescription, 0, len(ops))
	for _, op := range ops {
		descriptions = append(descriptions, OperationDescription{Operation: op, Schema: route.Schema(op)})
	}
	return descriptions
}

// routesHandler lists the API operations.
// GET /v1/routes
func routesHandler(ops []route.Operation) gin.HandlerFunc {
	body := DescribeOperations(ops)

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": body})
	}
}
