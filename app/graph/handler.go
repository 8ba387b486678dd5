package graph

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/sweetdelights/bakery/pkg/bind"
	"github.com/sweetdelights/bakery/pkg/logger"
	"github.com/sweetdelights/bakery/pkg/response"
)

type queryRequest struct {
	Query         string                 `json:"query" validate:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler returns the POST /api/graphql handler for the given schema.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		if errs, err := bind.JSON(r, &req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		} else if len(errs) > 0 {
			response.ValidationError(w, "Query is required", errs)
			return
		}
		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})
		if len(result.Errors) > 0 {
			logger.WithCtx(r.Context()).Warn("graphql query errors", "errors", result.Errors)
		}
		response.Success(w, result)
	}
}
