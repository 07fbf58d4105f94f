package swagger

import (
	"encoding/json"

	"github.com/antonio-alexander/go-employee-directory/internal/data"
)

// swagger:route GET /employees/{id} Employee ReadEmployee
// Reads an employee from the upstream directory using its id, the id must
// only contain digits.
//
//     Produces:
//     - application/json
//
// responses:
//   200: EmployeeGetResponseOk
//   400: ErrorResponse
//   500: ErrorResponse

// swagger:response EmployeeGetResponseOk
type EmployeeGetResponseOk struct {
	// the employee exactly as returned by the upstream directory
	// in:body
	Employee json.RawMessage
}

// swagger:parameters ReadEmployee
type EmployeeGetParams struct {
	// in:path
	Id string `json:"id"`

	// in:header
	CorrelationId string `json:"Correlation-Id"`
}

// swagger:response ErrorResponse
type ErrorResponse struct {
	// in:body
	Body data.ErrorResponse
}
