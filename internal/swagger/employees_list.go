package swagger

import "encoding/json"

// swagger:route GET /employees Employee ListEmployees
// Lists all employees from the upstream directory.
//
//     Produces:
//     - application/json
//
// responses:
//   200: EmployeesListResponseOk
//   500: ErrorResponse

// swagger:response EmployeesListResponseOk
type EmployeesListResponseOk struct {
	// the employees exactly as returned by the upstream directory
	// in:body
	Employees json.RawMessage
}

// swagger:parameters ListEmployees
type EmployeesListParams struct {
	// in:header
	CorrelationId string `json:"Correlation-Id"`
}
