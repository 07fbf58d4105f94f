package data

const (
	RouteEmployees    string = "/employees"
	RouteEmployeesId  string = RouteEmployees + "/{" + PathId + "}"
	RouteEmployeesIdf string = RouteEmployees + "/%s"
	RouteTimers       string = "/timers"
)

const (
	RouteUpstreamUsers    string = "/users"
	RouteUpstreamUsersIdf string = RouteUpstreamUsers + "/%s"
)

const PathId string = "id"

const (
	MessageInvalidEmployeeId string = "Invalid employee ID"
	MessageFetchFailed       string = "Failed to fetch employee data"
	MessageEmployeesNotFound string = "No employee data found"
	MessageEmployeeNotFound  string = "No employee found"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type Timers struct {
	Totals   map[string]int64 `json:"totals,omitempty"`
	Averages map[string]int64 `json:"averages,omitempty"`
}
