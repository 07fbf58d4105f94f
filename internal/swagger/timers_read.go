package swagger

import "github.com/antonio-alexander/go-employee-directory/internal/data"

// swagger:route GET /timers Timers ReadTimers
// Reads the total and average duration (in nanoseconds) of each endpoint,
// timers are only recorded when SERVICE_TIMERS_ENABLED is true.
//
//     Produces:
//     - application/json
//
// responses:
//   200: TimersReadResponseOk

// swagger:response TimersReadResponseOk
type TimersReadResponseOk struct {
	// in:body
	Body data.Timers
}

// swagger:parameters ReadTimers
type TimersReadParams struct {
	// in:header
	CorrelationId string `json:"Correlation-Id"`
}
