package swagger

// swagger:route DELETE /timers Timers DeleteTimers
// Clears all request timers.
//
// responses:
//   204: TimersDeleteResponseNoContent

// swagger:response TimersDeleteResponseNoContent
type TimersDeleteResponseNoContent struct{}

// swagger:parameters DeleteTimers
type TimersDeleteParams struct {
	// in:header
	CorrelationId string `json:"Correlation-Id"`
}
