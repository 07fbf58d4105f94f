// Package Swagger go-employee-directory
//
// An API that relays employees from a remote user directory.
//
//	Schemes: http, https
//	Version: 1.0
//	Host: localhost:8080
//	BasePath:/
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package swagger
