package logic

import (
	"context"
	"regexp"

	"github.com/antonio-alexander/go-employee-directory/internal"
	"github.com/antonio-alexander/go-employee-directory/internal/data"
	"github.com/antonio-alexander/go-employee-directory/internal/upstream"
	"github.com/antonio-alexander/go-employee-directory/internal/utilities"
)

var employeeIdPattern = regexp.MustCompile(`^\d+$`)

type Logic interface {
	EmployeesList(ctx context.Context) data.Result
	EmployeeRead(ctx context.Context, id string) data.Result
}

type logic struct {
	upstream.Upstream
	utilities.Logger
}

func NewLogic(parameters ...any) interface {
	internal.Configurer
	internal.Opener
	Logic
} {
	l := &logic{}
	for _, parameter := range parameters {
		switch p := parameter.(type) {
		case upstream.Upstream:
			l.Upstream = p
		case utilities.Logger:
			l.Logger = p
		}
	}
	if l.Logger == nil {
		l.Logger = utilities.NewLogger()
	}
	return l
}

// ValidEmployeeId returns true if the id is made up of one
// or more ascii digits and nothing else
func ValidEmployeeId(id string) bool {
	return employeeIdPattern.MatchString(id)
}

func (l *logic) Configure(envs map[string]string) error {
	return nil
}

func (l *logic) Open(ctx context.Context) error {
	if l.Upstream == nil {
		return ErrUpstreamNotProvided
	}
	return nil
}

func (l *logic) Close(ctx context.Context) error {
	return nil
}

func (l *logic) fetch(ctx context.Context, notFoundMessage string, fx func() ([]byte, error)) data.Result {
	bytes, err := fx()
	if err != nil {
		l.Error(ctx, "error fetching employee data: %s", err)
		return data.Err(data.KindUpstreamFailure, data.MessageFetchFailed)
	}
	if data.IsEmpty(bytes) {
		l.Error(ctx, "error fetching employee data: %s", notFoundMessage)
		return data.Err(data.KindNotFound, notFoundMessage)
	}
	return data.Ok(bytes)
}

func (l *logic) EmployeesList(ctx context.Context) data.Result {
	return l.fetch(ctx, data.MessageEmployeesNotFound, func() ([]byte, error) {
		return l.UsersRead(ctx)
	})
}

func (l *logic) EmployeeRead(ctx context.Context, id string) data.Result {
	if !ValidEmployeeId(id) {
		return data.Err(data.KindInvalidInput, data.MessageInvalidEmployeeId)
	}
	return l.fetch(ctx, data.MessageEmployeeNotFound, func() ([]byte, error) {
		return l.UserRead(ctx, id)
	})
}
