package logic_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/antonio-alexander/go-employee-directory/internal"
	"github.com/antonio-alexander/go-employee-directory/internal/data"
	"github.com/antonio-alexander/go-employee-directory/internal/logic"
	"github.com/antonio-alexander/go-employee-directory/internal/utilities"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const (
	users string = `[{"id":1,"name":"Leanne Graham"},{"id":2,"name":"Ervin Howell"}]`
	user  string = `{"id":1,"name":"Leanne Graham"}`
)

type upstreamMock struct {
	sync.Mutex
	body       []byte
	err        error
	usersReads int
	userReads  []string
}

func (u *upstreamMock) UsersRead(ctx context.Context) ([]byte, error) {
	u.Lock()
	defer u.Unlock()

	u.usersReads++
	return u.body, u.err
}

func (u *upstreamMock) UserRead(ctx context.Context, id string) ([]byte, error) {
	u.Lock()
	defer u.Unlock()

	u.userReads = append(u.userReads, id)
	return u.body, u.err
}

type logicTest struct {
	buffer   *bytes.Buffer
	upstream *upstreamMock
	logic    interface {
		internal.Configurer
		internal.Opener
		logic.Logic
	}
}

func newLogicTest(t *testing.T, body []byte, err error) *logicTest {
	buffer := &bytes.Buffer{}
	upstream := &upstreamMock{body: body, err: err}
	l := logic.NewLogic(upstream, utilities.NewLogger(buffer))
	if err := l.Configure(map[string]string{}); err != nil {
		assert.FailNow(t, "unable to configure logic")
	}
	if err := l.Open(context.TODO()); err != nil {
		assert.FailNow(t, "unable to open logic")
	}
	return &logicTest{
		buffer:   buffer,
		upstream: upstream,
		logic:    l,
	}
}

func (l *logicTest) logLines() int {
	return strings.Count(l.buffer.String(), "\n")
}

func TestValidEmployeeId(t *testing.T) {
	for _, id := range []string{"1", "007", "10", "1234567890123456789012345"} {
		assert.True(t, logic.ValidEmployeeId(id), id)
	}
	for _, id := range []string{"", "abc", "12a", "-5", "+5", " 1", "1 ", "1.0", "1\n", "٣"} {
		assert.False(t, logic.ValidEmployeeId(id), id)
	}
}

func TestEmployeesList(t *testing.T) {
	ctx := context.TODO()

	t.Run("Ok", func(t *testing.T) {
		l := newLogicTest(t, []byte(users), nil)
		result := l.logic.EmployeesList(ctx)
		assert.True(t, result.Ok())
		assert.Equal(t, users, string(result.Payload))
		assert.Equal(t, 1, l.upstream.usersReads)
		assert.Zero(t, l.logLines())
	})
	t.Run("Empty Array", func(t *testing.T) {
		l := newLogicTest(t, []byte("[]"), nil)
		result := l.logic.EmployeesList(ctx)
		assert.True(t, result.Ok())
		assert.Equal(t, "[]", string(result.Payload))
	})
	t.Run("Not Found", func(t *testing.T) {
		l := newLogicTest(t, nil, nil)
		result := l.logic.EmployeesList(ctx)
		assert.False(t, result.Ok())
		assert.Equal(t, data.KindNotFound, result.Err.Kind)
		assert.Equal(t, data.MessageEmployeesNotFound, result.Err.Message)
		assert.Equal(t, 1, l.logLines())
	})
	t.Run("Upstream Failure", func(t *testing.T) {
		l := newLogicTest(t, nil, errors.New("connection refused"))
		result := l.logic.EmployeesList(ctx)
		assert.False(t, result.Ok())
		assert.Equal(t, data.KindUpstreamFailure, result.Err.Kind)
		assert.Equal(t, data.MessageFetchFailed, result.Err.Message)
		assert.Equal(t, 1, l.logLines())
		assert.Contains(t, l.buffer.String(), "error fetching employee data: connection refused")
	})
}

func TestEmployeeRead(t *testing.T) {
	ctx := context.TODO()

	t.Run("Invalid Id", func(t *testing.T) {
		l := newLogicTest(t, []byte(user), nil)
		for _, id := range []string{"abc", "12a", "-5", ""} {
			result := l.logic.EmployeeRead(ctx, id)
			assert.False(t, result.Ok())
			assert.Equal(t, data.KindInvalidInput, result.Err.Kind)
			assert.Equal(t, data.MessageInvalidEmployeeId, result.Err.Message)
		}
		assert.Empty(t, l.upstream.userReads)
		assert.Zero(t, l.logLines())
	})
	t.Run("Valid Id", func(t *testing.T) {
		for _, id := range []string{"1", "007"} {
			l := newLogicTest(t, []byte(user), nil)
			result := l.logic.EmployeeRead(ctx, id)
			assert.True(t, result.Ok())
			assert.Equal(t, user, string(result.Payload))
			assert.Equal(t, []string{id}, l.upstream.userReads)
		}
	})
	t.Run("Idempotent", func(t *testing.T) {
		l := newLogicTest(t, []byte(user), nil)
		first := l.logic.EmployeeRead(ctx, "1")
		second := l.logic.EmployeeRead(ctx, "1")
		assert.Equal(t, first, second)
		assert.Equal(t, []string{"1", "1"}, l.upstream.userReads)
	})
	t.Run("Not Found", func(t *testing.T) {
		for _, body := range []string{"", "null", "false"} {
			l := newLogicTest(t, []byte(body), nil)
			result := l.logic.EmployeeRead(ctx, "1")
			assert.False(t, result.Ok())
			assert.Equal(t, data.KindNotFound, result.Err.Kind)
			assert.Equal(t, data.MessageEmployeeNotFound, result.Err.Message)
		}
	})
	t.Run("Upstream Failure", func(t *testing.T) {
		l := newLogicTest(t, nil, errors.New("502 Bad Gateway"))
		result := l.logic.EmployeeRead(ctx, "1")
		assert.False(t, result.Ok())
		assert.Equal(t, data.KindUpstreamFailure, result.Err.Kind)
		assert.Equal(t, 1, l.logLines())
	})
}

func TestLogicOpen(t *testing.T) {
	l := logic.NewLogic()
	err := l.Open(context.TODO())
	assert.Equal(t, logic.ErrUpstreamNotProvided, err)
}
