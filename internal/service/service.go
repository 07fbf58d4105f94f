package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/antonio-alexander/go-employee-directory/internal"
	"github.com/antonio-alexander/go-employee-directory/internal/data"
	"github.com/antonio-alexander/go-employee-directory/internal/logic"
	"github.com/antonio-alexander/go-employee-directory/internal/utilities"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

const (
	defaultPort            string        = "8080"
	defaultShutdownTimeout time.Duration = 10 * time.Second
)

var (
	Version   string
	GitCommit string
	GitBranch string
)

func init() {
	if Version = data.Version; Version == "" {
		Version = "<no_version_provided>"
	}
	if GitCommit = data.GitCommit; GitCommit == "" {
		GitCommit = "<no_git_commit>"
	}
	if GitBranch = data.GitBranch; GitBranch == "" {
		GitBranch = "<no_git_branch>"
	}
}

type service struct {
	sync.RWMutex
	sync.WaitGroup
	config struct {
		address          string
		port             string
		shutdownTimeout  time.Duration
		allowedOrigins   []string
		allowedMethods   []string
		allowedHeaders   []string
		allowCredentials bool
		corsDisabled     bool
		corsDebug        bool
		timersEnabled    bool
		notFoundEnabled  bool
	}
	ctx    context.Context
	cancel context.CancelFunc
	*mux.Router
	*http.Server
	utilities.Logger
	utilities.Timers
	logic.Logic
	opened bool
}

// NewService creates the http service, routes are built immediately
// so the returned value can be used as an http.Handler without
// being opened
func NewService(parameters ...any) interface {
	internal.Configurer
	internal.Opener
	http.Handler
} {
	router := mux.NewRouter()
	s := &service{
		Router: router,
		Server: &http.Server{
			Handler: router,
		},
	}
	s.config.port = defaultPort
	s.config.shutdownTimeout = defaultShutdownTimeout
	for _, parameter := range parameters {
		switch p := parameter.(type) {
		case logic.Logic:
			s.Logic = p
		case utilities.Timers:
			s.Timers = p
		case utilities.Logger:
			s.Logger = p
		}
	}
	if s.Logger == nil {
		s.Logger = utilities.NewLogger()
	}
	if s.Timers == nil {
		s.Timers = utilities.NewTimers()
	}
	s.buildRoutes()
	return s
}

func (s *service) launchServer() error {
	listener, err := net.Listen("tcp", s.Server.Addr)
	if err != nil {
		return errors.Wrapf(err, "unable to listen on %s", s.Server.Addr)
	}
	if !s.config.corsDisabled {
		s.Server.Handler = cors.New(cors.Options{
			AllowedOrigins:   s.config.allowedOrigins,
			AllowCredentials: s.config.allowCredentials,
			AllowedMethods:   s.config.allowedMethods,
			AllowedHeaders:   s.config.allowedHeaders,
			Debug:            s.config.corsDebug,
		}).Handler(s.Router)
	}
	started := make(chan struct{})
	s.Add(1)
	go func() {
		defer s.WaitGroup.Done()

		close(started)
		if err := s.Server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Error(s.ctx, "error while serving: %s", err)
		}
	}()
	<-started
	s.Info(s.ctx, "started server: %s", listener.Addr())
	return nil
}

// requestContext attaches the correlation id to the request context and
// echoes it back to the caller
func (s *service) requestContext(writer http.ResponseWriter, request *http.Request) context.Context {
	correlationId := getCorrelationId(request)
	writer.Header().Set(internal.HeaderCorrelationId, correlationId)
	return internal.CtxWithCorrelationId(request.Context(), correlationId)
}

func (s *service) startTimer(ctx context.Context, group string) func() {
	if !s.config.timersEnabled {
		return func() {}
	}
	timerIndex := s.Start(group)
	return func() {
		elapsedTime := s.Stop(group, timerIndex)
		s.Trace(ctx, "%s took %v", group,
			time.Duration(elapsedTime)*time.Nanosecond)
	}
}

func (s *service) endpointDefault() func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		fmt.Fprintf(writer,
			"go-employee-directory\n"+
				"Version: \"%s\"\n"+
				"Git Commit: \"%s\"\n"+
				"Git Branch: \"%s\"\n",
			Version, GitCommit, GitBranch)
	}
}

func (s *service) endpointEmployeesList(writer http.ResponseWriter, request *http.Request) {
	ctx := s.requestContext(writer, request)
	defer s.startTimer(ctx, "employees_list")()
	result := s.EmployeesList(ctx)
	s.handleResult(ctx, writer, result)
	if result.Ok() {
		s.Trace(ctx, "executed employees_list")
	}
}

func (s *service) endpointEmployeeRead(writer http.ResponseWriter, request *http.Request) {
	ctx := s.requestContext(writer, request)
	defer s.startTimer(ctx, "employee_read")()
	id := idFromPath(mux.Vars(request))
	result := s.EmployeeRead(ctx, id)
	s.handleResult(ctx, writer, result)
	if result.Ok() {
		s.Trace(ctx, "executed employee_read: %s", id)
	}
}

func (s *service) endpointTimersRead(writer http.ResponseWriter, request *http.Request) {
	ctx := s.requestContext(writer, request)
	s.handleResponse(ctx, writer, s.Timers.ReadAll())
}

func (s *service) endpointTimersClear(writer http.ResponseWriter, request *http.Request) {
	ctx := s.requestContext(writer, request)
	s.Timers.Clear()
	s.handleResponse(ctx, writer, nil)
	s.Trace(ctx, "executed timers_clear")
}

func methodNotAllowed(w http.ResponseWriter) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}

func (s *service) buildRoutes() {
	s.Router.HandleFunc("/", s.endpointDefault())
	s.Router.HandleFunc(data.RouteEmployees, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			s.endpointEmployeesList(w, r)
		}
	})
	s.Router.HandleFunc(data.RouteEmployeesId, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			s.endpointEmployeeRead(w, r)
		}
	})
	s.Router.HandleFunc(data.RouteTimers, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			s.endpointTimersRead(w, r)
		case http.MethodDelete:
			s.endpointTimersClear(w, r)
		}
	})
}

func (s *service) Configure(envs map[string]string) error {
	s.Lock()
	defer s.Unlock()

	if address, ok := envs["SERVICE_ADDRESS"]; ok {
		s.config.address = address
	}
	if port := envs["SERVICE_PORT"]; port != "" {
		s.config.port = port
	}
	if shutdownTimeoutString, ok := envs["SERVICE_SHUTDOWN_TIMEOUT"]; ok {
		if shutdownTimeoutInt, err := strconv.Atoi(shutdownTimeoutString); err == nil {
			if timeout := time.Duration(shutdownTimeoutInt) * time.Second; timeout > 0 {
				s.config.shutdownTimeout = timeout
			}
		}
	}
	if allowCredentialsString, ok := envs["SERVICE_CORS_ALLOW_CREDENTIALS"]; ok {
		if allowCredentials, err := strconv.ParseBool(allowCredentialsString); err == nil {
			s.config.allowCredentials = allowCredentials
		}
	}
	if allowedOrigins := envs["SERVICE_CORS_ALLOWED_ORIGINS"]; allowedOrigins != "" {
		s.config.allowedOrigins = strings.Split(allowedOrigins, ",")
	}
	if allowedMethods := envs["SERVICE_CORS_ALLOWED_METHODS"]; allowedMethods != "" {
		s.config.allowedMethods = strings.Split(allowedMethods, ",")
	}
	if allowedHeaders := envs["SERVICE_CORS_ALLOWED_HEADERS"]; allowedHeaders != "" {
		s.config.allowedHeaders = strings.Split(allowedHeaders, ",")
	}
	if corsDisabledString, ok := envs["SERVICE_CORS_DISABLED"]; ok {
		if corsDisabled, err := strconv.ParseBool(corsDisabledString); err == nil {
			s.config.corsDisabled = corsDisabled
		}
	}
	if corsDebug, ok := envs["SERVICE_CORS_DEBUG"]; ok {
		if corsDebug, err := strconv.ParseBool(corsDebug); err == nil {
			s.config.corsDebug = corsDebug
		}
	}
	if timersEnabled := envs["SERVICE_TIMERS_ENABLED"]; timersEnabled != "" {
		s.config.timersEnabled, _ = strconv.ParseBool(timersEnabled)
	}
	if notFoundEnabled := envs["SERVICE_NOT_FOUND_ENABLED"]; notFoundEnabled != "" {
		s.config.notFoundEnabled, _ = strconv.ParseBool(notFoundEnabled)
	}
	return nil
}

func (s *service) Open(ctx context.Context) error {
	s.Lock()
	defer s.Unlock()

	if s.opened {
		return nil
	}
	if s.Logic == nil {
		return errors.New("logic not provided")
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.Server.Addr = net.JoinHostPort(s.config.address, s.config.port)
	if err := s.launchServer(); err != nil {
		s.cancel()
		return err
	}
	s.opened = true
	return nil
}

func (s *service) Close(ctx context.Context) error {
	s.Lock()
	defer s.Unlock()

	if !s.opened {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.config.shutdownTimeout)
	defer cancel()
	if err := s.Server.Shutdown(ctx); err != nil {
		s.Error(ctx, "error while shutting down the server: %s", err)
	}
	s.cancel()
	s.Wait()
	s.opened = false
	return nil
}
