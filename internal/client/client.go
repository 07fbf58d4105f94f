package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/antonio-alexander/go-employee-directory/internal"
	"github.com/antonio-alexander/go-employee-directory/internal/data"
	"github.com/antonio-alexander/go-employee-directory/internal/utilities"

	"github.com/pkg/errors"
)

type Client interface {
	EmployeesList(ctx context.Context) (json.RawMessage, error)
	EmployeeRead(ctx context.Context, id string) (json.RawMessage, error)
	TimersRead(ctx context.Context) (*data.Timers, error)
	TimersClear(ctx context.Context) error
}

// ErrStatus is returned when the service responds with a status code
// other than 200 or 204
type ErrStatus struct {
	StatusCode int
	Message    string
}

func (e *ErrStatus) Error() string {
	return fmt.Sprintf("status code: %d; %s", e.StatusCode, e.Message)
}

type client struct {
	sync.RWMutex
	config struct {
		protocol   string
		address    string
		port       string
		timeout    int64
		sslCaFile  string
		sslCrtFile string
		sslKeyFile string
	}
	address string
	utilities.Logger
	*http.Client
}

func NewClient(parameters ...any) interface {
	internal.Configurer
	internal.Opener
	Client
} {
	c := &client{Client: &http.Client{}}
	c.config.protocol = "http"
	c.config.address = "localhost"
	c.config.port = "8080"
	c.config.timeout = 10
	for _, parameter := range parameters {
		switch p := parameter.(type) {
		case utilities.Logger:
			c.Logger = p
		}
	}
	if c.Logger == nil {
		c.Logger = utilities.NewLogger()
	}
	return c
}

func (c *client) doRequest(ctx context.Context, uri, method string) ([]byte, error) {
	statusCode, bytes, err := internal.DoRequest(ctx, c.Client, uri, method)
	if err != nil {
		return nil, err
	}
	switch statusCode {
	default:
		var e data.ErrorResponse

		if err := json.Unmarshal(bytes, &e); err != nil || e.Message == "" {
			return nil, &ErrStatus{StatusCode: statusCode, Message: string(bytes)}
		}
		return nil, &ErrStatus{StatusCode: statusCode, Message: e.Message}
	case http.StatusOK, http.StatusNoContent:
		return bytes, nil
	}
}

func (c *client) Configure(envs map[string]string) error {
	c.Lock()
	defer c.Unlock()

	if address := envs["CLIENT_ADDRESS"]; address != "" {
		c.config.address = address
	}
	if port := envs["CLIENT_PORT"]; port != "" {
		c.config.port = port
	}
	if protocol := envs["CLIENT_PROTOCOL"]; protocol != "" {
		c.config.protocol = protocol
	}
	if timeout := envs["CLIENT_TIMEOUT"]; timeout != "" {
		i, err := strconv.ParseInt(timeout, 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid CLIENT_TIMEOUT")
		}
		c.config.timeout = i
	}
	if sslCaFile, ok := envs["SSL_CA_FILE"]; ok {
		c.config.sslCaFile = sslCaFile
	}
	if sslKeyFile, ok := envs["SSL_KEY_FILE"]; ok {
		c.config.sslKeyFile = sslKeyFile
	}
	if sslCrtFile, ok := envs["SSL_CRT_FILE"]; ok {
		c.config.sslCrtFile = sslCrtFile
	}
	return nil
}

func (c *client) Open(ctx context.Context) error {
	c.Lock()
	defer c.Unlock()

	switch c.config.protocol {
	default:
		return errors.Errorf("unsupported protocol: %s", c.config.protocol)
	case "http", "https":
		c.address = fmt.Sprintf("%s://%s", c.config.protocol,
			net.JoinHostPort(c.config.address, c.config.port))
	}
	c.Client.Timeout = time.Duration(c.config.timeout) * time.Second
	transport, err := internal.GetTransport(c.config.sslCaFile,
		c.config.sslCrtFile, c.config.sslKeyFile)
	if err != nil {
		return err
	}
	c.Client.Transport = transport
	c.Debug(ctx, "client: %s", c.address)
	return nil
}

func (c *client) Close(ctx context.Context) error {
	c.Lock()
	defer c.Unlock()

	c.Client.CloseIdleConnections()
	return nil
}

func (c *client) EmployeesList(ctx context.Context) (json.RawMessage, error) {
	uri := c.address + data.RouteEmployees
	bytes, err := c.doRequest(ctx, uri, http.MethodGet)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(bytes), nil
}

func (c *client) EmployeeRead(ctx context.Context, id string) (json.RawMessage, error) {
	uri := c.address + fmt.Sprintf(data.RouteEmployeesIdf, url.PathEscape(id))
	bytes, err := c.doRequest(ctx, uri, http.MethodGet)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(bytes), nil
}

func (c *client) TimersRead(ctx context.Context) (*data.Timers, error) {
	uri := c.address + data.RouteTimers
	bytes, err := c.doRequest(ctx, uri, http.MethodGet)
	if err != nil {
		return nil, err
	}
	timers := &data.Timers{}
	if err := json.Unmarshal(bytes, timers); err != nil {
		return nil, err
	}
	return timers, nil
}

func (c *client) TimersClear(ctx context.Context) error {
	uri := c.address + data.RouteTimers
	if _, err := c.doRequest(ctx, uri, http.MethodDelete); err != nil {
		return err
	}
	return nil
}
