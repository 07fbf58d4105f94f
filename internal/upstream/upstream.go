package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/antonio-alexander/go-employee-directory/internal"
	"github.com/antonio-alexander/go-employee-directory/internal/data"
	"github.com/antonio-alexander/go-employee-directory/internal/utilities"

	"github.com/pkg/errors"
)

const DefaultBaseUrl string = "https://jsonplaceholder.typicode.com"

// Upstream reads users from the remote user directory, bodies are
// returned exactly as they were received
type Upstream interface {
	UsersRead(ctx context.Context) ([]byte, error)
	UserRead(ctx context.Context, id string) ([]byte, error)
}

type upstream struct {
	sync.RWMutex
	config struct {
		baseUrl    string
		timeout    time.Duration
		sslCaFile  string
		sslCrtFile string
		sslKeyFile string
	}
	utilities.Logger
	*http.Client
}

func NewUpstream(parameters ...any) interface {
	internal.Configurer
	internal.Opener
	Upstream
} {
	u := &upstream{Client: &http.Client{}}
	u.config.baseUrl = DefaultBaseUrl
	for _, parameter := range parameters {
		switch p := parameter.(type) {
		case utilities.Logger:
			u.Logger = p
		case *http.Client:
			u.Client = p
		}
	}
	return u
}

func (u *upstream) doRequest(ctx context.Context, uri string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Add("Accept", "application/json")
	if correlationId := internal.CorrelationIdFromCtx(ctx); correlationId != "" {
		request.Header.Add(internal.HeaderCorrelationId, correlationId)
	}
	response, err := u.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	bytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read body from %s", uri)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		if len(bytes) > 0 {
			return nil, errors.Errorf("%s: %s", response.Status, string(bytes))
		}
		return nil, errors.Errorf("%s", response.Status)
	}
	return bytes, nil
}

func (u *upstream) Configure(envs map[string]string) error {
	u.Lock()
	defer u.Unlock()

	if baseUrl := envs["UPSTREAM_BASE_URL"]; baseUrl != "" {
		u.config.baseUrl = strings.TrimSuffix(baseUrl, "/")
	}
	if timeout := envs["UPSTREAM_TIMEOUT"]; timeout != "" {
		i, err := strconv.ParseInt(timeout, 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid UPSTREAM_TIMEOUT")
		}
		u.config.timeout = time.Duration(i) * time.Second
	}
	if sslCaFile, ok := envs["UPSTREAM_SSL_CA_FILE"]; ok {
		u.config.sslCaFile = sslCaFile
	}
	if sslCrtFile, ok := envs["UPSTREAM_SSL_CRT_FILE"]; ok {
		u.config.sslCrtFile = sslCrtFile
	}
	if sslKeyFile, ok := envs["UPSTREAM_SSL_KEY_FILE"]; ok {
		u.config.sslKeyFile = sslKeyFile
	}
	return nil
}

func (u *upstream) Open(ctx context.Context) error {
	u.Lock()
	defer u.Unlock()

	if !strings.HasPrefix(u.config.baseUrl, "http://") &&
		!strings.HasPrefix(u.config.baseUrl, "https://") {
		return errors.Errorf("unsupported base url: %s", u.config.baseUrl)
	}
	// a zero timeout leaves the client without a timeout
	u.Client.Timeout = u.config.timeout
	if u.config.sslCaFile != "" {
		transport, err := internal.GetTransport(u.config.sslCaFile,
			u.config.sslCrtFile, u.config.sslKeyFile)
		if err != nil {
			return err
		}
		u.Client.Transport = transport
	}
	if u.Logger != nil {
		u.Info(ctx, "upstream: %s", u.config.baseUrl)
	}
	return nil
}

func (u *upstream) Close(ctx context.Context) error {
	u.Lock()
	defer u.Unlock()

	u.Client.CloseIdleConnections()
	return nil
}

func (u *upstream) UsersRead(ctx context.Context) ([]byte, error) {
	u.RLock()
	uri := u.config.baseUrl + data.RouteUpstreamUsers
	u.RUnlock()
	return u.doRequest(ctx, uri)
}

func (u *upstream) UserRead(ctx context.Context, id string) ([]byte, error) {
	u.RLock()
	uri := u.config.baseUrl + fmt.Sprintf(data.RouteUpstreamUsersIdf, id)
	u.RUnlock()
	return u.doRequest(ctx, uri)
}
