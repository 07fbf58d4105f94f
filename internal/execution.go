package internal

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const HeaderCorrelationId string = "Correlation-Id"

func GenerateId() string {
	return uuid.Must(uuid.NewRandom()).String()
}

// DoRequest executes a request without a body and returns the status code
// along with the complete response body
func DoRequest(ctx context.Context, client *http.Client, uri, method string) (int, []byte, error) {
	request, err := http.NewRequestWithContext(ctx, method, uri, nil)
	if err != nil {
		return 0, nil, err
	}
	if correlationId := CorrelationIdFromCtx(ctx); correlationId != "" {
		request.Header.Set(HeaderCorrelationId, correlationId)
	}
	response, err := client.Do(request)
	if err != nil {
		return 0, nil, err
	}
	defer response.Body.Close()
	bytes, err := io.ReadAll(response.Body)
	if err != nil {
		return response.StatusCode, nil, errors.Wrap(err, "unable to read response body")
	}
	return response.StatusCode, bytes, nil
}

func GetCertificates(crtFile, keyFile string) ([]tls.Certificate, error) {
	if crtFile == "" || keyFile == "" {
		return []tls.Certificate{}, nil
	}
	bytesCert, err := os.ReadFile(crtFile)
	if err != nil {
		return nil, err
	}
	bytesKey, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, err
	}
	certificate, err := tls.X509KeyPair(bytesCert, bytesKey)
	if err != nil {
		return nil, err
	}
	return []tls.Certificate{certificate}, nil
}

func GetCaCert(caCertFile string) (*x509.CertPool, error) {
	caCertPool := x509.NewCertPool()
	if caCertFile == "" {
		return caCertPool, nil
	}
	bytes, err := os.ReadFile(caCertFile)
	if err != nil {
		return nil, err
	}
	if !caCertPool.AppendCertsFromPEM(bytes) {
		return nil, errors.Errorf("no certificates found in: %s", caCertFile)
	}
	return caCertPool, nil
}

// GetTransport returns a transport configured for tls when a ca file is
// provided, otherwise it returns a clone of the default transport
func GetTransport(caCertFile, crtFile, keyFile string) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if caCertFile == "" {
		return transport, nil
	}
	caCertPool, err := GetCaCert(caCertFile)
	if err != nil {
		return nil, err
	}
	certificates, err := GetCertificates(crtFile, keyFile)
	if err != nil {
		return nil, err
	}
	transport.TLSClientConfig = &tls.Config{
		// TLS versions below 1.2 are considered insecure
		// see https://www.rfc-editor.org/rfc/rfc7525.txt for details
		MinVersion:   tls.VersionTLS12,
		RootCAs:      caCertPool,
		Certificates: certificates,
	}
	return transport, nil
}
