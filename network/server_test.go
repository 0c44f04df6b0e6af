package network

import (
	"context"
	"crypto/x509"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/luca-patrignani/pokerhand/domain/hand"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startServer(t *testing.T, opts ...ServerOption) (*Server, string) {
	t.Helper()
	l, err := CreateListener()
	require.NoError(t, err)
	s := NewServer(opts...)
	s.Start(l)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, s.Close(ctx))
		for err := range s.Errors() {
			assert.NoError(t, err)
		}
	})
	return s, l.Addr().String()
}

func TestServerRoundTrip(t *testing.T) {
	_, addr := startServer(t)
	client := NewClient("http://" + addr)
	defer client.Close()

	resp, err := client.Evaluate(context.Background(), "10H JH QH KH AH")
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	require.NotNil(t, resp.Category)
	assert.Equal(t, hand.StraightFlush, *resp.Category)

	resp, err = client.Evaluate(context.Background(), "2H 3H 4H")
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, []string{"is less than five cards"}, resp.Errors)
}

func TestServerConcurrentClients(t *testing.T) {
	_, addr := startServer(t)
	n := 10
	errChan := make(chan error)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			client := NewClient("http://" + addr)
			defer client.Close()
			resp, err := client.Evaluate(context.Background(), "AH AC 3D 3C 3S")
			if err != nil {
				errChan <- err
				return
			}
			if resp.Category == nil || *resp.Category != hand.FullHouse {
				errChan <- fmt.Errorf("client %d: expected %v, got %+v", i, hand.FullHouse, resp)
				return
			}
			errChan <- nil
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-errChan; err != nil {
			t.Fatal(err)
		}
	}
}

func TestHttpsServer(t *testing.T) {
	cert, pem, err := GenerateSelfSignedCert("localhost:0")
	require.NoError(t, err)
	certPool := x509.NewCertPool()
	require.True(t, certPool.AppendCertsFromPEM(pem))

	_, addr := startServer(t, WithCertificate(cert))
	client := NewClient("https://"+addr, WithRootCAs(certPool), WithTimeout(10*time.Second))
	defer client.Close()

	resp, err := client.Evaluate(context.Background(), "AD 3D QD 5D 9D")
	require.NoError(t, err)
	require.NotNil(t, resp.Category)
	assert.Equal(t, hand.Flush, *resp.Category)
}

func TestHttpsServerRejectsUntrustedClient(t *testing.T) {
	cert, _, err := GenerateSelfSignedCert("localhost:0")
	require.NoError(t, err)

	_, addr := startServer(t, WithCertificate(cert))
	client := NewClient("https://"+addr, WithRootCAs(x509.NewCertPool()))
	defer client.Close()

	_, err = client.Evaluate(context.Background(), "AD 3D QD 5D 9D")
	assert.Error(t, err)
}

func TestClientReportsBadRequest(t *testing.T) {
	_, addr := startServer(t)
	client := NewClient("http://" + addr + "/missing")
	defer client.Close()

	_, err := client.Evaluate(context.Background(), "AD 3D QD 5D 9D")
	assert.ErrorContains(t, err, "unexpected status code 404")
}
