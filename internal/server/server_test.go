package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gitlab.ozon.dev/safariproxd/rserv/internal/server/mock"
	"gitlab.ozon.dev/safariproxd/rserv/internal/threadpool"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func expectedResponse(tokens int) string {
	var b strings.Builder
	b.WriteString("HTTP/1.1 200 OK\r\n\r\n")
	for i := range tokens {
		b.WriteString(" " + strconv.Itoa(i) + " ")
	}
	return b.String()
}

type ServerSuite struct {
	suite.Suite

	pool   *threadpool.Pool
	srv    *Server
	cancel context.CancelFunc
	served chan error
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.pool = threadpool.New(4, threadpool.WithLogger(discardLogger), threadpool.WithName("test"))
	s.srv = New(Config{ReadBufferSize: 1024, BodyTokens: 50}, s.pool, discardLogger, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	s.served = make(chan error, 1)
	go func() { s.served <- s.srv.Serve(ctx, ln) }()

	s.Require().Eventually(func() bool { return s.srv.Addr() != nil }, time.Second, time.Millisecond)
}

func (s *ServerSuite) TearDownTest() {
	s.cancel()
	select {
	case err := <-s.served:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("Serve did not return after cancel")
	}
	s.NoError(s.pool.Close())
}

func (s *ServerSuite) roundTrip(request string) string {
	conn, err := net.Dial("tcp", s.srv.Addr().String())
	s.Require().NoError(err)
	defer conn.Close()
	s.Require().NoError(conn.SetDeadline(time.Now().Add(5 * time.Second)))

	if request != "" {
		_, err = conn.Write([]byte(request))
		s.Require().NoError(err)
	} else {
		s.Require().NoError(conn.(*net.TCPConn).CloseWrite())
	}

	body, err := io.ReadAll(conn)
	s.Require().NoError(err)
	return string(body)
}

func (s *ServerSuite) TestRespondsWithFixedBody() {
	got := s.roundTrip("GET / HTTP/1.1\r\nHost: localhost\r\n\r\n")
	s.Equal(expectedResponse(50), got)
}

func (s *ServerSuite) TestRespondsWhenClientSendsNothing() {
	got := s.roundTrip("")
	s.Equal(expectedResponse(50), got)
}

func (s *ServerSuite) TestConcurrentClients() {
	const clients = 20
	var wg sync.WaitGroup
	results := make([]string, clients)
	for i := range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, err := net.Dial("tcp", s.srv.Addr().String())
			if !s.NoError(err) {
				return
			}
			defer conn.Close()
			_ = conn.SetDeadline(time.Now().Add(5 * time.Second))
			if _, err := conn.Write([]byte("ping")); !s.NoError(err) {
				return
			}
			body, err := io.ReadAll(conn)
			s.NoError(err)
			results[i] = string(body)
		}()
	}
	wg.Wait()

	for i, got := range results {
		s.Equal(expectedResponse(50), got, "client %d", i)
	}
}

func TestServe_SubmitFailureStopsServer(t *testing.T) {
	t.Parallel()
	ctrl := minimock.NewController(t)
	sub := mock.NewSubmitterMock(ctrl)
	sub.SubmitMock.Times(1).Return(threadpool.ErrPoolClosed)

	srv := New(Config{ReadBufferSize: 16, BodyTokens: 1}, sub, discardLogger, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background(), ln) }()

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))

	select {
	case err := <-served:
		require.ErrorIs(t, err, threadpool.ErrPoolClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after submit failure")
	}

	body, _ := io.ReadAll(conn)
	require.Empty(t, body)
}

func TestListenAndServe_BadAddress(t *testing.T) {
	t.Parallel()
	srv := New(Config{Address: "not-an-address"}, mock.NewSubmitterMock(minimock.NewController(t)), discardLogger, nil)

	err := srv.ListenAndServe(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "listen on not-an-address")
	require.Nil(t, srv.Addr())
}
