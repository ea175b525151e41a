package smtp

import (
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// session is what one client connection sent to fakeServer.
type session struct {
	commands []string
	data     string
}

// fakeServer speaks just enough plain-text ESMTP for go-mail: EHLO with
// AUTH PLAIN, MAIL, RCPT, DATA, RSET, NOOP and QUIT.
type fakeServer struct {
	ln       net.Listener
	sessions chan session
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeServer{ln: ln, sessions: make(chan session, 4)}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go s.serve(conn)
		}
	}()
	return s
}

func (s *fakeServer) port(t *testing.T) int {
	t.Helper()
	_, p, err := net.SplitHostPort(s.ln.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(p)
	require.NoError(t, err)
	return port
}

// next waits for the following connection to finish.
func (s *fakeServer) next(t *testing.T) session {
	t.Helper()
	select {
	case sess := <-s.sessions:
		return sess
	case <-time.After(5 * time.Second):
		t.Fatal("smtp session did not finish")
		return session{}
	}
}

func (s *fakeServer) serve(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

	var sess session
	defer func() { s.sessions <- sess }()

	tp := textproto.NewConn(conn)
	reply := func(lines ...string) bool {
		for _, l := range lines {
			if err := tp.PrintfLine("%s", l); err != nil {
				return false
			}
		}
		return true
	}

	if !reply("220 localhost ESMTP test") {
		return
	}
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		sess.commands = append(sess.commands, line)

		verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
		switch {
		case verb == "EHLO":
			reply("250-localhost", "250 AUTH PLAIN")
		case verb == "HELO":
			reply("250 localhost")
		case verb == "AUTH":
			reply("235 2.7.0 Authentication successful")
		case strings.HasPrefix(verb, "MAIL"), strings.HasPrefix(verb, "RCPT"), verb == "RSET", verb == "NOOP":
			reply("250 2.0.0 OK")
		case verb == "DATA":
			reply("354 End data with <CR><LF>.<CR><LF>")
			body, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			sess.data = string(body)
			reply("250 2.0.0 queued")
		case verb == "QUIT":
			reply("221 2.0.0 bye")
			return
		default:
			reply("502 5.5.2 command not recognized")
		}
	}
}

func (sess session) prefixed(prefix string) []string {
	var out []string
	for _, c := range sess.commands {
		if strings.HasPrefix(strings.ToUpper(c), prefix) {
			out = append(out, c)
		}
	}
	return out
}
