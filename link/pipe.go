// Package link connects a render loop with its control panel. The two sides
// run on different OS threads and exchange gob encoded messages over an
// in-memory net.Pipe.
package link

import (
	"net"
	"sync"
)

// NewPipeListener returns the client end of a pipe and a listener whose
// first Accept returns the other end.
func NewPipeListener() (client net.Conn, listener net.Listener) {
	clientPipe, listenerPipe := net.Pipe()
	return clientPipe, &pipeListener{
		pipe: listenerPipe,
		done: make(chan struct{}),
	}
}

type pipeListener struct {
	mu        sync.Mutex
	pipe      net.Conn
	done      chan struct{}
	closeOnce sync.Once
}

func (p *pipeListener) Accept() (net.Conn, error) {
	p.mu.Lock()
	pipe := p.pipe
	p.pipe = nil
	p.mu.Unlock()

	if pipe != nil {
		return pipe, nil
	}
	<-p.done
	return nil, net.ErrClosed
}

func (p *pipeListener) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
	})

	p.mu.Lock()
	pipe := p.pipe
	p.pipe = nil
	p.mu.Unlock()

	if pipe != nil {
		return pipe.Close()
	}
	return nil
}

func (p *pipeListener) Addr() net.Addr {
	return pipeAddr{}
}

type pipeAddr struct{}

func (pipeAddr) Network() string { return "pipe" }
func (pipeAddr) String() string  { return "pipe" }
