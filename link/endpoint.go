package link

import (
	"context"
	"encoding/gob"
	"errors"
	"io"
	"net"
)

// Endpoint sends and receives messages over one side of a pipe.
type Endpoint struct {
	conn net.Conn
	ctx  context.Context
	send chan any
	recv chan any
}

// NewEndpoint starts encoding and decoding on conn until ctx is done or the
// other side goes away. Errors other than a closed pipe are reported
// through quit.
func NewEndpoint(ctx context.Context, conn net.Conn, quit context.CancelCauseFunc) *Endpoint {
	e := &Endpoint{
		conn: conn,
		ctx:  ctx,
		send: make(chan any, 16),
		recv: make(chan any, 16),
	}
	go e.handleSend(quit)
	go e.handleReceive(quit)
	return e
}

// Send queues msg for the other side. It gives up once the endpoint stopped.
func (e *Endpoint) Send(msg any) {
	select {
	case e.send <- msg:
	case <-e.ctx.Done():
	}
}

// Messages returns the messages sent by the other side. The channel is
// closed when the connection ends.
func (e *Endpoint) Messages() <-chan any {
	return e.recv
}

func (e *Endpoint) handleSend(quit context.CancelCauseFunc) {
	enc := gob.NewEncoder(e.conn)
	defer e.conn.Close()

	for {
		select {
		case msg := <-e.send:
			err := enc.Encode(&msg)
			if err != nil {
				if !closed(err) {
					quit(err)
				}
				return
			}
		case <-e.ctx.Done():
			return
		}
	}
}

func (e *Endpoint) handleReceive(quit context.CancelCauseFunc) {
	dec := gob.NewDecoder(e.conn)
	defer close(e.recv)

	for {
		var v any
		err := dec.Decode(&v)
		if err != nil {
			if !closed(err) && e.ctx.Err() == nil {
				quit(err)
			}
			return
		}

		select {
		case e.recv <- v:
		case <-e.ctx.Done():
			return
		}
	}
}

func closed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed)
}
