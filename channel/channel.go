// Package channel exchanges JSON messages with a browser over a pair of
// byte streams, typically the process's inherited stdin and stdout.
package channel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mitosagi/NativeMessaging/wire"
)

// Message is one native messaging payload: a JSON object whose contents are
// opaque to this layer.  Only structural validity is enforced on receive.
type Message map[string]any

// ErrInvalidPayload reports a frame whose payload is not a well-formed JSON
// object.  Like a framing failure it is fatal to the channel: the protocol
// has no message-level recovery.
var ErrInvalidPayload = errors.New("channel: payload is not a JSON object")

// Channel frames and unframes messages over one input and one output
// stream.  It performs no internal buffering on the output side, so a
// completed Send has been committed to the underlying stream.
//
// A Channel is not safe for concurrent use; the native messaging protocol
// assumes one reader and one writer.
type Channel struct {
	in  io.Reader
	out io.Writer
}

// New returns a Channel over the given streams.  The streams must not be
// wrapped in additional buffering: the browser may begin reading a response
// as soon as Send returns.
func New(in io.Reader, out io.Writer) *Channel {
	return &Channel{in: in, out: out}
}

// Receive blocks until one full message is available or the input stream
// closes.  It returns io.EOF on an orderly close (stream ended between
// frames); any other error means the channel is unusable.
func (c *Channel) Receive() (Message, error) {
	payload, err := wire.ReadFrame(c.in)
	if err != nil {
		return nil, err
	}

	var m Message
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if m == nil {
		// A literal "null" decodes into a nil map without error.
		return nil, fmt.Errorf("%w: got null", ErrInvalidPayload)
	}
	return m, nil
}

// Send serializes m to compact JSON, frames it, and writes the whole frame
// to the output stream before returning.
func (c *Channel) Send(m Message) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("channel: encoding message: %w", err)
	}
	return wire.WriteFrame(c.out, payload)
}
