// Package wire implements the Chrome native messaging frame format: a
// 4-byte little-endian unsigned length prefix followed by that many bytes
// of UTF-8 JSON payload, with no separator or terminator.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// headerLen is the number of bytes in the native messaging header.
const headerLen = 4

// MaxPayloadBytes is the largest payload length ReadFrame will accept (not
// including the 4-byte header).  A prefix beyond this almost certainly means
// the stream has desynchronized, and length-prefix framing has no recovery
// point once that happens.
const MaxPayloadBytes = 64 << 20

// ErrTruncated reports a stream that closed partway through a frame: after
// delivering some but not all of the header, or fewer payload bytes than the
// header declared.  A stream that closes cleanly between frames yields io.EOF
// instead.
var ErrTruncated = errors.New("wire: truncated frame")

// ErrFrameTooLarge reports a payload longer than MaxPayloadBytes: a header
// declaring one on the read side, or an attempt to write one.
var ErrFrameTooLarge = errors.New("wire: frame exceeds maximum payload size")

// byteOrder is the byte order of the length prefix.  Chrome speaks the
// host's native order, which is little-endian on every platform Chrome
// ships on; the format is little-endian by definition here.
var byteOrder = binary.LittleEndian

// ReadFrame reads one length-prefixed frame from r and returns its payload.
//
// A stream that is already closed (zero bytes available) returns io.EOF,
// signalling orderly shutdown.  A stream that closes after delivering part
// of the header or part of the payload returns ErrTruncated.  Callers must
// treat any non-EOF error as fatal to the stream.
func ReadFrame(r io.Reader) ([]byte, error) {
	header := make([]byte, headerLen)
	switch _, err := io.ReadFull(r, header); {
	case err == io.EOF:
		// Clean shutdown from the browser's end.
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		return nil, fmt.Errorf("%w: stream closed mid-header", ErrTruncated)
	case err != nil:
		return nil, err
	}

	payloadLen := byteOrder.Uint32(header)
	if payloadLen > MaxPayloadBytes {
		return nil, fmt.Errorf("%w: header declares %d bytes", ErrFrameTooLarge, payloadLen)
	}

	payload := make([]byte, payloadLen)
	switch _, err := io.ReadFull(r, payload); {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return nil, fmt.Errorf("%w: stream closed mid-payload, wanted %d bytes", ErrTruncated, payloadLen)
	case err != nil:
		return nil, err
	}
	return payload, nil
}

// WriteFrame writes payload to w as one length-prefixed frame.  It does not
// return until every byte has been accepted by w.
//
// Payloads longer than MaxPayloadBytes are refused with ErrFrameTooLarge:
// the peer would reject the frame, and beyond 4 GiB the length would not
// even fit the 32-bit prefix.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxPayloadBytes {
		return fmt.Errorf("%w: payload is %d bytes", ErrFrameTooLarge, len(payload))
	}
	buf := make([]byte, headerLen+len(payload))
	byteOrder.PutUint32(buf[:headerLen], uint32(len(payload)))
	copy(buf[headerLen:], payload)

	for len(buf) > 0 {
		switch n, err := w.Write(buf); {
		case n == 0:
			return io.EOF
		case err != nil:
			return err
		default:
			buf = buf[n:]
		}
	}
	return nil
}

// EncodeFrame returns payload with its length prefix prepended.
func EncodeFrame(payload []byte) []byte {
	buf := make([]byte, headerLen+len(payload))
	byteOrder.PutUint32(buf[:headerLen], uint32(len(payload)))
	copy(buf[headerLen:], payload)
	return buf
}
