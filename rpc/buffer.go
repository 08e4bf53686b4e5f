package converterrpc

import (
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	convertermsgpack "converter/msgpack"
)

// RequestBuffer accumulates bytes from a stream and yields every complete
// msgpack request. Trailing partial data is kept for the next Feed.
type RequestBuffer struct {
	buf bytes.Buffer
}

func (rb *RequestBuffer) Feed(data []byte) ([]*convertermsgpack.Request, error) {
	rb.buf.Write(data)

	var results []*convertermsgpack.Request
	for rb.buf.Len() > 0 {
		rd := bytes.NewReader(rb.buf.Bytes())
		dec := msgpack.NewDecoder(rd)

		req := new(convertermsgpack.Request)
		if err := dec.Decode(req); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// not enough data yet
				break
			}
			rb.buf.Reset()
			return results, err
		}
		rb.buf.Next(rb.buf.Len() - rd.Len())
		results = append(results, req)
	}
	return results, nil
}

// Pending reports how many undecoded bytes are buffered.
func (rb *RequestBuffer) Pending() int {
	return rb.buf.Len()
}
