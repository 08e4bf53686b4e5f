package converterrpc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"converter"
	convertermsgpack "converter/msgpack"
)

func encodeRequests(t *testing.T, reqs ...convertermsgpack.Request) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for i := range reqs {
		require.NoError(t, enc.Encode(&reqs[i]))
	}
	return buf.Bytes()
}

func decodeResponses(t *testing.T, data []byte) []convertermsgpack.Response {
	t.Helper()
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	var out []convertermsgpack.Response
	for {
		var resp convertermsgpack.Response
		err := dec.Decode(&resp)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, resp)
	}
}

func TestRequestBufferFeedByteByByte(t *testing.T) {
	data := encodeRequests(t,
		convertermsgpack.NewRequest("Length", "kilometer", "meter", 1),
		convertermsgpack.NewRequest("Time", "days", "minutes", 1),
	)

	var rb RequestBuffer
	var got []*convertermsgpack.Request
	for i := range data {
		reqs, err := rb.Feed(data[i : i+1])
		require.NoError(t, err)
		got = append(got, reqs...)
	}

	require.Len(t, got, 2)
	assert.Equal(t, "kilometer", got[0].InputUnit)
	assert.Equal(t, "days", got[1].InputUnit)
	assert.Equal(t, 0, rb.Pending())
}

func TestRequestBufferFeedAllAtOnce(t *testing.T) {
	data := encodeRequests(t,
		convertermsgpack.Request{ID: "a", Category: "Volume", InputUnit: "cups", OutputUnit: "pints", Value: 2},
		convertermsgpack.Request{ID: "b", Category: "Volume", InputUnit: "pints", OutputUnit: "cups", Value: 1},
	)
	tail := encodeRequests(t, convertermsgpack.Request{ID: "c", Category: "Length", Value: 3})

	var rb RequestBuffer
	reqs, err := rb.Feed(append(data, tail[:3]...))
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "a", reqs[0].ID)
	assert.Equal(t, "b", reqs[1].ID)
	assert.Equal(t, 3, rb.Pending())

	reqs, err = rb.Feed(tail[3:])
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "c", reqs[0].ID)
}

func TestRequestBufferRejectsGarbage(t *testing.T) {
	var rb RequestBuffer
	_, err := rb.Feed([]byte{0xc1, 0x00})
	assert.Error(t, err)
	assert.Equal(t, 0, rb.Pending())
}

func TestHandle(t *testing.T) {
	h := NewHandler(converter.NewConverter(), false, nil)

	resp := h.Handle(&convertermsgpack.Request{ID: "t1", Category: "Temperature", InputUnit: "Celsius", OutputUnit: "Fahrenheit", Value: 0})
	assert.Equal(t, "t1", resp.ID)
	assert.Equal(t, 32.0, resp.Value)
	assert.Equal(t, "°F", resp.Symbol)
	assert.Equal(t, "32.00 °F", resp.Display)
	assert.False(t, resp.Fallback)
	assert.Empty(t, resp.Error)

	resp = h.Handle(&convertermsgpack.Request{ID: "t2", Category: "Length", InputUnit: "parsec", OutputUnit: "meter", Value: 5})
	assert.Equal(t, 5.0, resp.Value)
	assert.True(t, resp.Fallback)
	assert.Equal(t, "5.00 m", resp.Display)

	resp = h.Handle(&convertermsgpack.Request{ID: "t3", Category: "Mass", InputUnit: "kg", OutputUnit: "lb", Value: 9})
	assert.Equal(t, 9.0, resp.Value)
	assert.True(t, resp.Fallback)
	assert.Equal(t, "9.00", resp.Display)
}

func TestHandleStrict(t *testing.T) {
	h := NewHandler(nil, true, nil)

	resp := h.Handle(&convertermsgpack.Request{ID: "s1", Category: "Length", InputUnit: "parsec", OutputUnit: "meter", Value: 5})
	assert.Equal(t, "s1", resp.ID)
	assert.Contains(t, resp.Error, converter.ErrUnknownUnit.Error())
	assert.Empty(t, resp.Display)

	resp = h.Handle(&convertermsgpack.Request{ID: "s2", Category: "Time", InputUnit: "hours", OutputUnit: "seconds", Value: 1})
	assert.Empty(t, resp.Error)
	assert.Equal(t, 3600.0, resp.Value)
	assert.Equal(t, "3600.00 s", resp.Display)
}

func TestServe(t *testing.T) {
	in := bytes.NewReader(encodeRequests(t,
		convertermsgpack.Request{ID: "1", Category: "Length", InputUnit: "meter", OutputUnit: "kilometer", Value: 1000},
		convertermsgpack.Request{ID: "2", Category: "Volume", InputUnit: "gallons", OutputUnit: "liters", Value: 1},
	))
	var out bytes.Buffer

	h := NewHandler(nil, false, nil)
	require.NoError(t, h.Serve(context.Background(), in, &out))

	resps := decodeResponses(t, out.Bytes())
	require.Len(t, resps, 2)
	assert.Equal(t, "1", resps[0].ID)
	assert.Equal(t, 1.0, resps[0].Value)
	assert.Equal(t, "2", resps[1].ID)
	assert.Equal(t, 3.78541, resps[1].Value)
	assert.Equal(t, "3.79 L", resps[1].Display)
}

func TestServeTruncatedStream(t *testing.T) {
	data := encodeRequests(t, convertermsgpack.NewRequest("Length", "meter", "feet", 1))
	var out bytes.Buffer

	err := NewHandler(nil, false, nil).Serve(context.Background(), bytes.NewReader(data[:len(data)-2]), &out)
	assert.True(t, errors.Is(err, ErrTruncated))
	assert.Zero(t, out.Len())
}

func TestServeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewHandler(nil, false, nil).Serve(ctx, bytes.NewReader(nil), io.Discard)
	assert.True(t, errors.Is(err, context.Canceled))
}
