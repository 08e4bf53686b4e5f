package converterrpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vmihailenco/msgpack/v5"

	"converter"
	"converter/form"
	convertermsgpack "converter/msgpack"
)

var ErrTruncated = errors.New("stream ended inside a request")

const readChunk = 4096

type Handler struct {
	conv   *converter.Converter
	strict bool
	logger *slog.Logger
}

func NewHandler(conv *converter.Converter, strict bool, logger *slog.Logger) *Handler {
	if conv == nil {
		conv = converter.NewConverter()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{conv: conv, strict: strict, logger: logger}
}

// Handle converts one request. In strict mode unknown names produce a
// response carrying Error; otherwise they pass through and set Fallback.
func (h *Handler) Handle(req *convertermsgpack.Request) *convertermsgpack.Response {
	resp := &convertermsgpack.Response{ID: req.ID}

	if h.strict {
		v, err := h.conv.ConvertStrict(req.Category, req.InputUnit, req.OutputUnit, req.Value)
		if err != nil {
			resp.Error = err.Error()
			return resp
		}
		resp.Value = v
	} else {
		resp.Value = h.conv.Convert(req.Category, req.InputUnit, req.OutputUnit, req.Value)
		resp.Fallback = !recognized(req)
	}

	resp.Symbol = converter.SymbolFor(req.Category, req.OutputUnit)
	resp.Display = form.FormatValue(resp.Value, resp.Symbol)
	return resp
}

// Serve reads msgpack requests from r until EOF and writes one response per
// request to w.
func (h *Handler) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	var rb RequestBuffer
	enc := msgpack.NewEncoder(w)
	chunk := make([]byte, readChunk)
	served := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, readErr := r.Read(chunk)
		if n > 0 {
			reqs, err := rb.Feed(chunk[:n])
			for _, req := range reqs {
				if encErr := enc.Encode(h.Handle(req)); encErr != nil {
					return fmt.Errorf("write response %s: %w", req.ID, encErr)
				}
				served++
			}
			if err != nil {
				return fmt.Errorf("decode request: %w", err)
			}
		}

		if errors.Is(readErr, io.EOF) {
			if rb.Pending() > 0 {
				return ErrTruncated
			}
			h.logger.Debug("batch stream finished", "served", served)
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read requests: %w", readErr)
		}
	}
}

func recognized(req *convertermsgpack.Request) bool {
	c, ok := converter.ParseCategory(req.Category)
	if !ok {
		return false
	}
	if _, ok := converter.LookupUnit(c, req.InputUnit); !ok {
		return false
	}
	_, ok = converter.LookupUnit(c, req.OutputUnit)
	return ok
}
