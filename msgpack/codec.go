package convertermsgpack

import (
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

type Request struct {
	ID         string  `msgpack:"id,omitempty"`
	Category   string  `msgpack:"category"`
	InputUnit  string  `msgpack:"input_unit"`
	OutputUnit string  `msgpack:"output_unit"`
	Value      float64 `msgpack:"value"`
}

type Response struct {
	ID       string  `msgpack:"id,omitempty"`
	Value    float64 `msgpack:"value"`
	Symbol   string  `msgpack:"symbol,omitempty"`
	Display  string  `msgpack:"display,omitempty"`
	Fallback bool    `msgpack:"fallback,omitempty"`
	Error    string  `msgpack:"error,omitempty"`
}

func NewRequest(category, inputUnit, outputUnit string, value float64) Request {
	return Request{
		ID:         uuid.New().String(),
		Category:   category,
		InputUnit:  inputUnit,
		OutputUnit: outputUnit,
		Value:      value,
	}
}

func MarshalRequest(req *Request) ([]byte, error) {
	return msgpack.Marshal(req)
}

func UnmarshalRequest(b []byte) (*Request, error) {
	var req Request
	if err := msgpack.Unmarshal(b, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func MarshalResponse(resp *Response) ([]byte, error) {
	return msgpack.Marshal(resp)
}

func UnmarshalResponse(b []byte) (*Response, error) {
	var resp Response
	if err := msgpack.Unmarshal(b, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
