package outseta

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Parser converts between typed values and the JSON text exchanged with the API.
type Parser interface {
	ObjectToJSONString(v any) (string, error)
	JSONStringToObject(data string, v any) error
}

// JSONParser is the default Parser. Field names come from struct tags and
// unknown fields in responses are ignored.
type JSONParser struct{}

// NewJSONParser creates the default parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// ObjectToJSONString implements Parser.
func (p *JSONParser) ObjectToJSONString(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", ParseError(fmt.Sprintf("serializing %T", v), err)
	}

	return string(data), nil
}

// JSONStringToObject implements Parser.
func (p *JSONParser) JSONStringToObject(data string, v any) error {
	err := json.Unmarshal([]byte(data), v)
	if err != nil {
		if KindOf(err) == KindParse {
			return err
		}

		return ParseError(fmt.Sprintf("deserializing %T", v), err)
	}

	return nil
}

// pageEnvelope checks the page shape before the items are decoded.
type pageEnvelope struct {
	Metadata *Metadata        `json:"metadata"`
	Items    *json.RawMessage `json:"items"`
}

// JSONStringToPage deserializes a {"metadata":{...},"items":[...]} envelope.
func JSONStringToPage[T any](p Parser, data string) (*ItemPage[T], error) {
	var envelope pageEnvelope

	err := p.JSONStringToObject(data, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Metadata == nil || envelope.Items == nil {
		return nil, ParseError("response is not a page: metadata and items are required", nil)
	}

	trimmed := bytes.TrimSpace(*envelope.Items)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ParseError("page items must be an array", nil)
	}

	var items []T

	err = p.JSONStringToObject(string(trimmed), &items)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	return &ItemPage[T]{Metadata: *envelope.Metadata, Items: items}, nil
}
