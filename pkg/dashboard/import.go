package dashboard

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/sketchfit/pkg/errors"
)

// envelope is the API response wrapper around a document.
type envelope struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// unwrap returns the payload of an envelope, or data itself when it is not
// wrapped.
func unwrap(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed, nil
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode document")
	}
	if env.Code == nil {
		return trimmed, nil
	}
	if *env.Code != 200 {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "dashboard API returned %d: %s", *env.Code, msg)
	}
	return bytes.TrimSpace(env.Data), nil
}

// ReadSummary decodes a summary document from r.
func ReadSummary(r io.Reader) (*Summary, error) {
	payload, err := readPayload(r)
	if err != nil {
		return nil, err
	}
	var s Summary
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode summary")
	}
	return &s, nil
}

// ReadAIRatio decodes an AI ratio document from r. The payload may be a
// single ratio or an array of per-project ratios, which is aggregated with
// [AggregateAIRatio].
func ReadAIRatio(r io.Reader) (AIRatio, error) {
	payload, err := readPayload(r)
	if err != nil {
		return AIRatio{}, err
	}
	if len(payload) > 0 && payload[0] == '[' {
		var parts []AIRatio
		if err := json.Unmarshal(payload, &parts); err != nil {
			return AIRatio{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode AI ratios")
		}
		return AggregateAIRatio(parts), nil
	}
	var ratio AIRatio
	if err := json.Unmarshal(payload, &ratio); err != nil {
		return AIRatio{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode AI ratio")
	}
	return ratio, nil
}

func readPayload(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document")
	}
	payload, err := unwrap(data)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "empty document")
	}
	return payload, nil
}

// ImportSummary reads the summary document at path.
func ImportSummary(path string) (*Summary, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSummary(f)
}

// ImportAIRatio reads the AI ratio document at path.
func ImportAIRatio(path string) (AIRatio, error) {
	f, err := open(path)
	if err != nil {
		return AIRatio{}, err
	}
	defer f.Close()
	return ReadAIRatio(f)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, nil
}
