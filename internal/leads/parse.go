package leads

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/url"
	"strings"
)

const maxMultipartMemory = 1 << 20

// ParseRawSubmission reads form fields from a JSON object, a urlencoded form
// or multipart form data. Unknown fields are kept; the validator ignores them.
func ParseRawSubmission(contentType string, body []byte) (RawSubmission, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		if strings.TrimSpace(contentType) != "" {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
		}
		mediaType = "application/json"
	}

	switch mediaType {
	case "application/json":
		return parseJSON(body)
	case "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		return fromValues(values), nil
	case "multipart/form-data":
		boundary := params["boundary"]
		if boundary == "" {
			return nil, fmt.Errorf("%w: missing multipart boundary", ErrMalformedBody)
		}
		form, err := multipart.NewReader(bytes.NewReader(body), boundary).ReadForm(maxMultipartMemory)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		defer form.RemoveAll()
		return fromValues(form.Value), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, mediaType)
	}
}

func parseJSON(body []byte) (RawSubmission, error) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	raw := make(RawSubmission, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case nil:
		case string:
			raw[k] = val
		default:
			return nil, fmt.Errorf("%w: field %q is not a string", ErrMalformedBody, k)
		}
	}
	return raw, nil
}

func fromValues(values map[string][]string) RawSubmission {
	raw := make(RawSubmission, len(values))
	for k, v := range values {
		if len(v) > 0 {
			raw[k] = v[0]
		}
	}
	return raw
}
