package leads

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawSubmission_JSON(t *testing.T) {
	raw, err := ParseRawSubmission("application/json; charset=utf-8",
		[]byte(`{"name":"Jordan Smith","email":"jordan@example.com","phone":null,"message":"hello there"}`))

	require.NoError(t, err)
	assert.Equal(t, RawSubmission{
		"name":    "Jordan Smith",
		"email":   "jordan@example.com",
		"message": "hello there",
	}, raw)
}

func TestParseRawSubmission_EmptyContentTypeIsJSON(t *testing.T) {
	raw, err := ParseRawSubmission("", []byte(`{"name":"Jordan"}`))

	require.NoError(t, err)
	assert.Equal(t, "Jordan", raw["name"])
}

func TestParseRawSubmission_JSONRejectsNonStrings(t *testing.T) {
	_, err := ParseRawSubmission("application/json", []byte(`{"name":42}`))
	assert.ErrorIs(t, err, ErrMalformedBody)

	_, err = ParseRawSubmission("application/json", []byte(`["name"]`))
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestParseRawSubmission_URLEncoded(t *testing.T) {
	raw, err := ParseRawSubmission("application/x-www-form-urlencoded",
		[]byte("name=Jordan+Smith&email=jordan%40example.com&service=electrical&service=painting"))

	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", raw["name"])
	assert.Equal(t, "jordan@example.com", raw["email"])
	assert.Equal(t, "electrical", raw["service"], "first value wins")
}

func TestParseRawSubmission_Multipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Jordan Smith"))
	require.NoError(t, mw.WriteField("timeline", "two-weeks"))
	require.NoError(t, mw.Close())

	raw, err := ParseRawSubmission(mw.FormDataContentType(), buf.Bytes())

	require.NoError(t, err)
	assert.Equal(t, RawSubmission{"name": "Jordan Smith", "timeline": "two-weeks"}, raw)
}

func TestParseRawSubmission_MultipartWithoutBoundary(t *testing.T) {
	_, err := ParseRawSubmission("multipart/form-data", []byte("whatever"))
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestParseRawSubmission_Unsupported(t *testing.T) {
	_, err := ParseRawSubmission("text/xml", []byte("<lead/>"))
	assert.ErrorIs(t, err, ErrUnsupportedContentType)

	_, err = ParseRawSubmission("not a media type;;", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedContentType)
}
