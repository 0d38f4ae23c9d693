package datatables

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, res *Response) map[string]any {
	t.Helper()

	payload, err := res.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	return decoded
}

func TestResponseJSON(t *testing.T) {
	res := NewResponse(5, 100, 20, [][]string{{"a", "b"}, {"c", "d"}})

	decoded := decodeResponse(t, res)

	assert.Equal(t, float64(5), decoded["draw"])
	assert.Equal(t, float64(100), decoded["recordsTotal"])
	assert.Equal(t, float64(20), decoded["recordsFiltered"])
	assert.Equal(t, []any{[]any{"a", "b"}, []any{"c", "d"}}, decoded["data"])
	assert.NotContains(t, decoded, "error")
}

func TestResponseJSONWithError(t *testing.T) {
	res := NewResponse(5, 100, 20, [][]string{{"a", "b"}}).WithError("boom")

	decoded := decodeResponse(t, res)

	assert.Equal(t, "boom", decoded["error"])
}

func TestResponseJSONNilDataSerializesAsEmptyArray(t *testing.T) {
	res := NewResponse(1, 0, 0, nil)

	decoded := decodeResponse(t, res)

	assert.Equal(t, []any{}, decoded["data"])
}

func TestResponseJSONAdditionalData(t *testing.T) {
	res := NewResponse(1, 2, 2, [][]string{{"x"}}).
		WithData("currency", "EUR").
		WithData("page", 3)

	decoded := decodeResponse(t, res)

	assert.Equal(t, "EUR", decoded["currency"])
	assert.Equal(t, float64(3), decoded["page"])
}

func TestResponseJSONReservedFieldsWin(t *testing.T) {
	res := NewResponse(7, 1, 1, [][]string{{"x"}}).
		WithData("draw", "spoofed").
		WithData("data", "spoofed")

	decoded := decodeResponse(t, res)

	assert.Equal(t, float64(7), decoded["draw"])
	assert.Equal(t, []any{[]any{"x"}}, decoded["data"])
}

func TestResponseJSONSerializationErrorPropagates(t *testing.T) {
	res := NewResponse(1, 0, 0, nil).WithData("bad", make(chan int))

	_, err := res.JSON()
	assert.Error(t, err)
}

func TestResponseJSONRowOrderPreserved(t *testing.T) {
	rows := [][]string{{"3", "c"}, {"1", "a"}, {"2", "b"}}
	res := NewResponse(1, 3, 3, rows)

	payload, err := res.JSON()
	require.NoError(t, err)

	var decoded struct {
		Data [][]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, rows, decoded.Data)
}
