package datatables

import (
	"encoding/json"
)

// Response is the payload DataTables expects back from a server-side
// processing request.
//
// Fields:
//   - Draw: The draw counter of the request this response answers. Copy it
//     from the decoded request; reflecting raw client input instead opens
//     an XSS vector.
//   - RecordsTotal: Total records before filtering.
//   - RecordsFiltered: Total records after filtering, not just the page
//     being returned.
//   - Data: The rows to display, one cell value per column. Row and cell
//     order are preserved exactly; nil serializes as an empty array.
//   - Error: An error message to show the user. The field is omitted from
//     the serialized form entirely when empty.
type Response struct {
	Draw            int
	RecordsTotal    int
	RecordsFiltered int
	Data            [][]string
	Error           string

	additionalData map[string]any
}

// NewResponse returns a Response for the given draw counter, record counts
// and row data.
func NewResponse(draw, recordsTotal, recordsFiltered int, data [][]string) *Response {
	return &Response{
		Draw:            draw,
		RecordsTotal:    recordsTotal,
		RecordsFiltered: recordsFiltered,
		Data:            data,
	}
}

// WithError sets the error message shown to the user and returns the
// updated response.
func (res *Response) WithError(msg string) *Response {
	res.Error = msg
	return res
}

// WithData attaches an additional top-level field to the serialized
// response and returns the updated response. The reserved field names of
// the wire contract always win over additional data with the same key.
func (res *Response) WithData(key string, value any) *Response {
	if res.additionalData == nil {
		res.additionalData = make(map[string]any)
	}
	res.additionalData[key] = value
	return res
}

// MarshalJSON implements json.Marshaler using the wire field names.
func (res *Response) MarshalJSON() ([]byte, error) {
	payload := make(map[string]any, len(res.additionalData)+5)
	for k, v := range res.additionalData {
		payload[k] = v
	}

	data := res.Data
	if data == nil {
		data = [][]string{}
	}

	payload[fieldDraw] = res.Draw
	payload[fieldRecordsTotal] = res.RecordsTotal
	payload[fieldRecordsFiltered] = res.RecordsFiltered
	payload[fieldData] = data
	if res.Error != "" {
		payload[fieldError] = res.Error
	}

	return json.Marshal(payload)
}

// JSON serializes the response to UTF-8 JSON text. Serialization failures,
// such as non-encodable additional data, are returned to the caller.
func (res *Response) JSON() ([]byte, error) {
	return json.Marshal(res)
}
