package datatables

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseJSON decodes the JSON form of a server-side processing request into
// a Request. DataTables sends this shape when the table is configured to
// submit its request as a JSON body instead of form parameters:
//
//	{
//	  "draw": 1, "start": 0, "length": 10,
//	  "search": {"value": "", "regex": false},
//	  "order": [{"column": 0, "dir": "asc"}],
//	  "columns": [{"data": "name", "name": "", "searchable": true,
//	               "orderable": true, "search": {"value": "", "regex": false}}]
//	}
//
// Only malformed JSON is an error. Missing fields default the same way they
// do for form decoding, and the order of the columns array supplies the
// column indices.
func ParseJSON(data []byte) (*Request, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json request")
	}

	root := gjson.ParseBytes(data)
	req := NewRequest()

	if v := root.Get("draw"); v.Exists() {
		req.Draw = int(v.Int())
	}
	if v := root.Get("start"); v.Exists() {
		req.Start = int(v.Int())
	}
	if v := root.Get("length"); v.Exists() {
		req.Length = int(v.Int())
	}
	if v := root.Get("search.value"); v.Exists() {
		s := v.String()
		req.SearchValue = &s
	}
	req.SearchRegex = root.Get("search.regex").Bool()

	for i, col := range root.Get("columns").Array() {
		if v := col.Get("data"); v.Exists() {
			req.ColumnData[i] = v.String()
		}
		if v := col.Get("name"); v.Exists() {
			req.ColumnName[i] = v.String()
		}
		if v := col.Get("searchable"); v.Exists() {
			req.ColumnSearchable[i] = v.Bool()
		}
		if v := col.Get("orderable"); v.Exists() {
			req.ColumnOrderable[i] = v.Bool()
		}
		if v := col.Get("search.value"); v.Exists() {
			req.ColumnSearchValue[i] = v.String()
		}
		if v := col.Get("search.regex"); v.Exists() {
			req.ColumnSearchRegex[i] = v.Bool()
		}
	}

	for _, clause := range root.Get("order").Array() {
		col := clause.Get("column")
		if !col.Exists() {
			continue
		}
		dir := Asc
		if strings.EqualFold(clause.Get("dir").String(), dirDescending) {
			dir = Desc
		}
		req.Order = append(req.Order, Order{Column: int(col.Int()), Dir: dir})
	}

	return req, nil
}
