package datatables

import (
	"errors"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Direction is the ordering direction of a single order clause.
type Direction int

const (
	// Asc sorts in ascending order. It is the default: any direction
	// string other than a case-insensitive "desc" decodes to Asc.
	Asc Direction = iota
	// Desc sorts in descending order.
	Desc
)

// String returns the wire representation of the direction.
func (d Direction) String() string {
	if d == Desc {
		return dirDescending
	}
	return dirAscending
}

// Order is one clause of a multi-column sort.
//
// Fields:
//   - Column: The index of the column to be ordered, referencing the
//     per-column maps of the Request.
//   - Dir: The direction of ordering.
type Order struct {
	Column int
	Dir    Direction
}

// Request holds the parameters DataTables sends to the server with a
// server-side processing request.
//
// Column attributes arrive as independent indexed parameters, so they are
// kept as independent maps keyed by column index. Indices are taken
// verbatim from the parameter names: they need not be contiguous or start
// at zero, and an index may appear in any subset of the maps. Use Column
// or Columns for an assembled per-index view.
//
// Note that Draw is client-controlled. Callers echoing it back should
// treat it strictly as an integer rather than reflecting raw input, to
// avoid handing an XSS vector to the client.
type Request struct {
	// Draw is the draw counter, used by DataTables to match asynchronous
	// responses to requests.
	Draw int
	// Start is the zero-based index of the first record to return.
	Start int
	// Length is the number of records to return. -1 means all records.
	Length int

	// SearchValue is the global search value, applied to all searchable
	// columns. It is nil when the parameter was never sent, which is
	// distinct from an empty search string.
	SearchValue *string
	// SearchRegex is true when the global search value should be treated
	// as a regular expression.
	SearchRegex bool

	// Order lists the ordering clauses in their declared precedence.
	Order []Order

	// ColumnData maps a column index to the column's data source.
	ColumnData map[int]string
	// ColumnName maps a column index to the column's name.
	ColumnName map[int]string
	// ColumnSearchable maps a column index to its searchable flag.
	ColumnSearchable map[int]bool
	// ColumnOrderable maps a column index to its orderable flag.
	ColumnOrderable map[int]bool
	// ColumnSearchValue maps a column index to its column-local search
	// value.
	ColumnSearchValue map[int]string
	// ColumnSearchRegex maps a column index to its column-local regex
	// flag.
	ColumnSearchRegex map[int]bool
}

// Compiled key patterns, in match priority order.
var (
	reColumnSearchValue = regexp.MustCompile(patternColumnSearchValue)
	reColumnSearchRegex = regexp.MustCompile(patternColumnSearchRegex)
	reColumnOrderable   = regexp.MustCompile(patternColumnOrderable)
	reColumnData        = regexp.MustCompile(patternColumnData)
	reColumnName        = regexp.MustCompile(patternColumnName)
	reColumnSearchable  = regexp.MustCompile(patternColumnSearchable)
	reOrderDir          = regexp.MustCompile(patternOrderDir)
	reOrderColumn       = regexp.MustCompile(patternOrderColumn)
)

// NewRequest returns an empty Request with all per-column maps allocated.
func NewRequest() *Request {
	return &Request{
		ColumnData:        make(map[int]string),
		ColumnName:        make(map[int]string),
		ColumnSearchable:  make(map[int]bool),
		ColumnOrderable:   make(map[int]bool),
		ColumnSearchValue: make(map[int]string),
		ColumnSearchRegex: make(map[int]bool),
	}
}

// orderClause accumulates the order[i][column] and order[i][dir] keys that
// together describe one ordering clause.
type orderClause struct {
	column    int
	hasColumn bool
	desc      bool
}

// ParseValues decodes a flat parameter map, as produced by URL-encoded form
// or query string decoding, into a Request.
//
// Decoding is permissive and total: unrecognized keys are skipped, values
// that fail to parse as integers leave the field at its zero value, and
// boolean strings other than "true" decode to false. Only the first value
// of a multi-valued parameter is consulted. The result does not depend on
// the iteration order of the map; ordering clauses are assembled by their
// declared clause index.
func ParseValues(values url.Values) *Request {
	req := NewRequest()
	clauses := make(map[int]*orderClause)

	for key, list := range values {
		value, ok := firstValue(list)
		if !ok {
			continue
		}

		switch key {
		case paramDraw:
			setInt(&req.Draw, value)
		case paramStart:
			setInt(&req.Start, value)
		case paramLength:
			setInt(&req.Length, value)
		case paramSearchValue:
			v := value
			req.SearchValue = &v
		case paramSearchRegex:
			req.SearchRegex = parseFlag(value)
		default:
			index, ok := indexInKey(key)
			if !ok {
				continue
			}
			switch {
			case reColumnSearchValue.MatchString(key):
				req.ColumnSearchValue[index] = value
			case reColumnSearchRegex.MatchString(key):
				req.ColumnSearchRegex[index] = parseFlag(value)
			case reColumnOrderable.MatchString(key):
				req.ColumnOrderable[index] = parseFlag(value)
			case reColumnData.MatchString(key):
				req.ColumnData[index] = value
			case reColumnName.MatchString(key):
				req.ColumnName[index] = value
			case reColumnSearchable.MatchString(key):
				req.ColumnSearchable[index] = parseFlag(value)
			case reOrderDir.MatchString(key):
				orderClauseAt(clauses, index).desc = strings.EqualFold(value, dirDescending)
			case reOrderColumn.MatchString(key):
				if col, err := strconv.Atoi(value); err == nil {
					c := orderClauseAt(clauses, index)
					c.column = col
					c.hasColumn = true
				}
			}
		}
	}

	req.Order = assembleOrder(clauses)
	return req
}

// ParseRequest decodes the query string and, for POST requests, the
// URL-encoded body of an HTTP request. Body read failures are ignored; the
// request decodes from whatever parameters were available.
func ParseRequest(r *http.Request) *Request {
	_ = r.ParseForm()
	return ParseValues(r.Form)
}

// orderClauseAt returns the accumulator for ordering clause i, allocating
// it on first use.
func orderClauseAt(clauses map[int]*orderClause, i int) *orderClause {
	c, ok := clauses[i]
	if !ok {
		c = &orderClause{}
		clauses[i] = c
	}
	return c
}

// assembleOrder turns the per-clause accumulators into the ordered Order
// slice. Clauses are emitted by ascending clause index so that multi-column
// sorts keep their declared precedence. A clause whose order[i][column] key
// never arrived names no column and is dropped.
func assembleOrder(clauses map[int]*orderClause) []Order {
	if len(clauses) == 0 {
		return nil
	}

	indexes := make([]int, 0, len(clauses))
	for i := range clauses {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	var order []Order
	for _, i := range indexes {
		c := clauses[i]
		if !c.hasColumn {
			continue
		}
		dir := Asc
		if c.desc {
			dir = Desc
		}
		order = append(order, Order{Column: c.column, Dir: dir})
	}
	return order
}

// Validate checks the decoded request before it is acted on. A request
// with a zero draw counter and no column definitions is rejected as not
// coming from a DataTables client. If a global regex search is requested,
// the pattern must compile.
func (req *Request) Validate() error {
	if req.Draw == 0 && len(req.ColumnData) == 0 {
		return errors.New("invalid request")
	}

	if req.SearchRegex && req.SearchValue != nil {
		if _, err := regexp.Compile(*req.SearchValue); err != nil {
			return errors.New("invalid regex search pattern")
		}
	}

	return nil
}
