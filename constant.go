package datatables

// Top-level parameter names sent by DataTables with every server-side
// processing request.
const (
	paramDraw        = "draw"
	paramStart       = "start"
	paramLength      = "length"
	paramSearchValue = "search[value]"
	paramSearchRegex = "search[regex]"
)

// Patterns for the indexed parameter names. Each shape carries exactly one
// bracketed decimal index: the column index for the columns[...] family and
// the ordering-clause index for the order[...] family. The patterns are
// anchored so that a key must match in full.
const (
	patternColumnSearchValue = `^columns\[\d+\]\[search\]\[value\]$`
	patternColumnSearchRegex = `^columns\[\d+\]\[search\]\[regex\]$`
	patternColumnOrderable   = `^columns\[\d+\]\[orderable\]$`
	patternColumnData        = `^columns\[\d+\]\[data\]$`
	patternColumnName        = `^columns\[\d+\]\[name\]$`
	patternColumnSearchable  = `^columns\[\d+\]\[searchable\]$`
	patternOrderDir          = `^order\[\d+\]\[dir\]$`
	patternOrderColumn       = `^order\[\d+\]\[column\]$`
)

// Constants for specifying order direction on the wire.
const (
	dirAscending  = "asc"  // Sort in ascending order.
	dirDescending = "desc" // Sort in descending order.
)

// Field names of the JSON response. These are part of the wire contract
// with the DataTables client and must not be renamed.
const (
	fieldDraw            = "draw"
	fieldRecordsTotal    = "recordsTotal"
	fieldRecordsFiltered = "recordsFiltered"
	fieldData            = "data"
	fieldError           = "error"
)
