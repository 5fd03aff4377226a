// Package types holds the value-typed data type tag shared by the
// schema and expression models. It carries no arithmetic behavior —
// propagation and equality only, per the core's scope.
package types

// DataType is a closed tag identifying the value type of a column or
// expression.
type DataType int

const (
	Unknown DataType = iota
	Boolean
	Int
	Float
	Varchar
	Text
	Date
	Timestamp
	Decimal
	Null
)

var names = map[DataType]string{
	Unknown:   "unknown",
	Boolean:   "boolean",
	Int:       "int",
	Float:     "float",
	Varchar:   "varchar",
	Text:      "text",
	Date:      "date",
	Timestamp: "timestamp",
	Decimal:   "decimal",
	Null:      "null",
}

func (t DataType) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "unknown"
}
