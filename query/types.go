package query

// Operator is a comparison operator used by the filter
type Operator string

const (
	OpGreater Operator = ">" // numeric or lexicographic greater-than
	OpLess    Operator = "<" // numeric or lexicographic less-than
	OpEqual   Operator = "=" // numeric or string equality
)

// operatorChars lists the characters recognised as operators in a condition token
const operatorChars = "<>="

// Condition is an unvalidated filter triple as read from the command line
type Condition struct {
	Column   string
	Operator Operator
	Value    string
}

// OrderSpec describes a single-column sort
type OrderSpec struct {
	Column string
	Desc   bool
}

// AggregationRequest names a column and the aggregation to compute over it
type AggregationRequest struct {
	Column   string
	Function string
}

// Stages collects the optional pipeline stages. A nil field means the stage
// is not requested.
type Stages struct {
	Where     *Condition
	OrderBy   *OrderSpec
	Aggregate *AggregationRequest
}
