package filter

// Op is a numeric comparison operator.
type Op string

// Comparison operators.
const (
	OpEQ  Op = "="
	OpNE  Op = "!="
	OpLT  Op = "<"
	OpGT  Op = ">"
	OpLTE Op = "<="
	OpGTE Op = ">="
)

var opAliases = map[string]Op{
	"":   OpEQ,
	"=":  OpEQ,
	"==": OpEQ,
	"eq": OpEQ,
	"!":  OpNE,
	"!=": OpNE,
	"ne": OpNE,
	"<":  OpLT,
	"lt": OpLT,
	">":  OpGT,
	"gt": OpGT,
	"<=": OpLTE,
	"le": OpLTE,
	">=": OpGTE,
	"ge": OpGTE,
}

// ParseOp resolves an operator spelling. An empty string means equality.
func ParseOp(s string) (Op, bool) {
	op, ok := opAliases[s]
	return op, ok
}

// IsValid checks if the operator is one of the six supported comparisons.
func (o Op) IsValid() bool {
	switch o {
	case OpEQ, OpNE, OpLT, OpGT, OpLTE, OpGTE:
		return true
	}
	return false
}

// Compare evaluates "a op b".
func (o Op) Compare(a, b float64) bool {
	switch o {
	case OpEQ:
		return a == b
	case OpNE:
		return a != b
	case OpLT:
		return a < b
	case OpGT:
		return a > b
	case OpLTE:
		return a <= b
	case OpGTE:
		return a >= b
	}
	return false
}
