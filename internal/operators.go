package internal

import "math"

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opNeg operator = "neg"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

type operatorApply func(arguments ...interface{}) (interface{}, error)

// operable is implemented by the values that support arithmetic or ordering
type operable interface {
	getOperator(op operator) (operatorApply, error)
}

// operatorErrors maps each operator to the fault reported when its
// operands have the wrong types
var operatorErrors = map[operator]error{
	opAdd: errNumbersOrStrings,
	opSub: errOnlyNumbers,
	opDiv: errOnlyNumbers,
	opMul: errOnlyNumbers,
	opNeg: errOnlyNumber,
	opLt:  errOnlyNumbers,
	opLte: errOnlyNumbers,
	opGt:  errOnlyNumbers,
	opGte: errOnlyNumbers,
}

var binaryOperators = map[tokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

// applyOperator looks up op on the first operand and applies it to the rest
func applyOperator(op operator, operands ...interface{}) (interface{}, error) {
	value, ok := operands[0].(operable)
	if !ok {
		return nil, errUndefinedOp
	}
	apply, err := value.getOperator(op)
	if err != nil {
		return nil, err
	}
	return apply(operands[1:]...)
}

func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(loxBool); isBool {
		return bool(valueBool)
	}
	return true
}

func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return false
	}
	// NaN equals itself
	if x, isNumber := a.(loxNumber); isNumber {
		if y, isNumber := b.(loxNumber); isNumber && math.IsNaN(float64(x)) && math.IsNaN(float64(y)) {
			return true
		}
	}
	return a == b
}
