package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type loxNumber float64

func applyOpToNumbers(op func(x, y float64) interface{}, arguments ...interface{}) (interface{}, error) {
	x := arguments[0].(loxNumber)
	y, ok := arguments[1].(loxNumber)
	if !ok {
		return nil, errOperandType
	}
	return op(float64(x), float64(y)), nil
}

var numberBinaryOperations = map[operator]func(x, y float64) interface{}{
	opAdd: func(x, y float64) interface{} {
		return loxNumber(x + y)
	},
	opSub: func(x, y float64) interface{} {
		return loxNumber(x - y)
	},
	opDiv: func(x, y float64) interface{} {
		return loxNumber(x / y)
	},
	opMul: func(x, y float64) interface{} {
		return loxNumber(x * y)
	},
	opLt: func(x, y float64) interface{} {
		return loxBool(x < y)
	},
	opLte: func(x, y float64) interface{} {
		return loxBool(x <= y)
	},
	opGt: func(x, y float64) interface{} {
		return loxBool(x > y)
	},
	opGte: func(x, y float64) interface{} {
		return loxBool(x >= y)
	},
}

func (n loxNumber) getOperator(op operator) (operatorApply, error) {
	if op == opNeg {
		return func(arguments ...interface{}) (interface{}, error) {
			return -n, nil
		}, nil
	}
	if apply, ok := numberBinaryOperations[op]; ok {
		return func(arguments ...interface{}) (interface{}, error) {
			return applyOpToNumbers(apply, n, arguments[0])
		}, nil
	}
	return nil, errUndefinedOp
}

func (n loxNumber) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return formatNumber(f)
}

// formatNumber prints the shortest digits that round-trip. Magnitudes from
// 1e15 up or below 1e-4 switch to exponent form, as in 1E+21 and 1E-07.
func formatNumber(f float64) string {
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mark := strings.IndexByte(sci, 'e')
	exp, _ := strconv.Atoi(sci[mark+1:])
	if f != 0 && (exp >= 15 || exp < -4) {
		return fmt.Sprintf("%sE%+03d", sci[:mark], exp)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
