package internal

type loxString string

func applyOpToStrings(op func(x, y string) interface{}, arguments ...interface{}) (interface{}, error) {
	x := arguments[0].(loxString)
	y, ok := arguments[1].(loxString)
	if !ok {
		return nil, errOperandType
	}
	return op(string(x), string(y)), nil
}

var stringBinaryOperations = map[operator]func(x, y string) interface{}{
	opAdd: func(x, y string) interface{} {
		return loxString(x + y)
	},
}

func (s loxString) getOperator(op operator) (operatorApply, error) {
	if apply, ok := stringBinaryOperations[op]; ok {
		return func(arguments ...interface{}) (interface{}, error) {
			return applyOpToStrings(apply, s, arguments[0])
		}, nil
	}
	return nil, errUndefinedOp
}

func (s loxString) String() string {
	return string(s)
}
