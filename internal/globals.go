package internal

import "time"

func defineGlobals(e *env) {
	defineClock(e)
}

// defineClock adds clock(), the seconds elapsed since the Unix epoch
func defineClock(e *env) {
	e.define("clock", &nativeFn{
		name:       "clock",
		arityValue: 0,
		callFn: func(exec *exec, arguments []interface{}) interface{} {
			return loxNumber(float64(time.Now().UnixNano()) / float64(time.Second))
		},
	})
}
