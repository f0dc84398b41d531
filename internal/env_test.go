package internal

import (
	"testing"
)

func TestEnv(t *testing.T) {
	name := &token{token: tkIdentifier, lexeme: "a", line: 1}

	globals := newEnv(nil)
	globals.define("a", loxNumber(1))

	inner := newEnv(newEnv(globals))
	if v := inner.get(name); v != loxNumber(1) {
		t.Errorf("Expected 1, got %v", v)
	}

	inner.assign(name, loxNumber(2))
	if v := globals.getAt(0, "a"); v != loxNumber(2) {
		t.Errorf("Expected 2, got %v", v)
	}

	inner.define("a", nil)
	if v := inner.getAt(0, "a"); v != nil {
		t.Errorf("Expected nil, got %v", v)
	}
	if v := inner.getAt(2, "a"); v != loxNumber(2) {
		t.Errorf("Expected 2, got %v", v)
	}

	inner.assignAt(2, name, loxNumber(3))
	if v := globals.get(name); v != loxNumber(3) {
		t.Errorf("Expected 3, got %v", v)
	}
	if v := inner.get(name); v != nil {
		t.Errorf("Expected the shadowing nil, got %v", v)
	}
}

func TestEnvUndefined(t *testing.T) {
	name := &token{token: tkIdentifier, lexeme: "missing", line: 7}

	for _, op := range []func(e *env){
		func(e *env) { e.get(name) },
		func(e *env) { e.assign(name, nil) },
	} {
		func() {
			defer func() {
				runErr, ok := recover().(*runtimeError)
				if !ok {
					t.Fatal("Expected a runtime error")
				}
				if runErr.Error() != "Undefined variable 'missing'.\n[line 7]" {
					t.Errorf("Unexpected error %q", runErr.Error())
				}
			}()
			op(newEnv(newEnv(nil)))
		}()
	}
}

func TestEnvResolvedDistance(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("A distance past the global scope should panic")
		}
	}()
	newEnv(nil).getAt(1, "a")
}
