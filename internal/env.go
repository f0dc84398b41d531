package internal

import (
	"github.com/krotik/common/errorutil"
)

type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *token) interface{} {
	if value, ok := e.values[name.lexeme]; ok {
		return value
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	runtimeErr(undefinedVar(name), name)
	return nil
}

func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name *token, value interface{}) {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return
	}
	if e.enclosing != nil {
		e.enclosing.assign(name, value)
		return
	}
	runtimeErr(undefinedVar(name), name)
}

// ancestor walks exactly distance scopes up the chain
func (e *env) ancestor(distance int) *env {
	environment := e
	for i := 0; i < distance; i++ {
		errorutil.AssertTrue(environment.enclosing != nil, "scope chain shorter than resolved distance")
		environment = environment.enclosing
	}
	return environment
}

func (e *env) getAt(distance int, name string) interface{} {
	value, ok := e.ancestor(distance).values[name]
	errorutil.AssertTrue(ok, "variable not bound at resolved distance")
	return value
}

func (e *env) assignAt(distance int, name *token, value interface{}) {
	environment := e.ancestor(distance)
	_, ok := environment.values[name.lexeme]
	errorutil.AssertTrue(ok, "variable not bound at resolved distance")
	environment.values[name.lexeme] = value
}
