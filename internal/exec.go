package internal

import (
	"fmt"

	"github.com/krotik/common/errorutil"
)

type exec struct {
	state *interpreterState

	globals *env
	env     *env

	// locals maps the id of a resolved expression to its scope distance
	locals map[int]int

	depth    int
	maxDepth int

	// returning is set by a return statement and stops every enclosing
	// block and loop until the function call takes the value
	returning bool
	returnVal interface{}
}

// interpret runs the statements of the current state, it returns false
// when a runtime error aborted the execution
func (e *exec) interpret() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			runErr, isRunErr := r.(*runtimeError)
			if !isRunErr {
				panic(r)
			}
			e.env = e.globals
			e.depth = 0
			e.takeReturn()
			e.state.runtimeError = runErr
			e.state.printRuntimeError()
			ok = false
		}
	}()
	for _, s := range e.state.stmts {
		s.accept(e)
	}
	return true
}

func (e *exec) resolve(id int, depth int) {
	e.locals[id] = depth
}

func (e *exec) executeBlock(stmts []stmt, env *env) {
	// A runtime fault skips the restore, interpret resets env to globals
	previous := e.env
	e.env = env
	for _, s := range stmts {
		s.accept(e)
		if e.returning {
			break
		}
	}
	e.env = previous
}

// takeReturn clears the pending return and hands back its value
func (e *exec) takeReturn() interface{} {
	value := e.returnVal
	e.returning = false
	e.returnVal = nil
	return value
}

func (e *exec) lookUpVariable(name *token, id int) interface{} {
	if distance, ok := e.locals[id]; ok {
		return e.env.getAt(distance, name.lexeme)
	}
	return e.globals.get(name)
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	e.executeBlock(stmt.stmts, newEnv(e.env))
	return nil
}

func (e *exec) visitClassStmt(stmt *classStmt) R {
	var superclass *loxClass
	if stmt.superclass != nil {
		class, isClass := stmt.superclass.accept(e).(*loxClass)
		if !isClass {
			runtimeErr(errSuperclassNotClass, stmt.superclass.name)
		}
		superclass = class
	}

	e.env.define(stmt.name.lexeme, nil)

	if superclass != nil {
		e.env = newEnv(e.env)
		e.env.define("super", superclass)
	}

	class := &loxClass{
		name:       stmt.name.lexeme,
		superclass: superclass,
		methods:    make(map[string]*loxFunction),
	}
	for _, method := range stmt.methods {
		class.methods[method.name.lexeme] = &loxFunction{
			declaration:   method,
			closure:       e.env,
			isInitializer: method.name.lexeme == "init",
		}
	}

	if superclass != nil {
		e.env = e.env.enclosing
	}

	e.env.assign(stmt.name, class)
	return nil
}

func (e *exec) visitExpressionStmt(stmt *expressionStmt) R {
	stmt.expression.accept(e)
	return nil
}

func (e *exec) visitFunctionStmt(stmt *functionStmt) R {
	e.env.define(stmt.name.lexeme, &loxFunction{
		declaration: stmt,
		closure:     e.env,
	})
	return nil
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if truthy(stmt.condition.accept(e)) {
		stmt.thenBranch.accept(e)
	} else if stmt.elseBranch != nil {
		stmt.elseBranch.accept(e)
	}
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	e.state.logger.Println(stringify(stmt.expression.accept(e)))
	return nil
}

func (e *exec) visitReturnStmt(stmt *returnStmt) R {
	var value interface{}
	if stmt.value != nil {
		value = stmt.value.accept(e)
	}
	e.returnVal = value
	e.returning = true
	return nil
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var val interface{}
	if stmt.initializer != nil {
		val = stmt.initializer.accept(e)
	}
	e.env.define(stmt.name.lexeme, val)
	return nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) R {
	for truthy(stmt.condition.accept(e)) {
		stmt.body.accept(e)
		if e.returning {
			break
		}
	}
	return nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	value := expr.value.accept(e)
	if distance, ok := e.locals[expr.id]; ok {
		e.env.assignAt(distance, expr.name, value)
	} else {
		e.globals.assign(expr.name, value)
	}
	return value
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := expr.left.accept(e)
	right := expr.right.accept(e)

	switch expr.operator.token {
	case tkEqualEqual:
		return loxBool(isEqual(left, right))
	case tkBangEqual:
		return loxBool(!isEqual(left, right))
	}

	op, ok := binaryOperators[expr.operator.token]
	errorutil.AssertTrue(ok, "binary expression with unknown operator")

	result, err := applyOperator(op, left, right)
	if err != nil {
		runtimeErr(operatorErrors[op], expr.operator)
	}
	return result
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := expr.callee.accept(e)

	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		arguments[i] = expr.arguments[i].accept(e)
	}

	fn, isFn := callee.(callable)
	if !isFn {
		runtimeErr(errOnlyFunction, expr.paren)
	}
	if len(arguments) != fn.arity() {
		runtimeErr(invalidNumberArguments(fn.arity(), len(arguments)), expr.paren)
	}

	if e.maxDepth > 0 && e.depth >= e.maxDepth {
		runtimeErr(errStackOverflow, expr.paren)
	}
	e.depth++
	result := fn.call(e, arguments)
	e.depth--
	return result
}

func (e *exec) visitGetExpr(expr *getExpr) R {
	instance, isInstance := expr.object.accept(e).(*loxInstance)
	if !isInstance {
		runtimeErr(errOnlyInstanceProps, expr.name)
	}
	return instance.get(expr.name)
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(e)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *exec) visitLogicalExpr(expr *logicalExpr) R {
	left := expr.left.accept(e)
	if expr.operator.token == tkOr {
		if truthy(left) {
			return left
		}
	} else if !truthy(left) {
		return left
	}
	return expr.right.accept(e)
}

func (e *exec) visitSetExpr(expr *setExpr) R {
	instance, isInstance := expr.object.accept(e).(*loxInstance)
	if !isInstance {
		runtimeErr(errOnlyInstanceFields, expr.name)
	}
	value := expr.value.accept(e)
	instance.set(expr.name, value)
	return value
}

func (e *exec) visitSuperExpr(expr *superExpr) R {
	distance, ok := e.locals[expr.id]
	errorutil.AssertTrue(ok, "unresolved super expression")

	superclass := e.env.getAt(distance, "super").(*loxClass)
	// this is always bound one scope below super
	object := e.env.getAt(distance-1, "this").(*loxInstance)

	method := superclass.findMethod(expr.method.lexeme)
	if method == nil {
		runtimeErr(undefinedProp(expr.method), expr.method)
	}
	return method.bind(object)
}

func (e *exec) visitThisExpr(expr *thisExpr) R {
	return e.lookUpVariable(expr.keyword, expr.id)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := expr.right.accept(e)
	switch expr.operator.token {
	case tkBang:
		return loxBool(!truthy(value))
	case tkMinus:
		result, err := applyOperator(opNeg, value)
		if err != nil {
			runtimeErr(operatorErrors[opNeg], expr.operator)
		}
		return result
	}
	return nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	return e.lookUpVariable(expr.name, expr.id)
}

// stringify renders a runtime value the way print shows it
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	if str, ok := value.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", value)
}
