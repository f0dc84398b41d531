package internal

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// resolver computes the scope distance of every local variable reference
// and reports the static errors the parser can't see
type resolver struct {
	state *interpreterState
	exec  *exec

	// scopes maps names to whether their initializer has been resolved
	scopes []map[string]bool

	currentFunction functionType
	currentClass    classType
}

func newResolver(state *interpreterState, exec *exec) *resolver {
	return &resolver{
		state:  state,
		exec:   exec,
		scopes: make([]map[string]bool, 0),
	}
}

func (r *resolver) resolveStmts(stmts []stmt) {
	for _, s := range stmts {
		s.accept(r)
	}
}

func (r *resolver) resolveExpr(e expr) {
	e.accept(r)
}

func (r *resolver) resolveFunction(function *functionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range function.params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(function.body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) peekScope() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.peekScope()
	if _, declared := scope[name.lexeme]; declared {
		r.state.tokenError(errAlreadyDeclared, name)
	}
	scope[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peekScope()[name.lexeme] = true
}

// resolveLocal records the distance to the innermost scope declaring name,
// names not found are left to the globals
func (r *resolver) resolveLocal(id int, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.exec.resolve(id, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *resolver) visitBlockStmt(stmt *blockStmt) R {
	r.beginScope()
	r.resolveStmts(stmt.stmts)
	r.endScope()
	return nil
}

func (r *resolver) visitClassStmt(stmt *classStmt) R {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(stmt.name)
	r.define(stmt.name)

	if stmt.superclass != nil {
		if stmt.superclass.name.lexeme == stmt.name.lexeme {
			r.state.tokenError(errInheritFromSelf, stmt.superclass.name)
		}
		r.currentClass = classSubclass
		r.resolveExpr(stmt.superclass)

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range stmt.methods {
		declaration := fnMethod
		if method.name.lexeme == "init" {
			declaration = fnInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()

	if stmt.superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil
}

func (r *resolver) visitExpressionStmt(stmt *expressionStmt) R {
	r.resolveExpr(stmt.expression)
	return nil
}

func (r *resolver) visitFunctionStmt(stmt *functionStmt) R {
	r.declare(stmt.name)
	r.define(stmt.name)
	r.resolveFunction(stmt, fnFunction)
	return nil
}

func (r *resolver) visitIfStmt(stmt *ifStmt) R {
	r.resolveExpr(stmt.condition)
	stmt.thenBranch.accept(r)
	if stmt.elseBranch != nil {
		stmt.elseBranch.accept(r)
	}
	return nil
}

func (r *resolver) visitPrintStmt(stmt *printStmt) R {
	r.resolveExpr(stmt.expression)
	return nil
}

func (r *resolver) visitReturnStmt(stmt *returnStmt) R {
	if r.currentFunction == fnNone {
		r.state.tokenError(errTopLevelReturn, stmt.keyword)
	}
	if stmt.value != nil {
		if r.currentFunction == fnInitializer {
			r.state.tokenError(errInitializerReturn, stmt.keyword)
		}
		r.resolveExpr(stmt.value)
	}
	return nil
}

func (r *resolver) visitVarStmt(stmt *varStmt) R {
	r.declare(stmt.name)
	if stmt.initializer != nil {
		r.resolveExpr(stmt.initializer)
	}
	r.define(stmt.name)
	return nil
}

func (r *resolver) visitWhileStmt(stmt *whileStmt) R {
	r.resolveExpr(stmt.condition)
	stmt.body.accept(r)
	return nil
}

func (r *resolver) visitAssignExpr(expr *assignExpr) R {
	r.resolveExpr(expr.value)
	r.resolveLocal(expr.id, expr.name)
	return nil
}

func (r *resolver) visitBinaryExpr(expr *binaryExpr) R {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitCallExpr(expr *callExpr) R {
	r.resolveExpr(expr.callee)
	for _, argument := range expr.arguments {
		r.resolveExpr(argument)
	}
	return nil
}

func (r *resolver) visitGetExpr(expr *getExpr) R {
	r.resolveExpr(expr.object)
	return nil
}

func (r *resolver) visitGroupingExpr(expr *groupingExpr) R {
	r.resolveExpr(expr.expression)
	return nil
}

func (r *resolver) visitLiteralExpr(expr *literalExpr) R {
	return nil
}

func (r *resolver) visitLogicalExpr(expr *logicalExpr) R {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitSetExpr(expr *setExpr) R {
	r.resolveExpr(expr.value)
	r.resolveExpr(expr.object)
	return nil
}

func (r *resolver) visitSuperExpr(expr *superExpr) R {
	if r.currentClass == classNone {
		r.state.tokenError(errSuperOutsideClass, expr.keyword)
	} else if r.currentClass != classSubclass {
		r.state.tokenError(errSuperWithoutSuperclass, expr.keyword)
	}
	r.resolveLocal(expr.id, expr.keyword)
	return nil
}

func (r *resolver) visitThisExpr(expr *thisExpr) R {
	if r.currentClass == classNone {
		r.state.tokenError(errThisOutsideClass, expr.keyword)
		return nil
	}
	r.resolveLocal(expr.id, expr.keyword)
	return nil
}

func (r *resolver) visitUnaryExpr(expr *unaryExpr) R {
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitVariableExpr(expr *variableExpr) R {
	if len(r.scopes) != 0 {
		if defined, declared := r.peekScope()[expr.name.lexeme]; declared && !defined {
			r.state.tokenError(errReadInInitializer, expr.name)
		}
	}
	r.resolveLocal(expr.id, expr.name)
	return nil
}
