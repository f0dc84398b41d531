package internal

type stmt interface {
	accept(stmtVisitor) R
}

type stmtVisitor interface {
	visitBlockStmt(stmt *blockStmt) R
	visitClassStmt(stmt *classStmt) R
	visitExpressionStmt(stmt *expressionStmt) R
	visitFunctionStmt(stmt *functionStmt) R
	visitIfStmt(stmt *ifStmt) R
	visitPrintStmt(stmt *printStmt) R
	visitReturnStmt(stmt *returnStmt) R
	visitVarStmt(stmt *varStmt) R
	visitWhileStmt(stmt *whileStmt) R
}

type blockStmt struct {
	stmts []stmt
}

func (s *blockStmt) accept(visitor stmtVisitor) R {
	return visitor.visitBlockStmt(s)
}

type classStmt struct {
	name       *token
	superclass *variableExpr
	methods    []*functionStmt
}

func (s *classStmt) accept(visitor stmtVisitor) R {
	return visitor.visitClassStmt(s)
}

type expressionStmt struct {
	expression expr
}

func (s *expressionStmt) accept(visitor stmtVisitor) R {
	return visitor.visitExpressionStmt(s)
}

type functionStmt struct {
	name   *token
	params []*token
	body   []stmt
}

func (s *functionStmt) accept(visitor stmtVisitor) R {
	return visitor.visitFunctionStmt(s)
}

type ifStmt struct {
	condition  expr
	thenBranch stmt
	elseBranch stmt
}

func (s *ifStmt) accept(visitor stmtVisitor) R {
	return visitor.visitIfStmt(s)
}

type printStmt struct {
	expression expr
}

func (s *printStmt) accept(visitor stmtVisitor) R {
	return visitor.visitPrintStmt(s)
}

type returnStmt struct {
	keyword *token
	value   expr
}

func (s *returnStmt) accept(visitor stmtVisitor) R {
	return visitor.visitReturnStmt(s)
}

type varStmt struct {
	name        *token
	initializer expr
}

func (s *varStmt) accept(visitor stmtVisitor) R {
	return visitor.visitVarStmt(s)
}

type whileStmt struct {
	condition expr
	body      stmt
}

func (s *whileStmt) accept(visitor stmtVisitor) R {
	return visitor.visitWhileStmt(s)
}
