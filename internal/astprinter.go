package internal

import (
	"fmt"
	"strings"
)

//R generic type
type R interface{}

// printTree renders statements as parenthesized prefix expressions,
// one statement per line
func printTree(stmts []stmt) string {
	out := ""
	for _, st := range stmts {
		out += st.accept(astPrinter{}).(string) + "\n"
	}
	return out
}

type astPrinter struct{}

func (v astPrinter) parenthesize(name string, parts ...interface{}) string {
	out := "(" + name
	for _, part := range parts {
		switch p := part.(type) {
		case expr:
			out += " " + p.accept(v).(string)
		case stmt:
			out += " " + p.accept(v).(string)
		default:
			out += fmt.Sprintf(" %v", p)
		}
	}
	return out + ")"
}

func (v astPrinter) visitBlockStmt(stmt *blockStmt) R {
	parts := make([]interface{}, len(stmt.stmts))
	for i, s := range stmt.stmts {
		parts[i] = s
	}
	return v.parenthesize("scope", parts...)
}

func (v astPrinter) visitClassStmt(stmt *classStmt) R {
	parts := []interface{}{stmt.name.lexeme}
	if stmt.superclass != nil {
		parts = append(parts, "<", stmt.superclass.name.lexeme)
	}
	for _, method := range stmt.methods {
		parts = append(parts, method)
	}
	return v.parenthesize("class", parts...)
}

func (v astPrinter) visitExpressionStmt(stmt *expressionStmt) R {
	return stmt.expression.accept(v)
}

func (v astPrinter) visitFunctionStmt(stmt *functionStmt) R {
	params := make([]string, len(stmt.params))
	for i, param := range stmt.params {
		params[i] = param.lexeme
	}
	parts := []interface{}{stmt.name.lexeme, "(" + strings.Join(params, ", ") + ")"}
	for _, s := range stmt.body {
		parts = append(parts, s)
	}
	return v.parenthesize("fun", parts...)
}

func (v astPrinter) visitIfStmt(stmt *ifStmt) R {
	if stmt.elseBranch != nil {
		return v.parenthesize("if", stmt.condition, stmt.thenBranch, stmt.elseBranch)
	}
	return v.parenthesize("if", stmt.condition, stmt.thenBranch)
}

func (v astPrinter) visitPrintStmt(stmt *printStmt) R {
	return v.parenthesize("print", stmt.expression)
}

func (v astPrinter) visitReturnStmt(stmt *returnStmt) R {
	if stmt.value == nil {
		return "(return)"
	}
	return v.parenthesize("return", stmt.value)
}

func (v astPrinter) visitVarStmt(stmt *varStmt) R {
	if stmt.initializer == nil {
		return v.parenthesize("var", stmt.name.lexeme)
	}
	return v.parenthesize("var", stmt.name.lexeme, stmt.initializer)
}

func (v astPrinter) visitWhileStmt(stmt *whileStmt) R {
	return v.parenthesize("while", stmt.condition, stmt.body)
}

func (v astPrinter) visitAssignExpr(expr *assignExpr) R {
	return v.parenthesize("=", expr.name.lexeme, expr.value)
}

func (v astPrinter) visitBinaryExpr(expr *binaryExpr) R {
	return v.parenthesize(expr.operator.lexeme, expr.left, expr.right)
}

func (v astPrinter) visitCallExpr(expr *callExpr) R {
	parts := []interface{}{expr.callee}
	for _, argument := range expr.arguments {
		parts = append(parts, argument)
	}
	return v.parenthesize("call", parts...)
}

func (v astPrinter) visitGetExpr(expr *getExpr) R {
	return v.parenthesize(".", expr.object, expr.name.lexeme)
}

func (v astPrinter) visitGroupingExpr(expr *groupingExpr) R {
	return v.parenthesize("group", expr.expression)
}

func (v astPrinter) visitLiteralExpr(expr *literalExpr) R {
	if str, isString := expr.value.(loxString); isString {
		return "\"" + string(str) + "\""
	}
	return stringify(expr.value)
}

func (v astPrinter) visitLogicalExpr(expr *logicalExpr) R {
	return v.parenthesize(expr.operator.lexeme, expr.left, expr.right)
}

func (v astPrinter) visitSetExpr(expr *setExpr) R {
	return v.parenthesize("=", v.parenthesize(".", expr.object, expr.name.lexeme), expr.value)
}

func (v astPrinter) visitSuperExpr(expr *superExpr) R {
	return v.parenthesize("super", expr.method.lexeme)
}

func (v astPrinter) visitThisExpr(expr *thisExpr) R {
	return "this"
}

func (v astPrinter) visitUnaryExpr(expr *unaryExpr) R {
	return v.parenthesize(expr.operator.lexeme, expr.right)
}

func (v astPrinter) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}
