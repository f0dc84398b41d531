package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/krotik/common/errorutil"
	"github.com/sirupsen/logrus"
)

// parseError is a static error found while scanning, parsing or resolving
type parseError struct {
	err   error
	line  int
	where string
}

func (e parseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.line, e.where, e.err)
}

// runtimeError aborts the execution of the current program
type runtimeError struct {
	token *token
	err   error
}

func (e *runtimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.err, e.token.line)
}

func (e *runtimeError) Unwrap() error {
	return e.err
}

// interpreterState stores the state of a single run
type interpreterState struct {
	errors       []parseError
	printed      int
	runtimeError *runtimeError

	source string
	tokens []token
	stmts  []stmt

	logger IPrinter
	log    logrus.FieldLogger
}

func (s *interpreterState) setError(err error, line int, where string) {
	s.errors = append(s.errors, parseError{
		err:   err,
		line:  line,
		where: where,
	})
	s.log.WithField("line", line).Debug(err)
}

func (s *interpreterState) tokenError(err error, tk *token) {
	if tk.token == tkEOF {
		s.setError(err, tk.line, " at end")
		return
	}
	s.setError(err, tk.line, fmt.Sprintf(" at '%s'", tk.lexeme))
}

// fatalError reports the error and unwinds the parser up to the
// closest synchronization point
func (s *interpreterState) fatalError(err error, tk *token) {
	s.tokenError(err, tk)
	panic(s.errors[len(s.errors)-1])
}

// runtimeErr unwinds the evaluation up to interpret
func runtimeErr(err error, tk *token) {
	panic(&runtimeError{
		token: tk,
		err:   err,
	})
}

// Valid returns true if no static error was found
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints the static errors not printed yet and returns true if
// the run has any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors[s.printed:] {
		s.logger.Fprintln(os.Stderr, e.Error())
	}
	s.printed = len(s.errors)
	return !s.Valid()
}

func (s *interpreterState) printRuntimeError() {
	s.log.WithField("line", s.runtimeError.token.line).Debug(s.runtimeError.err)
	s.logger.Fprintln(os.Stderr, s.runtimeError.Error())
}

// compositeError collects every diagnostic of the run in a single error
func (s *interpreterState) compositeError() error {
	ce := errorutil.NewCompositeError()
	for _, e := range s.errors {
		ce.Add(e)
	}
	if s.runtimeError != nil {
		ce.Add(s.runtimeError)
	}
	if !ce.HasErrors() {
		return nil
	}
	return ce
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnterminatedString = errors.New("Unterminated string.")

// Parser errors
var errExpectedExpr = errors.New("Expect expression.")
var errInvalidAssignTarget = errors.New("Invalid assignment target.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")
var errExpectedVarName = errors.New("Expect variable name.")
var errExpectedParamName = errors.New("Expect parameter name.")
var errExpectedClassName = errors.New("Expect class name.")
var errExpectedSuperclassName = errors.New("Expect superclass name.")
var errExpectedProp = errors.New("Expect property name after '.'.")
var errExpectedSuperDot = errors.New("Expect '.' after 'super'.")
var errExpectedSuperMethod = errors.New("Expect superclass method name.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errUnclosedArguments = errors.New("Expect ')' after arguments.")
var errUnclosedParameters = errors.New("Expect ')' after parameters.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errExpectedClassBody = errors.New("Expect '{' before class body.")
var errUnclosedClassBody = errors.New("Expect '}' after class body.")
var errExpectedSemicolonValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectedSemicolonReturn = errors.New("Expect ';' after return value.")
var errExpectedSemicolonLoop = errors.New("Expect ';' after loop condition.")
var errExpectedParenIf = errors.New("Expect '(' after 'if'.")
var errUnclosedParenIf = errors.New("Expect ')' after if condition.")
var errExpectedParenWhile = errors.New("Expect '(' after 'while'.")
var errUnclosedParenWhile = errors.New("Expect ')' after condition.")
var errExpectedParenFor = errors.New("Expect '(' after 'for'.")
var errUnclosedParenFor = errors.New("Expect ')' after for clauses.")

// Resolver errors
var errReadInInitializer = errors.New("Can't read local variable in its own initializer.")
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")
var errInitializerReturn = errors.New("Can't return a value from an initializer.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class.")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
var errInheritFromSelf = errors.New("A class can't inherit from itself.")

// Runtime errors
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errOnlyNumber = errors.New("Operand must be a number.")
var errNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
var errOnlyFunction = errors.New("Can only call functions and classes.")
var errOnlyInstanceProps = errors.New("Only instances have properties.")
var errOnlyInstanceFields = errors.New("Only instances have fields.")
var errSuperclassNotClass = errors.New("Superclass must be a class.")
var errUndefinedVar = errors.New("Undefined variable")
var errUndefinedProp = errors.New("Undefined property")
var errStackOverflow = errors.New("Stack overflow.")

// Operator errors, translated by the evaluator into the messages above
var errUndefinedOp = errors.New("Undefined operator")
var errOperandType = errors.New("Invalid operand type")

func undefinedVar(name *token) error {
	return fmt.Errorf("%w '%s'.", errUndefinedVar, name.lexeme)
}

func undefinedProp(name *token) error {
	return fmt.Errorf("%w '%s'.", errUndefinedProp, name.lexeme)
}

func invalidNumberArguments(arity, got int) error {
	return fmt.Errorf("Expected %d arguments but got %d.", arity, got)
}

// functionError builds the messages that depend on the kind of function
// being parsed, "function" or "method"
func functionError(format, kind string) error {
	return fmt.Errorf(format, kind)
}
