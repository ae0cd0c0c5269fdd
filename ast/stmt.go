/*
File    : loxgo/ast/stmt.go
Author  : amaji
*/
package ast

import "github.com/amaji/loxgo/lexer"

// StmtVisitor implements the Visitor design pattern for traversing
// statement nodes.
type StmtVisitor interface {
	VisitExpressionStmt(node *ExpressionStmt) error
	VisitPrintStmt(node *PrintStmt) error
	VisitVarStmt(node *VarStmt) error
	VisitBlockStmt(node *BlockStmt) error
	VisitIfStmt(node *IfStmt) error
	VisitWhileStmt(node *WhileStmt) error
	VisitFunctionStmt(node *FunctionStmt) error
	VisitReturnStmt(node *ReturnStmt) error
}

// Stmt is the base interface for every statement node.
type Stmt interface {
	Accept(visitor StmtVisitor) error
}

// ExpressionStmt evaluates an expression and discards its value.
// Example: `1 + 2;`, `myFunc();`.
type ExpressionStmt struct {
	Expression Expr
}

func (node *ExpressionStmt) Accept(visitor StmtVisitor) error {
	return visitor.VisitExpressionStmt(node)
}

// PrintStmt evaluates an expression and writes its printed form followed
// by a newline. Example: `print 1 + 2;`.
type PrintStmt struct {
	Expression Expr
}

func (node *PrintStmt) Accept(visitor StmtVisitor) error {
	return visitor.VisitPrintStmt(node)
}

// VarStmt declares a new variable in the current scope, optionally with
// an initializer. Example: `var x = 10;`, `var y;` (initialized to nil).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil when the declaration has no initializer
}

func (node *VarStmt) Accept(visitor StmtVisitor) error {
	return visitor.VisitVarStmt(node)
}

// BlockStmt introduces a new lexical scope around a sequence of
// statements. Example: `{ stmt1; stmt2; }`.
type BlockStmt struct {
	Statements []Stmt
}

func (node *BlockStmt) Accept(visitor StmtVisitor) error {
	return visitor.VisitBlockStmt(node)
}

// IfStmt represents a conditional with an optional else branch. Example:
// `if (cond) thenStmt else elseStmt`.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil when there is no else clause
}

func (node *IfStmt) Accept(visitor StmtVisitor) error {
	return visitor.VisitIfStmt(node)
}

// WhileStmt represents a condition-guarded loop. The statement parser
// desugars `for` loops into a WhileStmt wrapped in a BlockStmt, so this
// is the only looping construct the evaluator needs to know about.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (node *WhileStmt) Accept(visitor StmtVisitor) error {
	return visitor.VisitWhileStmt(node)
}

// FunctionStmt declares a named function: `fun add(a, b) { return a+b; }`.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (node *FunctionStmt) Accept(visitor StmtVisitor) error {
	return visitor.VisitFunctionStmt(node)
}

// ReturnStmt unwinds the current function call with an optional value.
// A bare `return;` returns nil.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil when no expression follows `return`
}

func (node *ReturnStmt) Accept(visitor StmtVisitor) error {
	return visitor.VisitReturnStmt(node)
}
