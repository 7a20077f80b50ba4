package ast

// Stmt is the root of a parsed statement: an Assignment or a Print.
type Stmt interface {
	Node
	stmt()
}

type Assignment struct {
	Variable   string
	Expression Expr
}

func (*Assignment) stmt() {}

func (a *Assignment) Dump() string {
	return a.Variable + " = " + a.Expression.Dump() + ";"
}

type Print struct {
	Expression Expr
}

func (*Print) stmt() {}

func (p *Print) Dump() string {
	return "print(" + p.Expression.Dump() + ");"
}
