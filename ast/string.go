package ast

import (
	"fmt"
	"strings"
)

// Sprint renders statements one per line in the s-expression form used by
// the String methods.
func Sprint(stmts []Stmt) string {
	lines := make([]string, 0, len(stmts))
	for _, s := range stmts {
		lines = append(lines, str(s))
	}
	return strings.Join(lines, "\n")
}

func str(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func list(head string, items ...string) string {
	return "(" + strings.Join(append([]string{head}, items...), " ") + ")"
}

func stmts(body []Stmt) []string {
	ret := make([]string, 0, len(body))
	for _, s := range body {
		ret = append(ret, str(s))
	}
	return ret
}

func exprs(items []Expr) []string {
	ret := make([]string, 0, len(items))
	for _, e := range items {
		ret = append(ret, str(e))
	}
	return ret
}

func (v FunctionDef) String() string {
	return list("def", append([]string{v.Name, "(" + strings.Join(v.Params, " ") + ")"}, stmts(v.Body)...)...)
}

func (v ClassDef) String() string {
	head := []string{v.Name}
	if v.Base != nil {
		head = append(head, str(v.Base))
	}
	return list("class", append(head, stmts(v.Body)...)...)
}

func (v Return) String() string {
	if v.Value == nil {
		return "(return)"
	}
	return list("return", str(v.Value))
}

func (v ExpressionStmt) String() string { return list("expr", str(v.Expr)) }

func (v If) String() string {
	parts := []string{str(v.Condition), list("then", stmts(v.Then)...)}
	if v.Else != nil {
		parts = append(parts, list("else", stmts(v.Else)...))
	}
	return list("if", parts...)
}

func (v While) String() string {
	return list("while", append([]string{str(v.Condition)}, stmts(v.Body)...)...)
}

func (v Print) String() string  { return list("print", str(v.Value)) }
func (v Assign) String() string { return list("assign", str(v.Target), str(v.Value)) }

func (v For) String() string {
	return list("for", append([]string{str(v.Target), str(v.Iterable)}, stmts(v.Body)...)...)
}

func (v Block) String() string      { return list("block", stmts(v.Body)...) }
func (v Import) String() string     { return list("import", v.Names...) }
func (v FromImport) String() string { return list("from", append([]string{v.Module, "import"}, v.Names...)...) }
func (v Global) String() string     { return list("global", v.Names...) }

func (v Try) String() string {
	parts := []string{"(" + strings.Join(stmts(v.Body), " ") + ")"}
	for _, clause := range v.Excepts {
		parts = append(parts, clause.String())
	}
	return list("try", parts...)
}

func (v ExceptClause) String() string {
	var head []string
	if v.Type != nil {
		head = append(head, str(v.Type))
	}
	return list("except", append(head, stmts(v.Body)...)...)
}

func (v Raise) String() string {
	if v.Value == nil {
		return "(raise)"
	}
	return list("raise", str(v.Value))
}

func (v Del) String() string      { return list("del", str(v.Target)) }
func (v Pass) String() string     { return "(pass)" }
func (v Break) String() string    { return "(break)" }
func (v Continue) String() string { return "(continue)" }

func (v Literal) String() string  { return str(v.Value) }
func (v Variable) String() string { return v.Name }
func (v Unary) String() string    { return list(v.Op.Symbol(), str(v.Operand)) }
func (v Binary) String() string   { return list(v.Op.Symbol(), str(v.Left), str(v.Right)) }
func (v Grouping) String() string { return list("group", str(v.Inner)) }

func (v Call) String() string {
	return list("call", append([]string{str(v.Callee)}, exprs(v.Args)...)...)
}

func (v Tuple) String() string { return list("tuple", exprs(v.Items)...) }
func (v List) String() string  { return list("list", exprs(v.Items)...) }

func (v Dict) String() string {
	pairs := make([]string, 0, len(v.Pairs))
	for _, p := range v.Pairs {
		pairs = append(pairs, "("+str(p.Key)+" "+str(p.Value)+")")
	}
	return list("dict", pairs...)
}

func (v Get) String() string { return list(".", str(v.Object), v.Name) }
func (v Set) String() string { return list(".=", str(v.Object), v.Name, str(v.Value)) }

func (v Lambda) String() string {
	return list("lambda", "("+strings.Join(v.Params, " ")+")", str(v.Body))
}

func (v Index) String() string { return list("index", str(v.Object), str(v.Index)) }

func (v NameTarget) String() string { return v.Name }

func (v TupleTarget) String() string {
	items := make([]string, 0, len(v.Items))
	for _, t := range v.Items {
		items = append(items, str(t))
	}
	return list("tuple", items...)
}

func (v AttributeTarget) String() string { return list(".", str(v.Object), v.Name) }
