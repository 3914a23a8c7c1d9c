// Package ast holds the statement tree produced by the parser. Every node
// owns its children; nothing is shared between nodes.
//
// Optional children are nil interfaces (ClassDef.Base, Return.Value,
// Raise.Value, ExceptClause.Type) or nil slices (If.Else).
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.adt ../ast/nodes_gen.go ast"
