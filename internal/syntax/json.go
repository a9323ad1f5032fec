package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the syntax tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":  "Program",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	// Statements
	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"pos":  n.pos.String(),
			"x":    optJSON(n.X),
		}

	case *ReturnStmt:
		return map[string]interface{}{
			"type":   "ReturnStmt",
			"pos":    n.pos.String(),
			"result": optJSON(n.Result),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *ForStmt:
		return map[string]interface{}{
			"type": "ForStmt",
			"pos":  n.pos.String(),
			"init": optJSON(n.Init),
			"cond": optJSON(n.Cond),
			"post": optJSON(n.Post),
			"body": toJSON(n.Body),
		}

	case *WhileStmt:
		return map[string]interface{}{
			"type": "WhileStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *BlockStmt:
		return map[string]interface{}{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	// Expressions
	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *NumberLit:
		return map[string]interface{}{
			"type":  "NumberLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BinaryExpr:
		return map[string]interface{}{
			"type": "BinaryExpr",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *AssignExpr:
		op := "="
		if n.Op != Assign {
			op = n.Op.String() + "="
		}
		return map[string]interface{}{
			"type": "AssignExpr",
			"pos":  n.pos.String(),
			"op":   op,
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *CommaExpr:
		return map[string]interface{}{
			"type": "CommaExpr",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *CondExpr:
		return map[string]interface{}{
			"type": "CondExpr",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
			"else": toJSON(n.Else),
		}

	case *IncDecExpr:
		return map[string]interface{}{
			"type":    "IncDecExpr",
			"pos":     n.pos.String(),
			"op":      n.Op.String(),
			"postfix": n.Op.IsPostfix(),
			"x":       toJSON(n.X),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  toJSON(n.Fun),
			"args": mapSlice(n.Args, func(a Expr) interface{} { return toJSON(a) }),
		}
	}

	return map[string]interface{}{"type": "Unknown"}
}

// optJSON converts an optional expression; a missing one becomes null.
func optJSON(x Expr) interface{} {
	if x == nil {
		return nil
	}
	return toJSON(x)
}

func mapSlice[T any](items []T, fn func(T) interface{}) []interface{} {
	result := make([]interface{}, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}
