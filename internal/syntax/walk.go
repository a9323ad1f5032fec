package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a syntax tree in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	// Statements
	case *ExprStmt:
		Walk(n.X, v)

	case *ReturnStmt:
		Walk(n.Result, v)

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *ForStmt:
		Walk(n.Init, v)
		Walk(n.Cond, v)
		Walk(n.Post, v)
		Walk(n.Body, v)

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	// Expressions
	case *Name, *NumberLit:
		// leaves

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *AssignExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *CommaExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *CondExpr:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *IncDecExpr:
		Walk(n.X, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}
	}
}

// VarNames returns the distinct identifiers of node that denote
// variables, in first-use order. The name of a directly called function
// is a symbol, not a variable, and is skipped.
func VarNames(node Node) []string {
	var names []string
	seen := make(map[string]bool)
	var visit Visitor
	visit = func(n Node) bool {
		switch n := n.(type) {
		case *Name:
			if !seen[n.Value] {
				seen[n.Value] = true
				names = append(names, n.Value)
			}
		case *CallExpr:
			if _, ok := n.Fun.(*Name); ok {
				for _, a := range n.Args {
					Walk(a, visit)
				}
				return false
			}
		}
		return true
	}
	Walk(node, visit)
	return names
}
