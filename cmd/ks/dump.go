package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ksgo/ks/ast"
)

// printNode renders one AST node and its children as an indented tree. A
// single type switch replaces the visitor hierarchy the node types
// themselves don't carry.
func printNode(w io.Writer, n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch x := n.(type) {
	case *ast.Literal:
		fmt.Fprintf(w, "%sLiteral(%s)\n", indent, literalValue(x))
	case *ast.Identifier:
		fmt.Fprintf(w, "%sIdentifier(%s)\n", indent, x.Name)
	case *ast.Binary:
		fmt.Fprintf(w, "%sBinary(%s)\n", indent, x.Op)
		printNode(w, x.Left, depth+1)
		printNode(w, x.Right, depth+1)
	case *ast.Unary:
		fmt.Fprintf(w, "%sUnary(%s)\n", indent, x.Op)
		printNode(w, x.Operand, depth+1)
	case *ast.Call:
		fmt.Fprintf(w, "%sCall\n", indent)
		printNode(w, x.Callee, depth+1)
		for _, a := range x.Args {
			printNode(w, a, depth+1)
		}
	case *ast.Assignment:
		fmt.Fprintf(w, "%sAssignment(%s)\n", indent, x.Target)
		printNode(w, x.Value, depth+1)
	case *ast.VarDecl:
		fmt.Fprintf(w, "%sVarDecl(%s)\n", indent, x.Name)
		if x.Init != nil {
			printNode(w, x.Init, depth+1)
		}
	case *ast.FuncDecl:
		fmt.Fprintf(w, "%sFuncDecl(%s, params=%s)\n", indent, x.Name, strings.Join(x.Params, ", "))
		printNode(w, x.Body, depth+1)
	case *ast.ExprStmt:
		fmt.Fprintf(w, "%sExprStmt\n", indent)
		printNode(w, x.Expr, depth+1)
	case *ast.Block:
		fmt.Fprintf(w, "%sBlock\n", indent)
		for _, s := range x.Statements {
			printNode(w, s, depth+1)
		}
	case *ast.If:
		fmt.Fprintf(w, "%sIf\n", indent)
		printNode(w, x.Cond, depth+1)
		printNode(w, x.Then, depth+1)
		if x.Else != nil {
			printNode(w, x.Else, depth+1)
		}
	case *ast.For:
		fmt.Fprintf(w, "%sFor\n", indent)
		if x.Init != nil {
			printNode(w, x.Init, depth+1)
		}
		if x.Cond != nil {
			printNode(w, x.Cond, depth+1)
		}
		if x.Step != nil {
			printNode(w, x.Step, depth+1)
		}
		printNode(w, x.Body, depth+1)
	case *ast.While:
		fmt.Fprintf(w, "%sWhile\n", indent)
		printNode(w, x.Cond, depth+1)
		printNode(w, x.Body, depth+1)
	case *ast.Return:
		fmt.Fprintf(w, "%sReturn\n", indent)
		if x.Value != nil {
			printNode(w, x.Value, depth+1)
		}
	case *ast.Gorun:
		fmt.Fprintf(w, "%sGorun\n", indent)
		printNode(w, x.Expr, depth+1)
	default:
		fmt.Fprintf(w, "%s<unknown %T>\n", indent, n)
	}
}

func literalValue(l *ast.Literal) string {
	switch l.Kind {
	case ast.IntegerLiteral:
		return fmt.Sprintf("%d", l.Int)
	case ast.FloatLiteral:
		return fmt.Sprintf("%g", l.Float)
	case ast.StringLiteral:
		return fmt.Sprintf("%q", l.Str)
	case ast.BooleanLiteral:
		return fmt.Sprintf("%t", l.Bool)
	case ast.NullLiteral:
		return "null"
	default:
		return "?"
	}
}
