// Package fixture checks that string literals passed to memdom.ParseFixture
// are well-formed HTML fragments: balanced tags, no raw "<", ">", or """ in
// text content. Descendant of the teacher's rxcheck/internal/get, which ran
// the same check against rx.Get call sites; see DESIGN.md.
package fixture

import (
	"bytes"
	"errors"
	"go/ast"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

var Analyzer = &analysis.Analyzer{
	Name:     "fixture",
	Doc:      "check that memdom.ParseFixture calls are well-formed",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}

	insp.Preorder(nodeFilter, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		fn := typeutil.StaticCallee(pass.TypesInfo, call)
		if fn == nil {
			return
		}
		if len(call.Args) != 1 {
			return
		}
		if fn.FullName() != "github.com/kmicklas/ravel/memdom.ParseFixture" {
			return
		}

		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok {
			return // dynamic fragment, nothing to check statically
		}
		tpl, err := strconv.Unquote(lit.Value)
		if err != nil {
			return
		}

		countStart := 0
		var open []string
		tk := html.NewTokenizer(strings.NewReader(tpl))
	loop:
		for {
			switch tk.Next() {
			case html.TextToken:
				if bytes.ContainsAny(tk.Raw(), "<>\"") {
					pass.ReportRangef(node, "no escape characters in text, use &lt, &gt, …")
					return
				}
			case html.ErrorToken:
				if errors.Is(tk.Err(), io.EOF) {
					break loop
				}
				pass.ReportRangef(node, "error reading fragment: %s", tk.Err())
				return
			case html.StartTagToken:
				countStart++
				n, _ := tk.TagName()
				open = append(open, string(n))
			case html.EndTagToken:
				n, _ := tk.TagName()
				if len(open) == 0 {
					pass.ReportRangef(node, "extraneous close token: %s", n)
					return
				}
				if open[len(open)-1] != string(n) {
					pass.ReportRangef(node, "unmatched close token: %s closing %s", n, open[len(open)-1])
					return
				}
				open = open[:len(open)-1]
			}
		}

		if countStart == 0 {
			pass.ReportRangef(node, "invalid fragment: no element found")
			return
		}
		for l := len(open) - 1; l >= 0; l-- {
			pass.ReportRangef(node, "unbalanced: %s", open[l])
		}
	})

	return nil, nil
}
