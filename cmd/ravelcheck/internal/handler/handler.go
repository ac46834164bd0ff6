// Package handler flags ravel.Listener composite literals whose Kind field
// doesn't match their Event field — a copy-pasted listener left with the
// wrong EventKind compiles fine (Kind is just an int) but silently
// misroutes at runtime. Descendant of the teacher's rxcheck/internal/mutate,
// which statically shape-checked rx.Mutate call sites; see DESIGN.md.
package handler

import (
	"go/ast"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "handler",
	Doc:      "check that a Listener's Kind field matches its Event field",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// eventKindFor maps the wire event name a Listener binds to the EventKind
// constant it should carry. Kept in sync with event.go's EventKind list.
var eventKindFor = map[string]string{
	"click":       "Click",
	"dblclick":    "DoubleClick",
	"dragstart":   "DragStart",
	"dragover":    "DragOver",
	"dragend":     "DragEnd",
	"drop":        "Drop",
	"scroll":      "Scroll",
	"input":       "Input",
	"change":      "Change",
	"blur":        "Blur",
	"submit":      "Submit",
	"keydown":     "KeyDown",
	"mouseenter":  "MouseEnter",
	"mouseleave":  "MouseLeave",
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.CompositeLit)(nil)}

	insp.Preorder(nodeFilter, func(node ast.Node) {
		lit := node.(*ast.CompositeLit)

		t := pass.TypesInfo.TypeOf(lit)
		named, ok := t.(*types.Named)
		if !ok {
			return
		}
		obj := named.Obj()
		if obj.Pkg() == nil || obj.Pkg().Path() != "github.com/kmicklas/ravel" || obj.Name() != "Listener" {
			return
		}

		var eventStr, kindName string
		for _, elt := range lit.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				continue
			}
			key, ok := kv.Key.(*ast.Ident)
			if !ok {
				continue
			}
			switch key.Name {
			case "Event":
				if bl, ok := kv.Value.(*ast.BasicLit); ok {
					if s, err := strconv.Unquote(bl.Value); err == nil {
						eventStr = s
					}
				}
			case "Kind":
				switch v := kv.Value.(type) {
				case *ast.SelectorExpr:
					kindName = v.Sel.Name
				case *ast.Ident:
					kindName = v.Name
				}
			}
		}

		if eventStr == "" || kindName == "" {
			return
		}
		want, known := eventKindFor[eventStr]
		if !known || want == kindName {
			return
		}
		pass.ReportRangef(lit, "listener Kind %s does not match Event %q (want %s)", kindName, eventStr, want)
	})

	return nil, nil
}
