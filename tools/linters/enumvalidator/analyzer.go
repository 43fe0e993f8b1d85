package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// DefaultTypes are the change-event enums. The automation engine switches on
// their values, so a typo would be published silently.
var DefaultTypes = []string{"Entity", "Action"}

// Analyzer checks DefaultTypes.
var Analyzer = New(DefaultTypes)

// New returns an analyzer that reports string literals written into fields of
// the named string types.
func New(typeNames []string) *analysis.Analyzer {
	enums := make(map[string]bool, len(typeNames))
	for _, name := range typeNames {
		enums[name] = true
	}

	return &analysis.Analyzer{
		Name: "enumvalidator",
		Doc:  "checks that enum fields only use defined constants, not string literals",
		Run: func(pass *analysis.Pass) (interface{}, error) {
			for _, file := range pass.Files {
				ast.Inspect(file, func(n ast.Node) bool {
					switch node := n.(type) {
					case *ast.AssignStmt:
						checkAssign(pass, enums, node)
					case *ast.KeyValueExpr:
						checkKeyValue(pass, enums, node)
					}
					return true
				})
			}
			return nil, nil
		},
	}
}

func checkAssign(pass *analysis.Pass, enums map[string]bool, assign *ast.AssignStmt) {
	for i, lhs := range assign.Lhs {
		if i >= len(assign.Rhs) {
			continue
		}
		sel, ok := lhs.(*ast.SelectorExpr)
		if !ok || !isEnum(enums, pass.TypesInfo.TypeOf(sel)) {
			continue
		}
		if isStringLiteral(assign.Rhs[i]) {
			pass.Reportf(assign.Pos(),
				"enum field %s assigned string literal; use defined constant instead",
				sel.Sel.Name)
		}
	}
}

// checkKeyValue covers struct literals such as ChangeEvent{Action: "x"}.
func checkKeyValue(pass *analysis.Pass, enums map[string]bool, kv *ast.KeyValueExpr) {
	key, ok := kv.Key.(*ast.Ident)
	if !ok || !isStringLiteral(kv.Value) {
		return
	}
	field, ok := pass.TypesInfo.ObjectOf(key).(*types.Var)
	if !ok || !field.IsField() || !isEnum(enums, field.Type()) {
		return
	}
	pass.Reportf(kv.Pos(),
		"enum field %s set to string literal; use defined constant instead",
		key.Name)
}

func isEnum(enums map[string]bool, t types.Type) bool {
	named, ok := t.(*types.Named)
	return ok && enums[named.Obj().Name()]
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
