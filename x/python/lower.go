package python

import (
	"fmt"

	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/syntax"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Lower 把 tree-sitter-python 的语法树转换为 syntax.Module。
// block、else_clause 与 finally_clause 会被展开到父节点中，elif 链被转换为嵌套的 if，
// 使遍历深度与 Python 自身的 AST 保持一致。
// tree-sitter 能接受但 Python 3 拒绝的 Python 2 语句会返回 model.ErrParseFailure。
func Lower(root *sitter.Node, source []byte) (*syntax.Module, error) {
	if root == nil {
		return &syntax.Module{}, nil
	}
	l := &lowerer{source: source}
	mod := &syntax.Module{Body: l.children(root)}
	if l.err != nil {
		return nil, l.err
	}
	return mod, nil
}

type lowerer struct {
	source []byte
	err    error // 遇到的第一个非法语句
}

func (l *lowerer) text(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return node.Utf8Text(l.source)
}

// children 转换所有具名子节点，跳过注释并展开 block、else_clause 与 finally_clause
func (l *lowerer) children(node *sitter.Node) []syntax.Node {
	if node == nil {
		return nil
	}

	out := make([]syntax.Node, 0, node.NamedChildCount())
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case kindComment:
			continue
		case kindBlock, kindElseClause, kindFinallyClause:
			out = append(out, l.children(child)...)
		default:
			out = append(out, l.lower(child))
		}
	}
	return out
}

func (l *lowerer) lower(node *sitter.Node) syntax.Node {
	switch node.Kind() {
	case kindClassDefinition:
		return l.classDef(node)
	case kindFunctionDefinition:
		return l.funcDef(node)
	case kindDecoratedDefinition:
		// 装饰器不影响定义本身
		if def := node.ChildByFieldName("definition"); def != nil {
			return l.lower(def)
		}
	case kindIfStatement:
		return l.ifStmt(node)
	case kindExpressionStatement:
		return l.exprStmt(node)
	case kindParenthesized:
		// 括号不出现在 Python 的 AST 中
		if inner := l.single(node); inner != nil {
			return l.lower(inner)
		}
	case kindPrintStatement, kindExecStatement:
		l.reject(node)
	case kindCall:
		return l.call(node)
	case kindIdentifier:
		return &syntax.Name{ID: l.text(node)}
	case kindAttribute:
		return &syntax.Attribute{
			Value: l.lowerOrNil(node.ChildByFieldName("object")),
			Attr:  l.text(node.ChildByFieldName("attribute")),
		}
	}
	return &syntax.Other{Kind: node.Kind(), Children: l.children(node)}
}

// single 返回唯一的非注释具名子节点
func (l *lowerer) single(node *sitter.Node) *sitter.Node {
	var found *sitter.Node
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Kind() == kindComment {
			continue
		}
		if found != nil {
			return nil
		}
		found = child
	}
	return found
}

// reject 记录第一个 Python 3 中不合法的语句
func (l *lowerer) reject(node *sitter.Node) {
	if l.err != nil {
		return
	}
	keyword := "print"
	if node.Kind() == kindExecStatement {
		keyword = "exec"
	}
	pos := node.StartPosition()
	l.err = fmt.Errorf("%w: missing parentheses in call to '%s' near line %d, column %d",
		model.ErrParseFailure, keyword, pos.Row+1, pos.Column+1)
}

// ifStmt 把 if/elif/else 转换为嵌套结构：每个 elif 是上一层 else 分支中的 if，
// 最后的 else 语句挂在最内层的 if 上。
func (l *lowerer) ifStmt(node *sitter.Node) syntax.Node {
	var elifs []*sitter.Node
	var orelse []syntax.Node
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case kindElifClause:
			elifs = append(elifs, child)
		case kindElseClause:
			orelse = l.children(child)
		}
	}

	for i := len(elifs) - 1; i >= 0; i-- {
		orelse = []syntax.Node{l.branch(elifs[i], orelse)}
	}
	return l.branch(node, orelse)
}

func (l *lowerer) branch(node *sitter.Node, orelse []syntax.Node) syntax.Node {
	out := &syntax.Other{Kind: kindIfStatement}
	if cond := node.ChildByFieldName("condition"); cond != nil {
		out.Children = append(out.Children, l.lower(cond))
	}
	out.Children = append(out.Children, l.children(node.ChildByFieldName("consequence"))...)
	out.Children = append(out.Children, orelse...)
	return out
}

func (l *lowerer) lowerOrNil(node *sitter.Node) syntax.Node {
	if node == nil {
		return nil
	}
	return l.lower(node)
}

func (l *lowerer) classDef(node *sitter.Node) syntax.Node {
	class := &syntax.ClassDef{Name: l.text(node.ChildByFieldName("name"))}
	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		class.Bases = l.children(supers)
	}
	class.Body = l.children(node.ChildByFieldName("body"))
	return class
}

func (l *lowerer) funcDef(node *sitter.Node) syntax.Node {
	fn := &syntax.FuncDef{Name: l.text(node.ChildByFieldName("name"))}
	if first := node.Child(0); first != nil && first.Kind() == kindAsync {
		fn.Async = true
	}
	fn.Params = l.params(node.ChildByFieldName("parameters"))
	fn.Body = l.children(node.ChildByFieldName("body"))
	return fn
}

// params 按声明顺序提取形参名称。* 或 *args 之后的普通参数是仅关键字参数。
func (l *lowerer) params(node *sitter.Node) []syntax.Param {
	if node == nil {
		return nil
	}

	var params []syntax.Param
	kind := syntax.ParamPositional
	add := func(name string, k syntax.ParamKind) {
		params = append(params, syntax.Param{Name: name, Kind: k})
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}

		// typed_parameter 没有 name 字段，被注解的是第一个具名子节点
		target := child
		if child.Kind() == kindTypedParameter {
			if target = child.NamedChild(0); target == nil {
				continue
			}
		}

		switch target.Kind() {
		case kindIdentifier:
			add(l.text(target), kind)
		case kindDefaultParameter, kindTypedDefaultParameter:
			add(l.text(target.ChildByFieldName("name")), kind)
		case kindListSplatPattern:
			add(l.splatName(target), syntax.ParamVarPositional)
			kind = syntax.ParamKeywordOnly
		case kindDictionarySplatPattern:
			add(l.splatName(target), syntax.ParamVarKeyword)
		case kindKeywordSeparator:
			kind = syntax.ParamKeywordOnly
		}
	}
	return params
}

func (l *lowerer) splatName(node *sitter.Node) string {
	if ident := node.NamedChild(0); ident != nil {
		return l.text(ident)
	}
	return ""
}

// exprStmt 把 expression_statement 转换为 Assign 或 ExprStmt。
// 带类型注解的赋值不属于普通赋值。
func (l *lowerer) exprStmt(node *sitter.Node) syntax.Node {
	exprs := make([]*sitter.Node, 0, node.NamedChildCount())
	for i := uint(0); i < node.NamedChildCount(); i++ {
		if child := node.NamedChild(i); child != nil && child.Kind() != kindComment {
			exprs = append(exprs, child)
		}
	}

	switch {
	case len(exprs) == 1 && exprs[0].Kind() == kindAssignment:
		if assign := l.assign(exprs[0]); assign != nil {
			return assign
		}
		return &syntax.Other{Kind: "annotated_assignment", Children: l.children(exprs[0])}
	case len(exprs) == 1:
		return &syntax.ExprStmt{Value: l.lower(exprs[0])}
	}

	// a(), b() 这样的语句实际上是一个元组表达式
	tuple := &syntax.Other{Kind: "tuple"}
	for _, e := range exprs {
		tuple.Children = append(tuple.Children, l.lower(e))
	}
	return &syntax.ExprStmt{Value: tuple}
}

// assign 展开链式赋值；任一环节带类型注解时返回 nil
func (l *lowerer) assign(node *sitter.Node) *syntax.Assign {
	out := &syntax.Assign{}
	for cur := node; ; {
		if cur.ChildByFieldName("type") != nil {
			return nil
		}
		out.Targets = append(out.Targets, l.lowerOrNil(cur.ChildByFieldName("left")))

		right := cur.ChildByFieldName("right")
		if right != nil && right.Kind() == kindAssignment {
			cur = right
			continue
		}
		out.Value = l.lowerOrNil(right)
		return out
	}
}

func (l *lowerer) call(node *sitter.Node) syntax.Node {
	call := &syntax.Call{Func: l.lowerOrNil(node.ChildByFieldName("function"))}
	if args := node.ChildByFieldName("arguments"); args != nil {
		if args.Kind() == kindArgumentList {
			call.Args = l.children(args)
		} else {
			call.Args = []syntax.Node{l.lower(args)}
		}
	}
	return call
}
