package syntax

// Children 返回节点的直接子节点，顺序与源码一致
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Module:
		return n.Body
	case *ClassDef:
		out := make([]Node, 0, len(n.Bases)+len(n.Body))
		out = append(out, n.Bases...)
		return append(out, n.Body...)
	case *FuncDef:
		return n.Body
	case *Assign:
		out := make([]Node, 0, len(n.Targets)+1)
		out = append(out, n.Targets...)
		if n.Value != nil {
			out = append(out, n.Value)
		}
		return out
	case *ExprStmt:
		if n.Value == nil {
			return nil
		}
		return []Node{n.Value}
	case *Call:
		out := make([]Node, 0, len(n.Args)+1)
		if n.Func != nil {
			out = append(out, n.Func)
		}
		return append(out, n.Args...)
	case *Attribute:
		if n.Value == nil {
			return nil
		}
		return []Node{n.Value}
	case *Other:
		return n.Children
	case *Name:
		return nil
	default:
		return nil
	}
}

// Walk 以广度优先顺序访问 root 及其所有后代节点。
// visit 返回 false 时停止遍历。
func Walk(root Node, visit func(Node) bool) {
	if root == nil {
		return
	}

	queue := []Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !visit(n) {
			return
		}
		for _, child := range Children(n) {
			if child != nil {
				queue = append(queue, child)
			}
		}
	}
}
