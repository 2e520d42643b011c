package python

import (
	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/syntax"
)

// Extractor 实现了 extractor.Extractor 接口
type Extractor struct{}

func NewPythonExtractor() *Extractor {
	return &Extractor{}
}

// ExtractInteractions 实现了 extractor.Extractor 接口
func (e *Extractor) ExtractInteractions(mod *syntax.Module) []model.MethodInteractionModel {
	sequences := make([]model.MethodInteractionModel, 0)
	syntax.Walk(mod, func(n syntax.Node) bool {
		// async def 本身不产生交互，但其内部的普通函数仍会被遍历到
		fn, ok := n.(*syntax.FuncDef)
		if !ok || fn.Async {
			return true
		}

		var interactions []model.Interaction
		for _, stmt := range fn.Body {
			if it, ok := directCall(stmt); ok {
				interactions = append(interactions, it)
			}
		}
		if len(interactions) > 0 {
			sequences = append(sequences, model.MethodInteractionModel{Method: fn.Name, Interactions: interactions})
		}
		return true
	})
	return sequences
}

// directCall 匹配形如 <name>.<attr>(...) 的独立调用语句
func directCall(stmt syntax.Node) (model.Interaction, bool) {
	expr, ok := stmt.(*syntax.ExprStmt)
	if !ok {
		return model.Interaction{}, false
	}
	call, ok := expr.Value.(*syntax.Call)
	if !ok {
		return model.Interaction{}, false
	}
	attr, ok := call.Func.(*syntax.Attribute)
	if !ok {
		return model.Interaction{}, false
	}
	receiver, ok := attr.Value.(*syntax.Name)
	if !ok {
		return model.Interaction{}, false
	}
	return model.Interaction{Caller: receiver.ID, Callee: attr.Attr}, true
}
