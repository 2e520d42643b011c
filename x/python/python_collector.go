package python

import (
	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/syntax"
)

type Collector struct{}

func NewPythonCollector() *Collector {
	return &Collector{}
}

// CollectClasses 实现了 collector.Collector 接口
func (c *Collector) CollectClasses(mod *syntax.Module) []model.ClassModel {
	classes := make([]model.ClassModel, 0)
	syntax.Walk(mod, func(n syntax.Node) bool {
		if class, ok := n.(*syntax.ClassDef); ok {
			classes = append(classes, c.collectClass(class))
		}
		return true
	})
	return classes
}

func (c *Collector) collectClass(class *syntax.ClassDef) model.ClassModel {
	info := model.NewClassModel(class.Name)

	// 1. 只保留简单名称形式的基类
	for _, base := range class.Bases {
		if name, ok := base.(*syntax.Name); ok {
			info.Parents = append(info.Parents, name.ID)
		}
	}

	// 2. 只扫描类体的直接语句
	for _, stmt := range class.Body {
		switch stmt := stmt.(type) {
		case *syntax.FuncDef:
			// async def 不计为方法
			if stmt.Async {
				continue
			}
			if stmt.Name == ConstructorName {
				// 构造函数参数覆盖之前收集到的属性
				info.Attributes = constructorAttributes(stmt.Params)
			}
			info.Methods = append(info.Methods, stmt.Name)
		case *syntax.Assign:
			for _, target := range stmt.Targets {
				if field, ok := instanceField(target); ok {
					info.Attributes = append(info.Attributes, field)
				}
			}
		}
	}

	return info
}

// constructorAttributes 返回实例引用之后的位置参数名称
func constructorAttributes(params []syntax.Param) []string {
	attrs := make([]string, 0, len(params))
	for i, p := range params {
		if i <= InstanceReceiverParameterIndex {
			continue
		}
		if p.Kind != syntax.ParamPositional {
			continue
		}
		attrs = append(attrs, p.Name)
	}
	return attrs
}

// instanceField 判断赋值目标是否为 self.<field>
func instanceField(target syntax.Node) (string, bool) {
	attr, ok := target.(*syntax.Attribute)
	if !ok {
		return "", false
	}
	receiver, ok := attr.Value.(*syntax.Name)
	if !ok || receiver.ID != InstanceReceiverName {
		return "", false
	}
	return attr.Attr, true
}
