package collector

import (
	"fmt"

	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/syntax"
)

// Collector 用于收集类定义。
type Collector interface {
	// CollectClasses 遍历语法树，按遍历顺序为每个类定义返回一个 ClassModel。
	// 实现必须是纯函数：相同输入返回结构相同的新结果。
	CollectClasses(mod *syntax.Module) []model.ClassModel
}

var collectorMap = make(map[model.Language]Collector)

// RegisterCollector 注册一个语言与其对应的 Collector
func RegisterCollector(lang model.Language, collector Collector) {
	collectorMap[lang] = collector
}

// GetCollector 根据语言类型获取对应的 Collector 实例。
func GetCollector(lang model.Language) (Collector, error) {
	collector, ok := collectorMap[lang]
	if !ok {
		return nil, fmt.Errorf("no collector registered for language: %s", lang)
	}

	return collector, nil
}
