package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/CodMac/go-treesitter-uml-generator/model"
)

const (
	diagramStart = "@startuml"
	diagramEnd   = "@enduml"
)

// ClassDiagram 把 ClassModel 列表渲染为 PlantUML 类图文本。
// 输出完全由输入决定：不去重、不排序、不校验父类是否存在。
func ClassDiagram(classes []model.ClassModel) string {
	var b strings.Builder

	b.WriteString(diagramStart + "\n")
	for _, class := range classes {
		fmt.Fprintf(&b, "class %s {\n", class.Name)
		for _, attr := range class.Attributes {
			fmt.Fprintf(&b, "  - %s\n", attr)
		}
		for _, method := range class.Methods {
			fmt.Fprintf(&b, "  + %s()\n", method)
		}
		b.WriteString("}\n")

		// 继承关系：父类在左，子类在右
		for _, parent := range class.Parents {
			fmt.Fprintf(&b, "%s <|-- %s\n", parent, class.Name)
		}
	}
	b.WriteString(diagramEnd + "\n")

	return b.String()
}

// SequenceDiagram 把 MethodInteractionModel 列表渲染为 PlantUML 时序图文本
func SequenceDiagram(sequences []model.MethodInteractionModel) string {
	var b strings.Builder

	b.WriteString(diagramStart + "\n")
	for _, seq := range sequences {
		fmt.Fprintf(&b, "activate %s\n", seq.Method)
		for _, it := range seq.Interactions {
			fmt.Fprintf(&b, "%s -> %s: call\n", it.Caller, it.Callee)
		}
		fmt.Fprintf(&b, "deactivate %s\n", seq.Method)
	}
	b.WriteString(diagramEnd + "\n")

	return b.String()
}

// WriteDiagram 把图文本写入 path，覆盖已有内容。失败时返回包装了 model.ErrOutputWrite 的错误。
func WriteDiagram(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrOutputWrite, path, err)
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", model.ErrOutputWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrOutputWrite, path, err)
	}
	return nil
}

// SequencePath 根据类图输出路径推导时序图输出路径：foo.txt -> foo_sequence.txt
func SequencePath(classPath string) string {
	if strings.HasSuffix(classPath, ".txt") {
		return strings.TrimSuffix(classPath, ".txt") + "_sequence.txt"
	}
	return classPath + "_sequence.txt"
}
