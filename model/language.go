package model

// Language 标识支持的编程语言
type Language string

const (
	LangPython Language = "python"
)

// FileExtension 返回语言对应的源文件扩展名
func (l Language) FileExtension() string {
	switch l {
	case LangPython:
		return ".py"
	default:
		return ""
	}
}
