package model

// ClassModel 描述了从源码中恢复出的一个类的结构信息。
// 所有字段都是纯名称，不持有对其它 ClassModel 的引用。
type ClassModel struct {
	Name       string   `json:"Name"`       // Name: 类声明的标识符
	Attributes []string `json:"Attributes"` // Attributes: 构造函数参数（去掉实例引用）以及类体内的 self.<field> 赋值
	Methods    []string `json:"Methods"`    // Methods: 按声明顺序排列的方法名，包含构造函数
	Parents    []string `json:"Parents"`    // Parents: 直接的简单基类名，点号/下标/调用形式的基类会被跳过
}

// NewClassModel 创建一个字段均为空切片的 ClassModel
func NewClassModel(name string) ClassModel {
	return ClassModel{
		Name:       name,
		Attributes: []string{},
		Methods:    []string{},
		Parents:    []string{},
	}
}
