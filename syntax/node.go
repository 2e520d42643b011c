package syntax

// Node 是提取过程关心的语法节点的封闭集合。
// 只有本包中的类型实现了该接口，调用方通过 type switch 穷举处理。
type Node interface {
	node()
}

// Module 是一个源文件的根节点
type Module struct {
	Body []Node
}

// ClassDef 对应类定义
type ClassDef struct {
	Name  string
	Bases []Node // 基类表达式，按源码顺序
	Body  []Node // 类体中的直接语句
}

// ParamKind 区分参数的声明形式
type ParamKind int

const (
	ParamPositional    ParamKind = iota // 普通位置参数（含带默认值、带类型注解的形式）
	ParamVarPositional                  // *args
	ParamKeywordOnly                    // * 或 *args 之后的参数
	ParamVarKeyword                     // **kwargs
)

// Param 是函数的一个形参
type Param struct {
	Name string
	Kind ParamKind
}

// FuncDef 对应函数或方法定义
type FuncDef struct {
	Name   string
	Params []Param
	Body   []Node
	Async  bool
}

// Assign 对应普通赋值语句。链式赋值 a = b = v 的所有目标都在 Targets 中。
type Assign struct {
	Targets []Node
	Value   Node
}

// ExprStmt 对应仅由一个表达式构成的语句
type ExprStmt struct {
	Value Node
}

// Call 对应调用表达式
type Call struct {
	Func Node
	Args []Node
}

// Name 对应简单标识符引用
type Name struct {
	ID string
}

// Attribute 对应 <value>.<attr> 属性访问
type Attribute struct {
	Value Node
	Attr  string
}

// Other 承载其它所有节点，仅保留子节点以便遍历
type Other struct {
	Kind     string
	Children []Node
}

func (*Module) node()    {}
func (*ClassDef) node()  {}
func (*FuncDef) node()   {}
func (*Assign) node()    {}
func (*ExprStmt) node()  {}
func (*Call) node()      {}
func (*Name) node()      {}
func (*Attribute) node() {}
func (*Other) node()     {}
