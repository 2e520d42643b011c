package model

// ElementKind 是导出记录的类型
type ElementKind string

const (
	Class  ElementKind = "CLASS"  // 对应一个 ClassModel
	Method ElementKind = "METHOD" // 对应一个 MethodInteractionModel
)

// Element 是 JSONL 导出的一行记录，Class 与 Sequence 二选一
type Element struct {
	Kind     ElementKind             `json:"Kind"`
	Path     string                  `json:"Path"`
	Class    *ClassModel             `json:"Class,omitempty"`
	Sequence *MethodInteractionModel `json:"Sequence,omitempty"`
}
