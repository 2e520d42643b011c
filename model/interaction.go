package model

// Interaction 表示一次 <caller>.<callee>(...) 形式的调用
type Interaction struct {
	Caller string `json:"Caller"`
	Callee string `json:"Callee"`
}

// MethodInteractionModel 描述了一个函数/方法体中直接出现的调用语句
type MethodInteractionModel struct {
	Method       string        `json:"Method"`
	Interactions []Interaction `json:"Interactions"`
}
