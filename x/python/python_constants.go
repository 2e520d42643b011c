package python

const (
	// ConstructorName 是实例初始化方法的名称
	ConstructorName = "__init__"
	// InstanceReceiverName 是实例引用的约定名称，只有 self.<field> = ... 会被视为属性赋值
	InstanceReceiverName = "self"
	// InstanceReceiverParameterIndex 是构造函数中实例引用参数的位置，该位置及之前的参数不计为属性
	InstanceReceiverParameterIndex = 0
)

// Tree-sitter Python 节点类型
const (
	kindBlock                  = "block"
	kindComment                = "comment"
	kindClassDefinition        = "class_definition"
	kindFunctionDefinition     = "function_definition"
	kindDecoratedDefinition    = "decorated_definition"
	kindExpressionStatement    = "expression_statement"
	kindAssignment             = "assignment"
	kindCall                   = "call"
	kindIdentifier             = "identifier"
	kindAttribute              = "attribute"
	kindArgumentList           = "argument_list"
	kindElseClause             = "else_clause"
	kindTypedParameter         = "typed_parameter"
	kindDefaultParameter       = "default_parameter"
	kindTypedDefaultParameter  = "typed_default_parameter"
	kindListSplatPattern       = "list_splat_pattern"
	kindDictionarySplatPattern = "dictionary_splat_pattern"
	kindKeywordSeparator       = "keyword_separator"
	kindAsync                  = "async"
	kindFinallyClause          = "finally_clause"
	kindIfStatement            = "if_statement"
	kindElifClause             = "elif_clause"
	kindParenthesized          = "parenthesized_expression"
	kindPrintStatement         = "print_statement"
	kindExecStatement          = "exec_statement"
)
