package collection

// snode 栈的单链表节点
type snode[E any] struct {
	element E
	next    *snode[E]
}

// Stack 单链表LIFO栈,用于菜单导航等场景
// push/pop均在栈顶操作,O(1)
type Stack[E any] struct {
	top  *snode[E]
	size int
}

// NewStack 创建空栈
func NewStack[E any]() *Stack[E] {
	return &Stack[E]{}
}

// Push 元素入栈
func (s *Stack[E]) Push(element E) {
	s.top = &snode[E]{element: element, next: s.top}
	s.size++
}

// Pop 移除并返回栈顶元素
func (s *Stack[E]) Pop() (E, error) {
	var zero E
	if s.top == nil {
		return zero, ErrEmptyStack
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.size--
	return n.element, nil
}

// Peek 返回栈顶元素但不移除
func (s *Stack[E]) Peek() (E, error) {
	var zero E
	if s.top == nil {
		return zero, ErrEmptyStack
	}
	return s.top.element, nil
}

// Size 返回元素个数
func (s *Stack[E]) Size() int {
	return s.size
}

// IsEmpty 判断栈是否为空
func (s *Stack[E]) IsEmpty() bool {
	return s.size == 0
}
