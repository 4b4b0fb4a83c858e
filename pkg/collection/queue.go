package collection

// qnode 队列的单链表节点,节点所有权归队列独占
type qnode[E any] struct {
	element E
	next    *qnode[E]
}

// Queue 单链表FIFO队列
//
// 设计说明:
// 1. head/tail双指针,入队出队均为O(1)
// 2. Snapshot沿节点链只读遍历,扫描前后队列内容与顺序完全不变
//    (替代"出队再入队还原"的破坏性扫描方式)
// 3. 空队列上的Dequeue/Peek返回ErrEmptyQueue,由调用方处理
type Queue[E any] struct {
	head *qnode[E]
	tail *qnode[E]
	size int
}

// NewQueue 创建空队列
func NewQueue[E any]() *Queue[E] {
	return &Queue[E]{}
}

// Enqueue 元素入队(追加到队尾)
func (q *Queue[E]) Enqueue(element E) {
	n := &qnode[E]{element: element}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Dequeue 移除并返回队首元素
func (q *Queue[E]) Dequeue() (E, error) {
	var zero E
	if q.head == nil {
		return zero, ErrEmptyQueue
	}

	n := q.head
	q.head = n.next
	n.next = nil // 断开出队节点,避免残留引用
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return n.element, nil
}

// Peek 返回队首元素但不移除
func (q *Queue[E]) Peek() (E, error) {
	var zero E
	if q.head == nil {
		return zero, ErrEmptyQueue
	}
	return q.head.element, nil
}

// Size 返回元素个数
func (q *Queue[E]) Size() int {
	return q.size
}

// IsEmpty 判断队列是否为空
func (q *Queue[E]) IsEmpty() bool {
	return q.size == 0
}

// Snapshot 返回从队首到队尾的元素快照
// 非破坏性扫描:不修改队列,用于按序展示与按条件查找
func (q *Queue[E]) Snapshot() []E {
	snapshot := make([]E, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		snapshot = append(snapshot, n.element)
	}
	return snapshot
}
