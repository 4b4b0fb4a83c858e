// Package collection 提供书店练习用的自定义集合结构
//
// 设计说明:
// 1. 三种结构(InventoryList/Queue/Stack)均为手写实现,不依赖container包
// 2. 使用Go泛型,元素类型由调用方指定
// 3. 单线程使用,不含任何锁(与整体架构一致)
package collection

import (
	"errors"
)

// 集合层通用错误
var (
	ErrNilItem     = errors.New("元素不能为空")
	ErrNegativeQty = errors.New("数量不能为负数")
	ErrEmptyQueue  = errors.New("队列为空")
	ErrEmptyStack  = errors.New("栈为空")
)

// defaultCapacity InventoryList初始容量
const defaultCapacity = 10

// Entry 库存条目:元素与其数量的二元组
type Entry[E comparable] struct {
	Item     E
	Quantity int
}

// InventoryList 基于数组的键值集合
//
// 设计说明:
// 1. 每个元素在列表中至多出现一次,重复Upsert只覆盖数量
// 2. 底层数组按需扩容(容量翻倍,均摊O(1)追加)
// 3. 元素相等性使用==(对指针元素即同一对象),调用方需保证一致
// 4. Remove后保持剩余条目的相对顺序(左移补位)
type InventoryList[E comparable] struct {
	entries []Entry[E]
}

// NewInventoryList 创建空的库存列表
func NewInventoryList[E comparable]() *InventoryList[E] {
	return &InventoryList[E]{
		entries: make([]Entry[E], 0, defaultCapacity),
	}
}

// Upsert 新增或更新条目
// 业务规则:
// - 元素为零值或数量为负均拒绝
// - 已存在相同元素时原地覆盖数量,不产生重复条目
func (l *InventoryList[E]) Upsert(item E, quantity int) error {
	var zero E
	if item == zero {
		return ErrNilItem
	}
	if quantity < 0 {
		return ErrNegativeQty
	}

	if i := l.IndexOf(item); i != -1 {
		l.entries[i].Quantity = quantity
		return nil
	}

	// append在容量不足时自动翻倍扩容
	l.entries = append(l.entries, Entry[E]{Item: item, Quantity: quantity})
	return nil
}

// Remove 删除条目,不存在时静默返回
func (l *InventoryList[E]) Remove(item E) {
	i := l.IndexOf(item)
	if i == -1 {
		return
	}
	// 左移补位,保持剩余条目相对顺序
	copy(l.entries[i:], l.entries[i+1:])
	l.entries = l.entries[:len(l.entries)-1]
}

// QuantityOf 返回元素数量,不存在返回0
func (l *InventoryList[E]) QuantityOf(item E) int {
	if i := l.IndexOf(item); i != -1 {
		return l.entries[i].Quantity
	}
	return 0
}

// IndexOf 返回元素下标,不存在返回-1
func (l *InventoryList[E]) IndexOf(item E) int {
	for i := range l.entries {
		if l.entries[i].Item == item {
			return i
		}
	}
	return -1
}

// Contains 判断元素是否存在
func (l *InventoryList[E]) Contains(item E) bool {
	return l.IndexOf(item) != -1
}

// Size 返回条目数
func (l *InventoryList[E]) Size() int {
	return len(l.entries)
}

// IsEmpty 判断是否为空
func (l *InventoryList[E]) IsEmpty() bool {
	return len(l.entries) == 0
}

// Entries 返回条目快照(拷贝,非实时视图)
// 调用方可安全排序/遍历,不影响列表本身
func (l *InventoryList[E]) Entries() []Entry[E] {
	snapshot := make([]Entry[E], len(l.entries))
	copy(snapshot, l.entries)
	return snapshot
}
