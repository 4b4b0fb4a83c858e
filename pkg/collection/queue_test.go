package collection

import (
	"testing"
)

// TestQueue_FIFO 测试先进先出定律:入队n次后依次出队,顺序与插入一致
func TestQueue_FIFO(t *testing.T) {
	q := NewQueue[int]()
	for i := 1; i <= 10; i++ {
		q.Enqueue(i)
	}
	if q.Size() != 10 {
		t.Fatalf("期望size=10,实际%d", q.Size())
	}

	for i := 1; i <= 10; i++ {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue失败: %v", err)
		}
		if got != i {
			t.Errorf("期望出队%d,实际%d", i, got)
		}
	}
	if !q.IsEmpty() {
		t.Error("全部出队后队列应为空")
	}
}

// TestQueue_Empty 测试空队列操作
func TestQueue_Empty(t *testing.T) {
	q := NewQueue[string]()

	if _, err := q.Dequeue(); err != ErrEmptyQueue {
		t.Errorf("期望ErrEmptyQueue,实际%v", err)
	}
	if _, err := q.Peek(); err != ErrEmptyQueue {
		t.Errorf("期望ErrEmptyQueue,实际%v", err)
	}
}

// TestQueue_Peek 测试Peek不移除元素
func TestQueue_Peek(t *testing.T) {
	q := NewQueue[string]()
	q.Enqueue("first")
	q.Enqueue("second")

	got, err := q.Peek()
	if err != nil {
		t.Fatalf("Peek失败: %v", err)
	}
	if got != "first" {
		t.Errorf("期望队首first,实际%s", got)
	}
	if q.Size() != 2 {
		t.Errorf("Peek后期望size=2,实际%d", q.Size())
	}
}

// TestQueue_SnapshotNonDestructive 测试非破坏性扫描:
// 扫描前后队列的大小与出队顺序完全一致
func TestQueue_SnapshotNonDestructive(t *testing.T) {
	q := NewQueue[int]()
	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}

	snapshot := q.Snapshot()
	if len(snapshot) != 5 {
		t.Fatalf("期望快照长度=5,实际%d", len(snapshot))
	}
	for i, v := range snapshot {
		if v != i+1 {
			t.Errorf("快照下标%d期望%d,实际%d", i, i+1, v)
		}
	}

	// 扫描不改变队列本身
	if q.Size() != 5 {
		t.Fatalf("扫描后期望size=5,实际%d", q.Size())
	}
	for i := 1; i <= 5; i++ {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue失败: %v", err)
		}
		if got != i {
			t.Errorf("扫描后出队顺序改变:期望%d,实际%d", i, got)
		}
	}
}

// TestQueue_DrainAndRefill 测试"出队再入队还原"方式仍然保序
// (排队查找的另一种实现策略,此处作为回归用例保留)
func TestQueue_DrainAndRefill(t *testing.T) {
	q := NewQueue[int]()
	tmp := NewQueue[int]()
	for i := 1; i <= 6; i++ {
		q.Enqueue(i)
	}

	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		tmp.Enqueue(v)
	}
	for !tmp.IsEmpty() {
		v, _ := tmp.Dequeue()
		q.Enqueue(v)
	}

	for i := 1; i <= 6; i++ {
		got, _ := q.Dequeue()
		if got != i {
			t.Errorf("还原后顺序错误:期望%d,实际%d", i, got)
		}
	}
}

// TestQueue_TailReset 测试队列清空后再入队
func TestQueue_TailReset(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	if _, err := q.Dequeue(); err != nil {
		t.Fatalf("Dequeue失败: %v", err)
	}

	q.Enqueue(2)
	got, err := q.Dequeue()
	if err != nil {
		t.Fatalf("清空后再入队,Dequeue失败: %v", err)
	}
	if got != 2 {
		t.Errorf("期望2,实际%d", got)
	}
}
