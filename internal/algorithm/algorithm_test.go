package algorithm

import (
	"math/rand"
	"strings"
	"testing"
)

// TestQuickSort_Ints 测试整数升序排序
func TestQuickSort_Ints(t *testing.T) {
	items := []int{5, 2, 9, 1, 5, 6, 0, 3}
	QuickSort(items, func(a, b int) bool { return a < b })

	for i := 1; i < len(items); i++ {
		if items[i-1] > items[i] {
			t.Fatalf("下标%d处非递增: %v", i, items)
		}
	}
}

// TestQuickSort_Permutation 测试排序结果是输入的重排:
// 随机输入,排序前后元素多重集一致且单调不减
func TestQuickSort_Permutation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		n := r.Intn(50) + 1
		items := make([]int, n)
		before := make(map[int]int)
		for i := range items {
			items[i] = r.Intn(100)
			before[items[i]]++
		}

		QuickSort(items, func(a, b int) bool { return a < b })

		after := make(map[int]int)
		for i, v := range items {
			after[v]++
			if i > 0 && items[i-1] > v {
				t.Fatalf("第%d轮:排序结果非递增", round)
			}
		}
		if len(before) != len(after) {
			t.Fatalf("第%d轮:排序改变了元素集合", round)
		}
		for k, c := range before {
			if after[k] != c {
				t.Fatalf("第%d轮:元素%d出现次数变化 %d→%d", round, k, c, after[k])
			}
		}
	}
}

// TestQuickSort_EdgeCases 测试空切片与单元素
func TestQuickSort_EdgeCases(t *testing.T) {
	var empty []int
	QuickSort(empty, func(a, b int) bool { return a < b }) // 不应panic

	one := []int{7}
	QuickSort(one, func(a, b int) bool { return a < b })
	if one[0] != 7 {
		t.Errorf("单元素排序后被修改: %v", one)
	}
}

// TestQuickSort_Strings 测试大小写不敏感的字符串排序
func TestQuickSort_Strings(t *testing.T) {
	items := []string{"banana", "Apple", "cherry", "apple"}
	QuickSort(items, func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})

	for i := 1; i < len(items); i++ {
		if strings.ToLower(items[i-1]) > strings.ToLower(items[i]) {
			t.Fatalf("大小写不敏感排序失败: %v", items)
		}
	}
}

// TestBinarySearch 测试二分查找与线性扫描结果一致(随机交叉验证)
func TestBinarySearch(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		n := r.Intn(40) + 1
		items := make([]int, n)
		seen := make(map[int]bool)
		for i := range items {
			v := r.Intn(200)
			for seen[v] {
				v = r.Intn(200)
			}
			seen[v] = true
			items[i] = v
		}
		QuickSort(items, func(a, b int) bool { return a < b })

		target := items[r.Intn(n)]
		got := BinarySearch(items, func(v int) int { return v - target })

		// 线性扫描作为基准
		want := NotFound
		for i, v := range items {
			if v == target {
				want = i
				break
			}
		}
		if got != want {
			t.Fatalf("第%d轮:二分=%d,线性=%d", round, got, want)
		}
	}
}

// TestBinarySearch_NotFound 测试未命中返回哨兵值
func TestBinarySearch_NotFound(t *testing.T) {
	items := []int{1, 3, 5, 7}
	if got := BinarySearch(items, func(v int) int { return v - 4 }); got != NotFound {
		t.Errorf("期望%d,实际%d", NotFound, got)
	}
	if got := BinarySearch(nil, func(v int) int { return v }); got != NotFound {
		t.Errorf("空切片期望%d,实际%d", NotFound, got)
	}
}

// TestFilter 测试过滤保持相对顺序
func TestFilter(t *testing.T) {
	items := []string{"Go Basics", "Java Guide", "Go Advanced", "Rust"}
	got := Filter(items, func(s string) bool {
		return strings.Contains(strings.ToLower(s), "go")
	})

	want := []string{"Go Basics", "Go Advanced"}
	if len(got) != len(want) {
		t.Fatalf("期望%d个结果,实际%d个", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("下标%d期望%q,实际%q", i, want[i], got[i])
		}
	}
}

// TestFilter_EmptyTerm 测试空条件匹配全部
func TestFilter_EmptyTerm(t *testing.T) {
	items := []string{"a", "b"}
	got := Filter(items, func(s string) bool {
		return strings.Contains(strings.ToLower(s), "")
	})
	if len(got) != 2 {
		t.Errorf("空子串应匹配所有元素,实际%d个", len(got))
	}
}
