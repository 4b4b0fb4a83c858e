// Package algorithm 提供书店练习用的排序与查找算法
//
// 设计说明:
// 1. 手写实现,不使用sort/slices标准库(算法本身即练习内容)
// 2. 使用泛型+比较函数,与具体领域类型解耦
// 3. 单线程使用,所有函数同步执行
package algorithm

// QuickSort 原地快速排序
//
// 实现要点:
// 1. Lomuto分区,固定取区间末元素为pivot
// 2. 平均O(n log n),最坏(如已有序输入)退化为O(n²),练习规模下可接受
// 3. 不稳定排序:相等元素的相对顺序不保证
func QuickSort[E any](items []E, less func(a, b E) bool) {
	quickSort(items, 0, len(items)-1, less)
}

func quickSort[E any](items []E, low, high int, less func(a, b E) bool) {
	if low < high {
		pi := partition(items, low, high, less)
		quickSort(items, low, pi-1, less)
		quickSort(items, pi+1, high, less)
	}
}

// partition 分区:小于pivot的元素移到左侧,返回pivot最终下标
func partition[E any](items []E, low, high int, less func(a, b E) bool) int {
	pivot := items[high]
	i := low - 1

	for j := low; j < high; j++ {
		if less(items[j], pivot) {
			i++
			items[i], items[j] = items[j], items[i]
		}
	}
	items[i+1], items[high] = items[high], items[i+1]
	return i + 1
}
