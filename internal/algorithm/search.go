package algorithm

// NotFound 查找未命中时的哨兵下标
const NotFound = -1

// BinarySearch 二分查找
//
// 前置条件:items必须已按cmp对应的键升序排序,否则结果未定义
// cmp返回值约定:元素键<目标返回负数,相等返回0,大于返回正数
// 未命中返回NotFound(-1)
func BinarySearch[E any](items []E, cmp func(E) int) int {
	left, right := 0, len(items)-1

	for left <= right {
		mid := left + (right-left)/2
		c := cmp(items[mid])
		switch {
		case c == 0:
			return mid
		case c < 0:
			left = mid + 1 // 目标在右半区
		default:
			right = mid - 1 // 目标在左半区
		}
	}
	return NotFound
}

// Filter 线性过滤,返回所有命中元素
// 保持原切片中的相对顺序,结果为新切片
func Filter[E any](items []E, match func(E) bool) []E {
	result := make([]E, 0, len(items))
	for _, item := range items {
		if match(item) {
			result = append(result, item)
		}
	}
	return result
}
