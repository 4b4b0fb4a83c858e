// Package seed 提供启动时的演示数据灌入
//
// 设计说明:
// 1. 图书与订单都走正常的领域服务入口,不绕过校验与状态机
// 2. 演示订单通过真实的提交流程入队,启动后队列即有可处理的订单
// 3. 灌入失败只影响演示体验,返回错误由调用方决定是否中止
package seed

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// seedBook 演示图书数据
type seedBook struct {
	title  string
	author string
	price  int64 // 分
	stock  int
}

// books 演示书目(含一本零库存,用于展示"缺货")
var books = []seedBook{
	{"Python Programming Basics", "John Smith", 4599, 15},
	{"Data Structures in Java", "Emma Wilson", 5250, 10},
	{"Web Development with React", "Michael Brown", 3875, 20},
	{"Machine Learning Fundamentals", "Sarah Davis", 6700, 8},
	{"Database Design Essentials", "David Lee", 4200, 12},
	{"Algorithms Unlocked", "Lisa Chen", 3550, 18},
	{"Clean Code Practices", "Robert Taylor", 4875, 7},
	{"Network Security Basics", "Jennifer White", 5500, 9},
	{"Cloud Computing Guide", "Kevin Martin", 6125, 5},
	{"Limited Edition Classics", "Various Authors", 9999, 0},
}

// Run 灌入演示数据
// 返回灌入的图书数与订单数
func Run(ctx context.Context, bookSvc book.Service, orderSvc order.Service) (int, int, error) {
	ids := make([]int, 0, len(books))
	for _, sb := range books {
		b, err := bookSvc.AddBook(ctx, sb.title, sb.author, sb.price, sb.stock)
		if err != nil {
			return len(ids), 0, fmt.Errorf("灌入图书[%s]失败: %w", sb.title, err)
		}
		ids = append(ids, b.ID)
	}

	// 两笔演示订单:走真实的创建-加购-提交流程
	orderCount := 0
	demos := []struct {
		name    string
		address string
		items   map[int]int // 书目下标→数量
	}{
		{"张伟", "北京市海淀区中关村大街1号", map[int]int{0: 2, 2: 1}},
		{"李娜", "上海市浦东新区世纪大道100号", map[int]int{1: 1, 3: 1, 5: 2}},
	}
	for _, d := range demos {
		o, err := orderSvc.CreateOrder(ctx, d.name, d.address)
		if err != nil {
			return len(ids), orderCount, fmt.Errorf("创建演示订单失败: %w", err)
		}
		for idx, qty := range d.items {
			if _, err := orderSvc.AddBookToOrder(ctx, o, ids[idx], qty); err != nil {
				return len(ids), orderCount, fmt.Errorf("演示订单加购失败: %w", err)
			}
		}
		if err := orderSvc.SubmitOrder(ctx, o); err != nil {
			return len(ids), orderCount, fmt.Errorf("提交演示订单失败: %w", err)
		}
		orderCount++
	}

	return len(ids), orderCount, nil
}
