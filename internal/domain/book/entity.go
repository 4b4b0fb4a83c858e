package book

import (
	"fmt"
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Book是图书聚合的根实体,包含图书的核心属性
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. ID为进程内单调递增的整数,由领域服务在创建时分配,永不复用
// 4. 目录与订单明细共享同一个*Book对象:任一路径修改库存,另一路径立即可见
type Book struct {
	ID        int
	Title     string // 书名
	Author    string // 作者
	Price     int64  // 价格(单位:分,1元=100分)
	Stock     int    // 库存数量
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 字段校验由领域服务完成,工厂只负责组装
func NewBook(id int, title, author string, price int64, stock int) *Book {
	now := time.Now()
	return &Book{
		ID:        id,
		Title:     title,
		Author:    author,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格必须>0
func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateStock 更新库存(领域行为)
// 业务规则:库存不能为负数
func (b *Book) UpdateStock(newStock int) error {
	if newStock < 0 {
		return ErrInvalidStock
	}
	b.Stock = newStock
	b.UpdatedAt = time.Now()
	return nil
}

// DecrStock 扣减库存(用于订单确认时的库存预留)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// IncrStock 增加库存(用于预留回滚、补货)
func (b *Book) IncrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.Stock += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息,空字段跳过
func (b *Book) UpdateInfo(title, author string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	b.UpdatedAt = time.Now()
}

// PriceYuan 价格的元表示,用于展示
func (b *Book) PriceYuan() string {
	return fmt.Sprintf("%.2f", float64(b.Price)/100)
}

// DisplayStock 库存的展示形式,零库存显示"缺货"
func (b *Book) DisplayStock() string {
	if b.Stock > 0 {
		return fmt.Sprintf("%d", b.Stock)
	}
	return "缺货"
}
