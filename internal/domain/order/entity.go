package order

import (
	"fmt"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/collection"
)

// Status 订单状态
// 设计说明:
// 1. 使用int类型而非string(便于比较,节省存储)
// 2. 定义为具名类型,便于添加方法
// 3. 状态值1-5递增,便于理解流转方向
type Status int

const (
	StatusPending   Status = 1 // 待处理(创建后的初始状态)
	StatusConfirmed Status = 2 // 已确认(库存预留成功)
	StatusShipping  Status = 3 // 配送中
	StatusDelivered Status = 4 // 已送达(终态)
	StatusCancelled Status = 5 // 已取消(终态)
)

// String 实现Stringer接口(方便展示与日志输出)
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "待处理"
	case StatusConfirmed:
		return "已确认"
	case StatusShipping:
		return "配送中"
	case StatusDelivered:
		return "已送达"
	case StatusCancelled:
		return "已取消"
	default:
		return "未知状态"
	}
}

// IsTerminal 判断是否为终态(已送达/已取消)
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. 订单明细是(图书, 数量)集合,同一图书重复添加只覆盖数量
// 2. 明细持有与目录相同的*book.Book引用:目录改库存,明细同步可见
// 3. Total在每次明细变更后全量重算(Σ 单价×数量),避免增量累计漂移
// 4. 状态转换的合法性由订单服务统一裁决,实体不自校验
type Order struct {
	ID              int
	CustomerName    string // 客户姓名
	ShippingAddress string // 收货地址
	Total           int64  // 订单总金额(分),明细变更时重算
	Status          Status // 订单状态
	CreatedAt       time.Time
	UpdatedAt       time.Time

	items *collection.InventoryList[*book.Book] // 订单明细
}

// NewOrder 创建新订单(工厂方法)
// 字段校验由订单服务完成;初始状态为待处理,明细为空,总额为0
func NewOrder(id int, customerName, shippingAddress string) *Order {
	now := time.Now()
	return &Order{
		ID:              id,
		CustomerName:    customerName,
		ShippingAddress: shippingAddress,
		Total:           0,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
		items:           collection.NewInventoryList[*book.Book](),
	}
}

// AddItem 添加订单明细
// 业务规则:图书非空,数量>0;同一图书重复添加覆盖数量
func (o *Order) AddItem(b *book.Book, quantity int) error {
	if b == nil {
		return ErrNilBook
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if err := o.items.Upsert(b, quantity); err != nil {
		return err
	}
	o.recalcTotal()
	o.UpdatedAt = time.Now()
	return nil
}

// Items 返回明细快照
func (o *Order) Items() []collection.Entry[*book.Book] {
	return o.items.Entries()
}

// ItemCount 明细条目数(不同图书的种数)
func (o *Order) ItemCount() int {
	return o.items.Size()
}

// HasItems 判断订单是否含有明细
func (o *Order) HasItems() bool {
	return !o.items.IsEmpty()
}

// IsActive 判断订单是否处于活动状态(非终态)
func (o *Order) IsActive() bool {
	return !o.Status.IsTerminal()
}

// TotalYuan 总金额的元表示,用于展示
func (o *Order) TotalYuan() string {
	return fmt.Sprintf("%.2f", float64(o.Total)/100)
}

// recalcTotal 全量重算总金额
// 每次明细变更都完整遍历,而非增量调整,杜绝累计误差
func (o *Order) recalcTotal() {
	var total int64
	for _, e := range o.items.Entries() {
		total += e.Item.Price * int64(e.Quantity)
	}
	o.Total = total
}
