package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// CreateOrderUseCase 下单用例
// 教学要点:这是整个项目最核心的用例之一
// 涉及:订单构建、库存复核、预留补偿
//
// 核心问题:库存超卖
// 场景:图书库存2本,两笔订单各要2本
// 错误实现:
//  1. 加购时检查库存 → 都够
//  2. 提交时直接确认
//     结果:两笔都确认,卖出4本(超卖2本!)
//
// 正确实现:提交时复核并预留
//  1. 提交时逐明细扣减库存(此时才是权威检查)
//  2. 任一明细不足 → 已扣减的全部回滚,订单取消
//  3. 全部扣减成功 → 订单确认,进入处理队列
type CreateOrderUseCase struct {
	orderService order.Service
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(orderService order.Service) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderService: orderService,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	CustomerName    string            // 客户姓名
	ShippingAddress string            // 收货地址
	Items           []CreateOrderItem // 订单明细
}

// CreateOrderItem 订单明细项
type CreateOrderItem struct {
	BookID   int // 图书ID
	Quantity int // 购买数量
}

// CreateOrderResponse 下单响应DTO
type CreateOrderResponse struct {
	OrderID      int      `json:"order_id"`
	Total        string   `json:"total"` // 总金额(元)
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at"`
	SkippedBooks []int    `json:"skipped_books,omitempty"` // 不存在或库存不足被跳过的图书ID
	Message      string   `json:"message,omitempty"`       // 取消原因等业务提示
}

// Execute 执行下单用例
// 流程:创建订单 → 逐项加购(跳过不可用图书) → 提交
// 提交阶段的库存不足不是程序错误:订单被取消归档,
// 响应的Status为"已取消",Message带上原因
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	o, err := uc.orderService.CreateOrder(ctx, req.CustomerName, req.ShippingAddress)
	if err != nil {
		return nil, err
	}

	var skipped []int
	for _, item := range req.Items {
		ok, err := uc.orderService.AddBookToOrder(ctx, o, item.BookID, item.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			skipped = append(skipped, item.BookID)
		}
	}

	resp := &CreateOrderResponse{
		OrderID:      o.ID,
		SkippedBooks: skipped,
	}

	if err := uc.orderService.SubmitOrder(ctx, o); err != nil {
		// 库存不足导致的取消是业务结果,转换为响应提示而非错误
		if o.Status == order.StatusCancelled {
			resp.Total = o.TotalYuan()
			resp.Status = o.Status.String()
			resp.CreatedAt = o.CreatedAt.Format("2006-01-02 15:04:05")
			resp.Message = err.Error()
			return resp, nil
		}
		return nil, err
	}

	resp.Total = o.TotalYuan()
	resp.Status = o.Status.String()
	resp.CreatedAt = o.CreatedAt.Format("2006-01-02 15:04:05")
	return resp, nil
}
