package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// ProcessOrderUseCase 订单处理用例(管理端)
// 设计说明:
// 1. 处理队首订单:已确认→配送中(回队尾),配送中→已送达(归档)
// 2. 手工改状态走状态机裁决,非法转换原样报错给界面层提示
type ProcessOrderUseCase struct {
	orderService order.Service
}

// NewProcessOrderUseCase 创建订单处理用例
func NewProcessOrderUseCase(orderService order.Service) *ProcessOrderUseCase {
	return &ProcessOrderUseCase{
		orderService: orderService,
	}
}

// ProcessNextResponse 队首处理响应DTO
type ProcessNextResponse struct {
	OrderID      int    `json:"order_id"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"` // 处理后的状态
	Archived     bool   `json:"archived"`
}

// ProcessNext 推进队首订单一个状态
func (uc *ProcessOrderUseCase) ProcessNext(ctx context.Context) (*ProcessNextResponse, error) {
	o, err := uc.orderService.ProcessNextOrder(ctx)
	if err != nil {
		return nil, err
	}

	return &ProcessNextResponse{
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		Status:       o.Status.String(),
		Archived:     o.Status.IsTerminal(),
	}, nil
}

// UpdateStatusRequest 手工改状态请求DTO
type UpdateStatusRequest struct {
	OrderID int
	Target  order.Status
}

// UpdateStatus 手工推进指定订单的状态
func (uc *ProcessOrderUseCase) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*ProcessNextResponse, error) {
	o, err := uc.orderService.FindOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if err := uc.orderService.UpdateOrderStatus(ctx, o, req.Target); err != nil {
		return nil, err
	}

	return &ProcessNextResponse{
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		Status:       o.Status.String(),
		Archived:     o.Status.IsTerminal(),
	}, nil
}
