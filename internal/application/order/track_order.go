package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// TrackOrderUseCase 订单查询用例
// 客户端按ID跟踪自己的订单,管理端查看两条队列的全貌
type TrackOrderUseCase struct {
	orderService order.Service
}

// NewTrackOrderUseCase 创建订单查询用例
func NewTrackOrderUseCase(orderService order.Service) *TrackOrderUseCase {
	return &TrackOrderUseCase{
		orderService: orderService,
	}
}

// OrderItemDTO 订单明细展示项
type OrderItemDTO struct {
	BookID   int    `json:"book_id"`
	Title    string `json:"title"`
	Price    string `json:"price"` // 单价(元)
	Quantity int    `json:"quantity"`
}

// OrderDTO 订单展示DTO
type OrderDTO struct {
	ID              int            `json:"id"`
	CustomerName    string         `json:"customer_name"`
	ShippingAddress string         `json:"shipping_address"`
	Total           string         `json:"total"` // 总金额(元)
	Status          string         `json:"status"`
	ItemKinds       int            `json:"item_kinds"` // 明细种数
	Items           []OrderItemDTO `json:"items"`
	CreatedAt       string         `json:"created_at"`
}

// FindByID 按ID查找订单(活动队列优先,其次完成队列)
func (uc *TrackOrderUseCase) FindByID(ctx context.Context, id int) (*OrderDTO, error) {
	o, err := uc.orderService.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toOrderDTO(o)
	return &dto, nil
}

// ListActive 活动队列快照(队首到队尾)
func (uc *TrackOrderUseCase) ListActive(ctx context.Context) []OrderDTO {
	return toOrderDTOs(uc.orderService.ActiveOrders(ctx))
}

// ListCompleted 完成队列快照
func (uc *TrackOrderUseCase) ListCompleted(ctx context.Context) []OrderDTO {
	return toOrderDTOs(uc.orderService.CompletedOrders(ctx))
}

// ListAll 全部订单快照(活动在前)
func (uc *TrackOrderUseCase) ListAll(ctx context.Context) []OrderDTO {
	return toOrderDTOs(uc.orderService.AllOrders(ctx))
}

// toOrderDTO 实体转展示DTO
func toOrderDTO(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, o.ItemCount())
	for _, e := range o.Items() {
		items = append(items, OrderItemDTO{
			BookID:   e.Item.ID,
			Title:    e.Item.Title,
			Price:    e.Item.PriceYuan(),
			Quantity: e.Quantity,
		})
	}

	return OrderDTO{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		ShippingAddress: o.ShippingAddress,
		Total:           o.TotalYuan(),
		Status:          o.Status.String(),
		ItemKinds:       o.ItemCount(),
		Items:           items,
		CreatedAt:       o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// toOrderDTOs 批量转换
func toOrderDTOs(orders []*order.Order) []OrderDTO {
	dtos := make([]OrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = toOrderDTO(o)
	}
	return dtos
}
