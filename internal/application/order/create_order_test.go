package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookdomain "github.com/xiebiao/bookshop/internal/domain/book"
	orderdomain "github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/collection"
)

func newUseCases() (bookdomain.Service, *CreateOrderUseCase, *ProcessOrderUseCase, *TrackOrderUseCase) {
	books := bookdomain.NewService(collection.NewInventoryList[*bookdomain.Book]())
	orders := orderdomain.NewService(books)
	return books, NewCreateOrderUseCase(orders), NewProcessOrderUseCase(orders), NewTrackOrderUseCase(orders)
}

// TestCreateOrder_Confirmed 测试正常下单:确认入队,明细完整
func TestCreateOrder_Confirmed(t *testing.T) {
	books, create, _, track := newUseCases()
	ctx := context.Background()

	a, _ := books.AddBook(ctx, "图书A", "作者A", 1000, 5)
	b, _ := books.AddBook(ctx, "图书B", "作者B", 2500, 5)

	resp, err := create.Execute(ctx, CreateOrderRequest{
		CustomerName:    "张伟",
		ShippingAddress: "北京市海淀区中关村大街1号",
		Items: []CreateOrderItem{
			{BookID: a.ID, Quantity: 2},
			{BookID: b.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "已确认", resp.Status)
	assert.Equal(t, "45.00", resp.Total)
	assert.Empty(t, resp.SkippedBooks)
	assert.Equal(t, 3, a.Stock)

	dto, err := track.FindByID(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 2, dto.ItemKinds)
	assert.Equal(t, "张伟", dto.CustomerName)
}

// TestCreateOrder_SkipUnavailable 测试不存在/库存不足的图书被跳过
func TestCreateOrder_SkipUnavailable(t *testing.T) {
	books, create, _, _ := newUseCases()
	ctx := context.Background()

	a, _ := books.AddBook(ctx, "图书A", "作者A", 1000, 5)

	resp, err := create.Execute(ctx, CreateOrderRequest{
		CustomerName:    "李娜",
		ShippingAddress: "上海市浦东新区",
		Items: []CreateOrderItem{
			{BookID: a.ID, Quantity: 2},
			{BookID: 9999, Quantity: 1},  // 不存在
			{BookID: a.ID, Quantity: 99}, // 超过库存,覆盖尝试失败
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{9999, a.ID}, resp.SkippedBooks)
	assert.Equal(t, "已确认", resp.Status)
	assert.Equal(t, "20.00", resp.Total)
}

// TestCreateOrder_AllSkipped 测试全部明细不可用时提交失败(空订单)
func TestCreateOrder_AllSkipped(t *testing.T) {
	_, create, _, _ := newUseCases()
	ctx := context.Background()

	_, err := create.Execute(ctx, CreateOrderRequest{
		CustomerName:    "王芳",
		ShippingAddress: "广州市天河区",
		Items:           []CreateOrderItem{{BookID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, orderdomain.ErrEmptyOrder)
}

// TestProcessAndTrack 测试下单后的处理流水与跟踪
func TestProcessAndTrack(t *testing.T) {
	books, create, process, track := newUseCases()
	ctx := context.Background()

	a, _ := books.AddBook(ctx, "图书A", "作者A", 1000, 5)

	resp, err := create.Execute(ctx, CreateOrderRequest{
		CustomerName:    "张伟",
		ShippingAddress: "北京市海淀区",
		Items:           []CreateOrderItem{{BookID: a.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// 确认→配送中
	got, err := process.ProcessNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "配送中", got.Status)
	assert.False(t, got.Archived)

	// 配送中→已送达,归档
	got, err = process.ProcessNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "已送达", got.Status)
	assert.True(t, got.Archived)

	assert.Empty(t, track.ListActive(ctx))
	require.Len(t, track.ListCompleted(ctx), 1)
	assert.Equal(t, resp.OrderID, track.ListCompleted(ctx)[0].ID)

	// 队列已空
	_, err = process.ProcessNext(ctx)
	assert.ErrorIs(t, err, orderdomain.ErrNoActiveOrders)
}
