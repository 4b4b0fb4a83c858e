// 端到端集成测试:从演示数据灌入到订单送达的完整业务流
package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/seed"
	"github.com/xiebiao/bookshop/pkg/collection"
)

// TestFullLifecycle 完整生命周期:
// 灌入演示数据 → 上架新书 → 搜索 → 下单 → 队列处理到送达 → 跟踪归档订单
func TestFullLifecycle(t *testing.T) {
	ctx := context.Background()

	books := book.NewService(collection.NewInventoryList[*book.Book]())
	orders := order.NewService(books)

	publish := appbook.NewPublishBookUseCase(books)
	search := appbook.NewSearchBooksUseCase(books)
	create := apporder.NewCreateOrderUseCase(orders)
	process := apporder.NewProcessOrderUseCase(orders)
	track := apporder.NewTrackOrderUseCase(orders)

	// 1. 演示数据
	bookCount, orderCount, err := seed.Run(ctx, books, orders)
	require.NoError(t, err)
	require.Equal(t, 10, bookCount)
	require.Equal(t, 2, orderCount)

	// 2. 上架新书并搜索到它
	published, err := publish.Execute(ctx, appbook.PublishBookRequest{
		Title: "Go Concurrency Patterns", Author: "陈强", Price: 6888, Stock: 4,
	})
	require.NoError(t, err)

	found, err := search.SearchByTitle(ctx, "concurrency")
	require.NoError(t, err)
	require.Equal(t, 1, found.Total)
	assert.Equal(t, published.ID, found.List[0].ID)

	// 3. 下单买走全部4本
	resp, err := create.Execute(ctx, apporder.CreateOrderRequest{
		CustomerName:    "王芳",
		ShippingAddress: "广州市天河区体育西路10号",
		Items:           []apporder.CreateOrderItem{{BookID: published.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, "已确认", resp.Status)
	assert.Equal(t, "275.52", resp.Total)

	item, err := search.FindByID(ctx, published.ID)
	require.NoError(t, err)
	assert.Equal(t, "缺货", item.Stock)

	// 4. 再下一单同一本书:库存已空,订单被取消,库存不变
	_, err = create.Execute(ctx, apporder.CreateOrderRequest{
		CustomerName:    "赵磊",
		ShippingAddress: "深圳市南山区科技园",
		Items:           []apporder.CreateOrderItem{{BookID: published.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, order.ErrEmptyOrder) // 加购即被跳过,提交空订单失败

	// 5. 处理队列:演示2笔+新订单1笔,每笔两次推进到送达
	active := len(track.ListActive(ctx))
	require.Equal(t, 3, active)
	for i := 0; i < active*2; i++ {
		_, err := process.ProcessNext(ctx)
		require.NoError(t, err)
	}
	assert.Empty(t, track.ListActive(ctx))
	require.Len(t, track.ListCompleted(ctx), 3)

	// 6. 归档订单仍可跟踪,明细完整
	dto, err := track.FindByID(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "已送达", dto.Status)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, 4, dto.Items[0].Quantity)
}
