package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/collection"
)

// TestRun 测试演示数据灌入:图书齐全,订单确认入队,库存已扣减
func TestRun(t *testing.T) {
	books := book.NewService(collection.NewInventoryList[*book.Book]())
	orders := order.NewService(books)
	ctx := context.Background()

	bookCount, orderCount, err := Run(ctx, books, orders)
	require.NoError(t, err)
	assert.Equal(t, 10, bookCount)
	assert.Equal(t, 2, orderCount)
	assert.Equal(t, 10, books.Count(ctx))

	// 演示订单走了真实提交流程:已确认且在活动队列
	active := orders.ActiveOrders(ctx)
	require.Len(t, active, 2)
	for _, o := range active {
		assert.Equal(t, order.StatusConfirmed, o.Status)
		assert.True(t, o.HasItems())
	}

	// 第一本书被订单1买走2本:15-2=13
	all, err := books.ListAll(ctx, book.SortByID)
	require.NoError(t, err)
	assert.Equal(t, 13, all[0].Stock)

	// 零库存演示书保持缺货
	assert.Equal(t, "缺货", all[9].DisplayStock())
}
