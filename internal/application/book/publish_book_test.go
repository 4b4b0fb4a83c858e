package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/collection"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func newUseCases() (*PublishBookUseCase, *ListBooksUseCase, *SearchBooksUseCase, *ManageBookUseCase) {
	svc := book.NewService(collection.NewInventoryList[*book.Book]())
	return NewPublishBookUseCase(svc), NewListBooksUseCase(svc),
		NewSearchBooksUseCase(svc), NewManageBookUseCase(svc)
}

// TestPublishThenList 测试上架后列表可见,价格与库存展示转换正确
func TestPublishThenList(t *testing.T) {
	publish, list, _, _ := newUseCases()
	ctx := context.Background()

	resp, err := publish.Execute(ctx, PublishBookRequest{
		Title: "Go语言实战", Author: "张三", Price: 4599, Stock: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, "45.99", resp.Price)

	_, err = publish.Execute(ctx, PublishBookRequest{
		Title: "绝版书", Author: "李四", Price: 9900, Stock: 0,
	})
	require.NoError(t, err)

	got, err := list.Execute(ctx, ListBooksRequest{SortBy: "price"})
	require.NoError(t, err)
	require.Equal(t, 2, got.Total)
	// 价格升序
	assert.Equal(t, "Go语言实战", got.List[0].Title)
	assert.Equal(t, "15", got.List[0].Stock)
	// 零库存展示"缺货"
	assert.Equal(t, "缺货", got.List[1].Stock)
}

// TestSearchBooks 测试两种查找入口
func TestSearchBooks(t *testing.T) {
	publish, _, search, _ := newUseCases()
	ctx := context.Background()

	resp, err := publish.Execute(ctx, PublishBookRequest{
		Title: "Python Programming", Author: "John", Price: 2999, Stock: 3,
	})
	require.NoError(t, err)

	item, err := search.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Python Programming", item.Title)

	_, err = search.FindByID(ctx, 9999)
	assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.CodeOf(err))

	got, err := search.SearchByTitle(ctx, "python")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
}

// TestManageBook 测试库存调整与下架
func TestManageBook(t *testing.T) {
	publish, list, _, manage := newUseCases()
	ctx := context.Background()

	resp, err := publish.Execute(ctx, PublishBookRequest{
		Title: "书", Author: "作者", Price: 1000, Stock: 5,
	})
	require.NoError(t, err)

	item, err := manage.UpdateStock(ctx, UpdateStockRequest{BookID: resp.ID, Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, "缺货", item.Stock)

	item, err = manage.UpdateDetails(ctx, UpdateDetailsRequest{
		BookID: resp.ID, Title: "新书名", Author: "新作者", Price: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, "新书名", item.Title)
	assert.Equal(t, "20.00", item.Price)

	require.NoError(t, manage.Remove(ctx, resp.ID))
	got, err := list.Execute(ctx, ListBooksRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Total)
}
