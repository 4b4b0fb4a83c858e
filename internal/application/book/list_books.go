package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持按ID、书名、价格三种排序方式
// 2. 列表项是展示友好的DTO:价格转成元,零库存显示"缺货"
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	SortBy string // 排序方式(id / title / price),缺省按ID
}

// BookListItem 列表项DTO
type BookListItem struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Price  string `json:"price"` // 价格(元)
	Stock  string `json:"stock"` // 库存,零库存显示"缺货"
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List  []BookListItem `json:"list"`
	Total int            `json:"total"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	books, err := uc.bookService.ListAll(ctx, book.ParseSortBy(req.SortBy))
	if err != nil {
		return nil, err
	}

	list := make([]BookListItem, len(books))
	for i, b := range books {
		list[i] = toListItem(b)
	}
	return &ListBooksResponse{List: list, Total: len(list)}, nil
}

// toListItem 实体转列表项DTO
func toListItem(b *book.Book) BookListItem {
	return BookListItem{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Price:  b.PriceYuan(),
		Stock:  b.DisplayStock(),
	}
}
