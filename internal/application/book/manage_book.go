package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// ManageBookUseCase 图书管理用例(改库存/改信息/下架)
// 管理端专用,客户端不暴露这些入口
type ManageBookUseCase struct {
	bookService book.Service
}

// NewManageBookUseCase 创建图书管理用例
func NewManageBookUseCase(bookService book.Service) *ManageBookUseCase {
	return &ManageBookUseCase{
		bookService: bookService,
	}
}

// UpdateStockRequest 库存调整请求DTO
type UpdateStockRequest struct {
	BookID   int // 图书ID
	Quantity int // 新库存数量(绝对值,非增量)
}

// UpdateStock 设置图书库存
func (uc *ManageBookUseCase) UpdateStock(ctx context.Context, req UpdateStockRequest) (*BookListItem, error) {
	if err := uc.bookService.UpdateStock(ctx, req.BookID, req.Quantity); err != nil {
		return nil, err
	}

	b, err := uc.bookService.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	item := toListItem(b)
	return &item, nil
}

// UpdateDetailsRequest 信息更新请求DTO
type UpdateDetailsRequest struct {
	BookID int
	Title  string // 新书名
	Author string // 新作者
	Price  int64  // 新价格(分)
}

// UpdateDetails 更新图书信息
func (uc *ManageBookUseCase) UpdateDetails(ctx context.Context, req UpdateDetailsRequest) (*BookListItem, error) {
	if err := uc.bookService.UpdateDetails(ctx, req.BookID, req.Title, req.Author, req.Price); err != nil {
		return nil, err
	}

	b, err := uc.bookService.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	item := toListItem(b)
	return &item, nil
}

// Remove 下架图书
func (uc *ManageBookUseCase) Remove(ctx context.Context, bookID int) error {
	return uc.bookService.RemoveBook(ctx, bookID)
}
