package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// SearchBooksUseCase 图书查找用例(按ID精确查找/按书名模糊搜索)
// 设计说明:
// 1. 按ID查找走二分,按书名搜索走线性过滤,两种入口统一DTO
// 2. 按ID未命中返回领域错误,按书名未命中返回空列表(不是错误)
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建查找用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// FindByID 按ID精确查找
func (uc *SearchBooksUseCase) FindByID(ctx context.Context, id int) (*BookListItem, error) {
	b, err := uc.bookService.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item := toListItem(b)
	return &item, nil
}

// SearchByTitle 按书名模糊搜索(大小写不敏感的子串匹配)
func (uc *SearchBooksUseCase) SearchByTitle(ctx context.Context, term string) (*ListBooksResponse, error) {
	books, err := uc.bookService.FindByTitle(ctx, term)
	if err != nil {
		return nil, err
	}

	list := make([]BookListItem, len(books))
	for i, b := range books {
		list[i] = toListItem(b)
	}
	return &ListBooksResponse{List: list, Total: len(list)}, nil
}
