package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// PublishBookUseCase 图书上架用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO(Data Transfer Object),与界面层解耦
// 3. 此用例比较简单,只需调用领域服务即可
type PublishBookUseCase struct {
	bookService book.Service
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService: bookService,
	}
}

// PublishBookRequest 上架请求DTO
type PublishBookRequest struct {
	Title  string // 书名
	Author string // 作者
	Price  int64  // 价格(分)
	Stock  int    // 初始库存
}

// PublishBookResponse 上架响应DTO
type PublishBookResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Price     string `json:"price"` // 价格(元,展示用)
	Stock     int    `json:"stock"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行上架用例
// 学习要点:
// 1. 应用层不直接操作集合,通过领域服务间接操作
// 2. 业务规则校验(书名非空、价格为正等)由领域服务负责
// 3. 应用层只负责流程编排与指标记录
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*PublishBookResponse, error) {
	b, err := uc.bookService.AddBook(ctx, req.Title, req.Author, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	metrics.IncBooksPublished()

	return &PublishBookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.PriceYuan(),
		Stock:     b.Stock,
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
