package book

import (
	"context"
	"strings"

	"github.com/xiebiao/bookshop/internal/algorithm"
	"github.com/xiebiao/bookshop/pkg/collection"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// SortBy 图书列表的排序键
type SortBy int

const (
	SortByID    SortBy = iota // 按ID升序
	SortByTitle               // 按书名升序(大小写不敏感)
	SortByPrice               // 按价格升序
)

// ParseSortBy 解析排序键字符串,非法输入回落到ID排序
func ParseSortBy(s string) SortBy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return SortByTitle
	case "price":
		return SortByPrice
	default:
		return SortByID
	}
}

// Service 图书目录领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验与目录查询算法
// 2. 底层存储为内存InventoryList,快照+排序+查找均在服务内完成
// 3. "不存在"以哨兵错误ErrBookNotFound表达,调用方用errors.Is分支
type Service interface {
	// AddBook 新增图书(上架)
	// 业务规则:书名/作者非空(去除首尾空白后),价格>0,库存>=0
	AddBook(ctx context.Context, title, author string, price int64, stock int) (*Book, error)

	// FindByID 根据ID查找图书
	// 实现方式:取目录快照,按ID排序后二分查找
	FindByID(ctx context.Context, id int) (*Book, error)

	// FindByTitle 按书名关键词查找(大小写不敏感的子串匹配)
	// 返回结果保持目录中的相对顺序
	FindByTitle(ctx context.Context, term string) ([]*Book, error)

	// ListAll 返回全部图书,按指定键排序;空目录返回空切片
	ListAll(ctx context.Context, by SortBy) ([]*Book, error)

	// UpdateStock 将图书库存设置为指定值
	// 注意:订单明细与目录共享同一对象,此处的修改对历史订单明细同样可见
	UpdateStock(ctx context.Context, id, quantity int) error

	// AdjustStock 按增量调整库存(delta为负表示扣减)
	// 扣减导致库存为负时返回ErrInsufficientStock,不做任何修改
	AdjustStock(ctx context.Context, id, delta int) error

	// IsAvailable 判断图书是否有足够库存满足请求数量
	// 图书不存在返回(false, nil);请求数量非法返回错误
	IsAvailable(ctx context.Context, id, quantity int) (bool, error)

	// RemoveBook 从目录移除图书
	// 已被订单引用的图书不受影响(订单持有自己的对象引用)
	RemoveBook(ctx context.Context, id int) error

	// UpdateDetails 更新书名/作者/价格
	UpdateDetails(ctx context.Context, id int, title, author string, price int64) error

	// Count 目录中的图书数量
	Count(ctx context.Context) int
}

// service 领域服务实现
type service struct {
	inventory *collection.InventoryList[*Book]
	nextID    int // 进程内单调递增的ID序列,不使用全局变量以保证测试隔离
}

// NewService 创建图书目录领域服务
func NewService(inventory *collection.InventoryList[*Book]) Service {
	return &service{
		inventory: inventory,
		nextID:    1,
	}
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, title, author string, price int64, stock int) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	// 1. 字段校验
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if author == "" {
		return nil, ErrInvalidAuthor
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	// 2. 分配ID并创建实体
	b := NewBook(s.nextID, title, author, price, stock)
	s.nextID++

	// 3. 写入目录(同一对象重复Upsert只覆盖数量,此处ID唯一不会触发)
	if err := s.inventory.Upsert(b, stock); err != nil {
		return nil, apperrors.Wrap(err, "写入目录失败")
	}
	return b, nil
}

// FindByID 根据ID查找图书
func (s *service) FindByID(ctx context.Context, id int) (*Book, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	books := s.snapshot()
	algorithm.QuickSort(books, lessBy(SortByID))

	idx := algorithm.BinarySearch(books, func(b *Book) int { return b.ID - id })
	if idx == algorithm.NotFound {
		return nil, ErrBookNotFound
	}
	return books[idx], nil
}

// FindByTitle 按书名关键词查找
func (s *service) FindByTitle(ctx context.Context, term string) ([]*Book, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrInvalidSearchTerm
	}

	keyword := strings.ToLower(term)
	return algorithm.Filter(s.snapshot(), func(b *Book) bool {
		return strings.Contains(strings.ToLower(b.Title), keyword)
	}), nil
}

// ListAll 返回全部图书(排序后的快照)
func (s *service) ListAll(ctx context.Context, by SortBy) ([]*Book, error) {
	books := s.snapshot()
	algorithm.QuickSort(books, lessBy(by))
	return books, nil
}

// UpdateStock 设置库存
func (s *service) UpdateStock(ctx context.Context, id, quantity int) error {
	if quantity < 0 {
		return ErrInvalidStock
	}

	b, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := b.UpdateStock(quantity); err != nil {
		return err
	}
	// 同步目录条目数量,保持(book, quantity)单一事实
	return s.inventory.Upsert(b, b.Stock)
}

// AdjustStock 增量调整库存
// 扣减时由实体校验充足性,不足则返回错误且不产生任何修改
func (s *service) AdjustStock(ctx context.Context, id, delta int) error {
	b, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	switch {
	case delta < 0:
		if err := b.DecrStock(-delta); err != nil {
			if apperrors.CodeOf(err) == apperrors.ErrCodeInsufficientStock {
				return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
					"图书《%s》库存不足", b.Title)
			}
			return err
		}
	case delta > 0:
		if err := b.IncrStock(delta); err != nil {
			return err
		}
	default:
		return nil
	}
	return s.inventory.Upsert(b, b.Stock)
}

// IsAvailable 判断库存是否满足请求
func (s *service) IsAvailable(ctx context.Context, id, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, ErrInvalidQuantity
	}

	b, err := s.FindByID(ctx, id)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeBookNotFound {
			return false, nil
		}
		return false, err
	}
	return b.Stock > 0 && b.Stock >= quantity, nil
}

// RemoveBook 从目录移除图书
func (s *service) RemoveBook(ctx context.Context, id int) error {
	b, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	s.inventory.Remove(b)
	return nil
}

// UpdateDetails 更新图书信息
func (s *service) UpdateDetails(ctx context.Context, id int, title, author string, price int64) error {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return ErrInvalidTitle
	}
	if author == "" {
		return ErrInvalidAuthor
	}
	if price <= 0 {
		return ErrInvalidPrice
	}

	b, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	b.UpdateInfo(title, author)
	return b.UpdatePrice(price)
}

// Count 目录中的图书数量
func (s *service) Count(ctx context.Context) int {
	return s.inventory.Size()
}

// snapshot 取目录中所有图书的切片快照
func (s *service) snapshot() []*Book {
	entries := s.inventory.Entries()
	books := make([]*Book, len(entries))
	for i, e := range entries {
		books[i] = e.Item
	}
	return books
}

// lessBy 返回排序键对应的比较函数
func lessBy(by SortBy) func(a, b *Book) bool {
	switch by {
	case SortByTitle:
		return func(a, b *Book) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByPrice:
		return func(a, b *Book) bool { return a.Price < b.Price }
	default:
		return func(a, b *Book) bool { return a.ID < b.ID }
	}
}
