package order

import (
	"context"
	"strings"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/collection"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/saga"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// tracerName 订单服务的tracer名称
const tracerName = "order-service"

// transitions 合法状态转换表
// 状态机权威在服务层:实体不自校验,所有状态变更经由本服务裁决
//
// | 当前状态   | 允许转换到          |
// |-----------|--------------------|
// | 待处理     | 已确认 / 已取消     |
// | 已确认     | 配送中              |
// | 配送中     | 已送达              |
// | 已送达     | -(终态)           |
// | 已取消     | -(终态)           |
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipping},
	StatusShipping:  {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// isValidTransition 检查状态转换是否合法
func isValidTransition(current, target Status) bool {
	for _, allowed := range transitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Service 订单处理领域服务接口
// 设计说明:
// 1. 持有活动/完成两条FIFO队列:未到终态的订单在活动队列,
//    已送达或已取消的订单归档到完成队列
// 2. 提交即确认:SubmitOrder内完成库存复核与预留,确认入活动队列,
//    库存不足直接取消入完成队列
// 3. 库存预留是补偿事务:任一明细不足,已扣减的明细全部回滚,
//    目录库存净变化为零
type Service interface {
	// CreateOrder 创建订单(纯构造,不入队)
	CreateOrder(ctx context.Context, customerName, shippingAddress string) (*Order, error)

	// AddBookToOrder 向订单添加图书
	// 图书存在且当前库存充足时加入明细并返回true,否则返回false;
	// 此处只做尽力而为的可用性检查,不预留库存(提交时再复核)
	AddBookToOrder(ctx context.Context, o *Order, bookID, quantity int) (bool, error)

	// SubmitOrder 提交订单
	// 校验订单完整性后执行库存预留:
	// - 预留成功:状态置为已确认,进入活动队列,返回nil
	// - 任一明细库存不足:状态置为已取消,归档到完成队列,
	//   返回标识首个不足图书的错误(业务结果,非程序错误)
	SubmitOrder(ctx context.Context, o *Order) error

	// ProcessNextOrder 处理活动队列队首的订单
	// 已确认→配送中(重新入队尾);配送中→已送达(归档);
	// 终态订单直接归档;待处理订单出队并提示重新提交
	ProcessNextOrder(ctx context.Context) (*Order, error)

	// UpdateOrderStatus 管理员手工推进订单状态
	// 非法转换返回ErrInvalidStatusTransition且不修改状态
	UpdateOrderStatus(ctx context.Context, o *Order, target Status) error

	// FindOrderByID 按ID查找订单(先活动队列,后完成队列,非破坏性扫描)
	FindOrderByID(ctx context.Context, id int) (*Order, error)

	// ActiveOrders 活动队列快照(队首到队尾)
	ActiveOrders(ctx context.Context) []*Order

	// CompletedOrders 完成队列快照
	CompletedOrders(ctx context.Context) []*Order

	// AllOrders 全部订单快照(活动在前,完成在后)
	AllOrders(ctx context.Context) []*Order
}

// service 订单服务实现
type service struct {
	active    *collection.Queue[*Order] // 活动队列(严格FIFO)
	completed *collection.Queue[*Order] // 完成队列(归档)
	books     book.Service
	nextID    int // 进程内单调递增的订单ID序列
}

// NewService 创建订单处理领域服务
func NewService(books book.Service) Service {
	return &service{
		active:    collection.NewQueue[*Order](),
		completed: collection.NewQueue[*Order](),
		books:     books,
		nextID:    1,
	}
}

// CreateOrder 创建订单
func (s *service) CreateOrder(ctx context.Context, customerName, shippingAddress string) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	shippingAddress = strings.TrimSpace(shippingAddress)

	if customerName == "" {
		return nil, ErrInvalidCustomer
	}
	if shippingAddress == "" {
		return nil, ErrInvalidAddress
	}

	o := NewOrder(s.nextID, customerName, shippingAddress)
	s.nextID++

	metrics.IncOrdersCreated()
	return o, nil
}

// AddBookToOrder 向订单添加图书
func (s *service) AddBookToOrder(ctx context.Context, o *Order, bookID, quantity int) (bool, error) {
	if o == nil {
		return false, ErrNilOrder
	}
	if bookID <= 0 {
		return false, ErrInvalidBookID
	}
	if quantity <= 0 {
		return false, ErrInvalidQuantity
	}

	b, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeBookNotFound {
			return false, nil // 不存在不是错误,返回false由调用方提示
		}
		return false, err
	}

	available, err := s.books.IsAvailable(ctx, bookID, quantity)
	if err != nil {
		return false, err
	}
	if !available {
		return false, nil
	}

	if err := o.AddItem(b, quantity); err != nil {
		return false, err
	}
	return true, nil
}

// SubmitOrder 提交订单
func (s *service) SubmitOrder(ctx context.Context, o *Order) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "SubmitOrder")
	defer span.End()

	// 1. 完整性校验(失败不产生任何状态变化)
	if o == nil {
		return ErrNilOrder
	}
	tracing.SetIntAttr(span, "order.id", o.ID)
	if !o.HasItems() {
		return ErrEmptyOrder
	}
	if o.Total <= 0 {
		return ErrInvalidTotal
	}
	if strings.TrimSpace(o.CustomerName) == "" {
		return ErrInvalidCustomer
	}
	if strings.TrimSpace(o.ShippingAddress) == "" {
		return ErrInvalidAddress
	}
	if o.Status != StatusPending {
		// 只有待处理订单可以提交,防止重复提交造成重复预留
		return apperrors.Newf(apperrors.ErrCodeInvalidOrderStatus,
			"订单当前状态为%s,不能提交", o.Status)
	}

	// 2. 库存预留(失败自动回滚,目录净变化为零)
	if err := s.reserveStock(ctx, o); err != nil {
		o.Status = StatusCancelled
		s.completed.Enqueue(o)
		metrics.IncOrdersCancelled()
		tracing.SetStringAttr(span, "order.status", o.Status.String())
		return err
	}

	// 3. 确认并进入活动队列
	o.Status = StatusConfirmed
	s.active.Enqueue(o)
	metrics.IncOrdersConfirmed()
	metrics.SetActiveOrders(s.active.Size())
	metrics.ObserveOrderAmount(float64(o.Total) / 100)
	tracing.SetStringAttr(span, "order.status", o.Status.String())
	return nil
}

// reserveStock 库存预留事务
// 每个明细一个步骤:正向扣减库存,补偿恢复库存。
// 任一步骤失败(库存不足)时,已完成步骤按逆序回滚,保证无部分预留。
func (s *service) reserveStock(ctx context.Context, o *Order) error {
	sg := saga.NewSaga(0)

	for _, e := range o.Items() {
		bookID, qty := e.Item.ID, e.Quantity // 闭包捕获,每步独立
		sg.AddStep(e.Item.Title,
			func(ctx context.Context) error {
				return s.books.AdjustStock(ctx, bookID, -qty)
			},
			func(ctx context.Context) error {
				return s.books.AdjustStock(ctx, bookID, qty)
			},
		)
	}

	return sg.Execute(ctx)
}

// ProcessNextOrder 处理活动队列队首的订单
func (s *service) ProcessNextOrder(ctx context.Context) (*Order, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ProcessNextOrder")
	defer span.End()

	o, err := s.active.Dequeue()
	if err != nil {
		return nil, ErrNoActiveOrders
	}
	defer metrics.SetActiveOrders(s.active.Size())
	tracing.SetIntAttr(span, "order.id", o.ID)

	switch o.Status {
	case StatusConfirmed:
		// 已确认→配送中,回到队尾:前面的订单都推进一轮后才会再次处理
		s.mutateStatus(o, StatusShipping)
		s.active.Enqueue(o)

	case StatusShipping:
		// 配送中→已送达,归档
		s.mutateStatus(o, StatusDelivered)
		s.completed.Enqueue(o)
		metrics.IncOrdersDelivered()

	case StatusDelivered, StatusCancelled:
		// 防御:终态订单不应留在活动队列,出队时顺手归档
		s.completed.Enqueue(o)

	case StatusPending:
		// 防御:正常流程下提交即确认或取消,待处理订单不应入队;
		// 此处仅出队并提示调用方重新提交
		tracing.SetStringAttr(span, "order.status", o.Status.String())
		return o, ErrOrderNotSubmitted
	}

	tracing.SetStringAttr(span, "order.status", o.Status.String())
	return o, nil
}

// UpdateOrderStatus 管理员手工推进订单状态
func (s *service) UpdateOrderStatus(ctx context.Context, o *Order, target Status) error {
	if o == nil {
		return ErrNilOrder
	}

	if !isValidTransition(o.Status, target) {
		// 非法转换:报错且不修改状态
		return apperrors.Newf(apperrors.ErrCodeInvalidOrderStatus,
			"订单状态不允许从%s转换到%s", o.Status, target)
	}

	s.mutateStatus(o, target)
	switch target {
	case StatusDelivered:
		metrics.IncOrdersDelivered()
	case StatusCancelled:
		metrics.IncOrdersCancelled()
	}
	return nil
}

// FindOrderByID 按ID查找订单
func (s *service) FindOrderByID(ctx context.Context, id int) (*Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	// 非破坏性扫描:先活动队列,后完成队列
	for _, o := range s.active.Snapshot() {
		if o.ID == id {
			return o, nil
		}
	}
	for _, o := range s.completed.Snapshot() {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// ActiveOrders 活动队列快照
func (s *service) ActiveOrders(ctx context.Context) []*Order {
	return s.active.Snapshot()
}

// CompletedOrders 完成队列快照
func (s *service) CompletedOrders(ctx context.Context) []*Order {
	return s.completed.Snapshot()
}

// AllOrders 全部订单快照
func (s *service) AllOrders(ctx context.Context) []*Order {
	all := s.active.Snapshot()
	return append(all, s.completed.Snapshot()...)
}

// mutateStatus 执行状态变更并刷新更新时间
// 仅供服务内部在转换合法性已确认的路径上调用
func (s *service) mutateStatus(o *Order, target Status) {
	o.Status = target
	o.UpdatedAt = time.Now()
}
