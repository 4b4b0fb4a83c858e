// Package metrics 提供基于Prometheus的业务指标收集
//
// 设计说明:
// 1. 指标为包级变量,InitMetrics幂等初始化(防止重复注册panic)
// 2. 业务代码通过Inc*/Set*/Observe*辅助函数记录,未初始化时为空操作,
//    保证单元测试无需关心指标状态
// 3. 命名规范:Counter以_total结尾,Histogram以单位结尾,Gauge用现在时态
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化(防止重复注册)
	initialized bool

	// 图书目录指标

	// BooksPublishedTotal 上架图书总数(Counter)
	BooksPublishedTotal prometheus.Counter

	// 订单流水线指标

	// OrdersCreatedTotal 创建订单总数(Counter)
	OrdersCreatedTotal prometheus.Counter

	// OrdersConfirmedTotal 确认订单总数(Counter)
	OrdersConfirmedTotal prometheus.Counter

	// OrdersCancelledTotal 取消订单总数(Counter)
	OrdersCancelledTotal prometheus.Counter

	// OrdersDeliveredTotal 送达订单总数(Counter)
	OrdersDeliveredTotal prometheus.Counter

	// ActiveOrdersInQueue 活动队列当前长度(Gauge)
	ActiveOrdersInQueue prometheus.Gauge

	// OrderAmountYuan 订单金额分布(Histogram,单位:元)
	// 桶设置:10、50、100、200、500、1000元
	OrderAmountYuan prometheus.Histogram
)

// InitMetrics 初始化所有指标(幂等)
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	BooksPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookshop_books_published_total",
		Help: "上架图书总数",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookshop_orders_created_total",
		Help: "创建订单总数",
	})

	OrdersConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookshop_orders_confirmed_total",
		Help: "确认订单总数",
	})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookshop_orders_cancelled_total",
		Help: "取消订单总数",
	})

	OrdersDeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookshop_orders_delivered_total",
		Help: "送达订单总数",
	})

	ActiveOrdersInQueue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookshop_active_orders_in_queue",
		Help: "活动队列当前长度",
	})

	OrderAmountYuan = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookshop_order_amount_yuan",
		Help:    "订单金额分布(元)",
		Buckets: []float64{10, 50, 100, 200, 500, 1000},
	})
}

// =========================================
// 业务代码使用的辅助函数(未初始化时为空操作)
// =========================================

// IncBooksPublished 记录一次图书上架
func IncBooksPublished() {
	if BooksPublishedTotal != nil {
		BooksPublishedTotal.Inc()
	}
}

// IncOrdersCreated 记录一次订单创建
func IncOrdersCreated() {
	if OrdersCreatedTotal != nil {
		OrdersCreatedTotal.Inc()
	}
}

// IncOrdersConfirmed 记录一次订单确认
func IncOrdersConfirmed() {
	if OrdersConfirmedTotal != nil {
		OrdersConfirmedTotal.Inc()
	}
}

// IncOrdersCancelled 记录一次订单取消
func IncOrdersCancelled() {
	if OrdersCancelledTotal != nil {
		OrdersCancelledTotal.Inc()
	}
}

// IncOrdersDelivered 记录一次订单送达
func IncOrdersDelivered() {
	if OrdersDeliveredTotal != nil {
		OrdersDeliveredTotal.Inc()
	}
}

// SetActiveOrders 更新活动队列长度
func SetActiveOrders(n int) {
	if ActiveOrdersInQueue != nil {
		ActiveOrdersInQueue.Set(float64(n))
	}
}

// ObserveOrderAmount 记录订单金额(元)
func ObserveOrderAmount(yuan float64) {
	if OrderAmountYuan != nil {
		OrderAmountYuan.Observe(yuan)
	}
}
