package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化(幂等)
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不应panic(重复注册)

	if BooksPublishedTotal == nil {
		t.Error("BooksPublishedTotal未初始化")
	}
	if OrdersCreatedTotal == nil {
		t.Error("OrdersCreatedTotal未初始化")
	}
	if ActiveOrdersInQueue == nil {
		t.Error("ActiveOrdersInQueue未初始化")
	}
	if OrderAmountYuan == nil {
		t.Error("OrderAmountYuan未初始化")
	}
}

// TestCounterHelpers 测试Counter辅助函数
func TestCounterHelpers(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, OrdersCreatedTotal)
	IncOrdersCreated()
	IncOrdersCreated()
	IncOrdersCreated()

	value := getCounterValue(t, OrdersCreatedTotal)
	if value != before+3 {
		t.Errorf("Counter值错误: expected=%f, got=%f", before+3, value)
	}
}

// TestGaugeHelper 测试队列长度Gauge
func TestGaugeHelper(t *testing.T) {
	InitMetrics()

	SetActiveOrders(7)
	if value := getGaugeValue(t, ActiveOrdersInQueue); value != 7 {
		t.Errorf("Gauge值错误: expected=7, got=%f", value)
	}

	SetActiveOrders(0)
	if value := getGaugeValue(t, ActiveOrdersInQueue); value != 0 {
		t.Errorf("Gauge值错误: expected=0, got=%f", value)
	}
}

// TestHelpersBeforeInit 测试未初始化时辅助函数为空操作
// 注意:同包其他测试会先InitMetrics,此处仅验证nil保护逻辑本身
func TestHelpersBeforeInit(t *testing.T) {
	var nilCounter prometheus.Counter
	_ = nilCounter

	// 辅助函数内部做了nil判断,直接调用不应panic
	IncBooksPublished()
	IncOrdersConfirmed()
	IncOrdersCancelled()
	IncOrdersDelivered()
	ObserveOrderAmount(29.99)
}

// getCounterValue 读取Counter当前值
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("读取Counter失败: %v", err)
	}
	return m.GetCounter().GetValue()
}

// getGaugeValue 读取Gauge当前值
func getGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := g.Write(m); err != nil {
		t.Fatalf("读取Gauge失败: %v", err)
	}
	return m.GetGauge().GetValue()
}
