package tracing

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// TestInitTracer_SpanExported 测试span被导出到指定Writer
func TestInitTracer_SpanExported(t *testing.T) {
	var buf bytes.Buffer

	shutdown, err := InitTracer("bookshop-test", &buf)
	if err != nil {
		t.Fatalf("InitTracer失败: %v", err)
	}

	ctx, span := StartSpan(context.Background(), "order-service", "SubmitOrder")
	SetIntAttr(span, "order.id", 42)
	SetStringAttr(span, "order.status", "CONFIRMED")

	if ExtractTraceID(ctx) == "" {
		t.Error("期望有效TraceID,实际为空")
	}
	span.End()

	// shutdown冲刷batcher缓冲
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown失败: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "SubmitOrder") {
		t.Errorf("导出内容中未找到span名称: %s", out)
	}
	if !strings.Contains(out, "bookshop-test") {
		t.Errorf("导出内容中未找到服务名: %s", out)
	}
}

// TestExtractTraceID_NoSpan 测试无span的Context返回空串
func TestExtractTraceID_NoSpan(t *testing.T) {
	if got := ExtractTraceID(context.Background()); got != "" {
		t.Errorf("期望空串,实际%q", got)
	}
}
