// Package tracing 提供基于OpenTelemetry的链路追踪
//
// 设计说明:
// 1. 单进程控制台应用,无collector可用,使用stdout exporter将span
//    以JSON写入指定输出(通常是文件,避免干扰控制台界面)
// 2. InitTracer设置全局TracerProvider,业务代码通过StartSpan打点,
//    未初始化时otel返回noop tracer,打点调用自动变为空操作
// 3. 关闭时调用InitTracer返回的shutdown函数,冲刷未导出的span
package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// InitTracer 初始化全局TracerProvider
//
// 参数:
//   serviceName: 服务名,写入resource的service.name属性
//   w:           span输出目标(文件或io.Discard)
//
// 返回shutdown函数,进程退出前调用以冲刷缓冲的span
func InitTracer(serviceName string, w io.Writer) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("创建stdout exporter失败: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("创建resource失败: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		// 练习规模下全采样
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	// 设置为全局Provider,业务代码直接使用otel.Tracer()获取tracer
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// StartSpan 开启一个span
// 用法:
//
//	ctx, span := tracing.StartSpan(ctx, "order-service", "SubmitOrder")
//	defer span.End()
func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, spanName)
}

// SetIntAttr 在span上记录整型属性
func SetIntAttr(span trace.Span, key string, value int) {
	span.SetAttributes(attribute.Int(key, value))
}

// SetStringAttr 在span上记录字符串属性
func SetStringAttr(span trace.Span, key, value string) {
	span.SetAttributes(attribute.String(key, value))
}

// ExtractTraceID 从Context中提取TraceID(无有效span时返回空串)
func ExtractTraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
