package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/seed"
	"github.com/xiebiao/bookshop/internal/interface/console"
	"github.com/xiebiao/bookshop/pkg/collection"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go中有等价的Wire配置,可用wire gen生成）
func main() {
	ctx := context.Background()

	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 应用名称: %s\n", cfg.App.Name)
	fmt.Printf("  - 运行模式: %s\n", cfg.App.Mode)
	fmt.Printf("  - 演示数据: %v\n", cfg.Seed.Enabled)

	// 2. 初始化指标与链路追踪
	metrics.InitMetrics()
	if cfg.Tracing.Enabled {
		shutdown, err := initTracing(cfg)
		if err != nil {
			log.Fatalf("初始化链路追踪失败: %v", err)
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("关闭链路追踪失败: %v", err)
			}
		}()
		fmt.Printf("✓ 链路追踪已启用\n")
	}

	// 3. 依赖注入（手动组装）
	// 学习要点：依赖注入链
	// 集合 ← 领域服务 ← 用例 ← 控制台菜单

	// 领域层
	bookService := book.NewService(collection.NewInventoryList[*book.Book]())
	orderService := order.NewService(bookService)

	// 应用层
	publishUseCase := appbook.NewPublishBookUseCase(bookService)
	listUseCase := appbook.NewListBooksUseCase(bookService)
	searchUseCase := appbook.NewSearchBooksUseCase(bookService)
	manageUseCase := appbook.NewManageBookUseCase(bookService)
	createUseCase := apporder.NewCreateOrderUseCase(orderService)
	processUseCase := apporder.NewProcessOrderUseCase(orderService)
	trackUseCase := apporder.NewTrackOrderUseCase(orderService)

	// 4. 灌入演示数据
	if cfg.Seed.Enabled {
		bookCount, orderCount, err := seed.Run(ctx, bookService, orderService)
		if err != nil {
			log.Fatalf("灌入演示数据失败: %v", err)
		}
		fmt.Printf("✓ 演示数据就绪: %d本图书, %d笔订单\n", bookCount, orderCount)
	}

	// 5. 界面层
	renderer := console.NewRenderer(os.Stdout, cfg.Display)
	menu := console.NewMenu(
		os.Stdin, os.Stdout, renderer,
		publishUseCase, listUseCase, searchUseCase, manageUseCase,
		createUseCase, processUseCase, trackUseCase,
	)

	// 6. 启动菜单循环
	fmt.Printf("\n📚 欢迎使用网上书店!\n")
	menu.Run(ctx)
}

// initTracing 初始化span导出
// 导出目标来自配置:指定文件时追加写入,否则丢弃(仅为演示API)
func initTracing(cfg *config.Config) (func(context.Context) error, error) {
	var w io.Writer = io.Discard
	if cfg.Tracing.OutputFile != "" {
		f, err := os.OpenFile(cfg.Tracing.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
	}
	return tracing.InitTracer(cfg.Tracing.ServiceName, w)
}
