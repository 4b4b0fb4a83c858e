//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入（如Spring的@Autowired）不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/console`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeMenu()
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如book.NewService）
// - Injector: 声明最终要构造的目标类型（如*console.Menu）
// - wire.Build(): 告诉Wire如何组装依赖链

package main

import (
	"io"
	"os"

	"github.com/google/wire"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/interface/console"
	"github.com/xiebiao/bookshop/pkg/collection"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,      // 加载配置文件
	provideInventory, // 创建图书目录集合
	provideDisplay,   // 展示配置
	provideStdin,
	provideStdout,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,  // 图书目录服务
	order.NewService, // 订单处理服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewPublishBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewSearchBooksUseCase,
	appbook.NewManageBookUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewProcessOrderUseCase,
	apporder.NewTrackOrderUseCase,
)

// interfaceSet 界面层依赖
var interfaceSet = wire.NewSet(
	console.NewRenderer,
	console.NewMenu,
)

// provideInventory 图书目录底层集合
// 泛型构造函数无法直接作为Provider,包一层具体类型
func provideInventory() *collection.InventoryList[*book.Book] {
	return collection.NewInventoryList[*book.Book]()
}

// provideDisplay 从配置中取出展示配置
func provideDisplay(cfg *config.Config) config.DisplayConfig {
	return cfg.Display
}

// provideStdin 标准输入
func provideStdin() io.Reader {
	return os.Stdin
}

// provideStdout 标准输出
func provideStdout() io.Writer {
	return os.Stdout
}

// InitializeMenu 构造完整的控制台菜单
func InitializeMenu() (*console.Menu, error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil
}
