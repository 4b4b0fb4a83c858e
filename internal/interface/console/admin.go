package console

import (
	"context"
	"fmt"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// runAdmin 管理端子菜单循环
func (m *Menu) runAdmin(ctx context.Context) {
	m.nav.Push("管理端")
	defer m.nav.Pop()

	for {
		m.breadcrumb()
		fmt.Fprintln(m.out, "1. 上架图书")
		fmt.Fprintln(m.out, "2. 图书列表")
		fmt.Fprintln(m.out, "3. 调整库存")
		fmt.Fprintln(m.out, "4. 更新图书信息")
		fmt.Fprintln(m.out, "5. 下架图书")
		fmt.Fprintln(m.out, "6. 处理队首订单")
		fmt.Fprintln(m.out, "7. 查看全部订单")
		fmt.Fprintln(m.out, "8. 手工推进订单状态")
		fmt.Fprintln(m.out, "0. 返回")

		choice, ok := m.readLine("请选择: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.adminPublish(ctx)
		case "2":
			m.showBookList(ctx)
		case "3":
			m.adminUpdateStock(ctx)
		case "4":
			m.adminUpdateDetails(ctx)
		case "5":
			m.adminRemoveBook(ctx)
		case "6":
			m.adminProcessNext(ctx)
		case "7":
			m.adminListOrders(ctx)
		case "8":
			m.adminUpdateStatus(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(m.out, "无效选择,请重新输入")
		}
	}
}

// adminPublish 上架图书
func (m *Menu) adminPublish(ctx context.Context) {
	title, ok := m.readLine("书名: ")
	if !ok {
		return
	}
	author, ok := m.readLine("作者: ")
	if !ok {
		return
	}
	price, ok := m.readPrice("价格(元): ")
	if !ok {
		return
	}
	stock, ok := m.readInt("初始库存: ")
	if !ok {
		return
	}

	resp, err := m.publish.Execute(ctx, appbook.PublishBookRequest{
		Title: title, Author: author, Price: price, Stock: stock,
	})
	if err != nil {
		m.printErr(err)
		return
	}
	fmt.Fprintf(m.out, "✓ 上架成功,图书ID: %d\n", resp.ID)
}

// adminUpdateStock 设置库存
func (m *Menu) adminUpdateStock(ctx context.Context) {
	id, ok := m.readInt("图书ID: ")
	if !ok {
		return
	}
	qty, ok := m.readInt("新库存数量: ")
	if !ok {
		return
	}

	item, err := m.manage.UpdateStock(ctx, appbook.UpdateStockRequest{BookID: id, Quantity: qty})
	if err != nil {
		m.printErr(err)
		return
	}
	fmt.Fprintf(m.out, "✓ 《%s》库存已更新为%s\n", item.Title, item.Stock)
}

// adminUpdateDetails 更新图书信息
func (m *Menu) adminUpdateDetails(ctx context.Context) {
	id, ok := m.readInt("图书ID: ")
	if !ok {
		return
	}
	title, ok := m.readLine("新书名: ")
	if !ok {
		return
	}
	author, ok := m.readLine("新作者: ")
	if !ok {
		return
	}
	price, ok := m.readPrice("新价格(元): ")
	if !ok {
		return
	}

	item, err := m.manage.UpdateDetails(ctx, appbook.UpdateDetailsRequest{
		BookID: id, Title: title, Author: author, Price: price,
	})
	if err != nil {
		m.printErr(err)
		return
	}
	fmt.Fprintf(m.out, "✓ 图书信息已更新: 《%s》 %s %s元\n", item.Title, item.Author, item.Price)
}

// adminRemoveBook 下架图书
func (m *Menu) adminRemoveBook(ctx context.Context) {
	id, ok := m.readInt("图书ID: ")
	if !ok {
		return
	}
	if err := m.manage.Remove(ctx, id); err != nil {
		m.printErr(err)
		return
	}
	fmt.Fprintln(m.out, "✓ 已下架")
}

// adminProcessNext 处理队首订单
func (m *Menu) adminProcessNext(ctx context.Context) {
	resp, err := m.process.ProcessNext(ctx)
	if err != nil {
		m.printErr(err)
		return
	}
	if resp.Archived {
		fmt.Fprintf(m.out, "✓ 订单%d(%s)已推进到[%s],归档完成\n",
			resp.OrderID, resp.CustomerName, resp.Status)
		return
	}
	fmt.Fprintf(m.out, "✓ 订单%d(%s)已推进到[%s]\n",
		resp.OrderID, resp.CustomerName, resp.Status)
}

// adminListOrders 查看全部订单
func (m *Menu) adminListOrders(ctx context.Context) {
	fmt.Fprintln(m.out, "[活动队列]")
	m.renderer.OrderTable(m.track.ListActive(ctx))
	fmt.Fprintln(m.out, "[完成队列]")
	m.renderer.OrderTable(m.track.ListCompleted(ctx))
}

// adminUpdateStatus 手工推进订单状态
func (m *Menu) adminUpdateStatus(ctx context.Context) {
	id, ok := m.readInt("订单号: ")
	if !ok {
		return
	}
	fmt.Fprintln(m.out, "目标状态: 2-已确认 3-配送中 4-已送达 5-已取消")
	target, ok := m.readInt("请选择: ")
	if !ok {
		return
	}

	resp, err := m.process.UpdateStatus(ctx, apporder.UpdateStatusRequest{
		OrderID: id, Target: order.Status(target),
	})
	if err != nil {
		m.printErr(err)
		return
	}
	fmt.Fprintf(m.out, "✓ 订单%d状态已更新为[%s]\n", resp.OrderID, resp.Status)
}
