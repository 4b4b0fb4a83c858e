package console

import (
	"context"
	"fmt"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
)

// runCustomer 客户端子菜单循环
func (m *Menu) runCustomer(ctx context.Context) {
	m.nav.Push("客户端")
	defer m.nav.Pop()

	for {
		m.breadcrumb()
		fmt.Fprintln(m.out, "1. 浏览图书")
		fmt.Fprintln(m.out, "2. 按ID查找")
		fmt.Fprintln(m.out, "3. 按书名搜索")
		fmt.Fprintln(m.out, "4. 下单")
		fmt.Fprintln(m.out, "5. 跟踪订单")
		fmt.Fprintln(m.out, "0. 返回")

		choice, ok := m.readLine("请选择: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.showBookList(ctx)
		case "2":
			m.customerFindByID(ctx)
		case "3":
			m.customerSearch(ctx)
		case "4":
			m.customerCreateOrder(ctx)
		case "5":
			m.customerTrackOrder(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(m.out, "无效选择,请重新输入")
		}
	}
}

// showBookList 浏览图书(管理端与客户端共用)
func (m *Menu) showBookList(ctx context.Context) {
	sortBy, ok := m.readLine("排序方式(id/title/price,回车默认id): ")
	if !ok {
		return
	}

	resp, err := m.list.Execute(ctx, appbook.ListBooksRequest{SortBy: sortBy})
	if err != nil {
		m.printErr(err)
		return
	}
	m.renderer.BookTable(resp.List)
}

// customerFindByID 按ID精确查找
func (m *Menu) customerFindByID(ctx context.Context) {
	id, ok := m.readInt("图书ID: ")
	if !ok {
		return
	}

	item, err := m.search.FindByID(ctx, id)
	if err != nil {
		m.printErr(err)
		return
	}
	m.renderer.BookTable([]appbook.BookListItem{*item})
}

// customerSearch 按书名模糊搜索
func (m *Menu) customerSearch(ctx context.Context) {
	term, ok := m.readLine("书名关键词: ")
	if !ok {
		return
	}

	resp, err := m.search.SearchByTitle(ctx, term)
	if err != nil {
		m.printErr(err)
		return
	}
	m.renderer.BookTable(resp.List)
}

// customerCreateOrder 下单:循环加购,空ID结束后提交
func (m *Menu) customerCreateOrder(ctx context.Context) {
	name, ok := m.readLine("客户姓名: ")
	if !ok {
		return
	}
	address, ok := m.readLine("收货地址: ")
	if !ok {
		return
	}

	var items []apporder.CreateOrderItem
	for {
		s, ok := m.readLine("图书ID(回车结束): ")
		if !ok {
			return
		}
		if s == "" {
			break
		}
		var id int
		if _, err := fmt.Sscanf(s, "%d", &id); err != nil {
			fmt.Fprintln(m.out, "请输入数字")
			continue
		}
		qty, ok := m.readInt("数量: ")
		if !ok {
			return
		}
		items = append(items, apporder.CreateOrderItem{BookID: id, Quantity: qty})
	}

	resp, err := m.create.Execute(ctx, apporder.CreateOrderRequest{
		CustomerName:    name,
		ShippingAddress: address,
		Items:           items,
	})
	if err != nil {
		m.printErr(err)
		return
	}

	for _, id := range resp.SkippedBooks {
		fmt.Fprintf(m.out, "! 图书%d不存在或库存不足,已跳过\n", id)
	}
	if resp.Message != "" {
		fmt.Fprintf(m.out, "✗ 订单%d已取消: %s\n", resp.OrderID, resp.Message)
		return
	}
	fmt.Fprintf(m.out, "✓ 下单成功,订单号%d,状态[%s],总金额%s元\n",
		resp.OrderID, resp.Status, resp.Total)
}

// customerTrackOrder 按订单号跟踪
func (m *Menu) customerTrackOrder(ctx context.Context) {
	id, ok := m.readInt("订单号: ")
	if !ok {
		return
	}

	dto, err := m.track.FindByID(ctx, id)
	if err != nil {
		m.printErr(err)
		return
	}
	m.renderer.OrderDetail(dto)
}
