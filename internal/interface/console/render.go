package console

import (
	"fmt"
	"io"
	"strings"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// Renderer 控制台表格渲染器
// 设计说明:
// 1. 列宽来自配置(书名默认30,作者默认20),超宽截断并加省略号
// 2. 渲染只依赖应用层DTO,不触碰领域实体
type Renderer struct {
	out     io.Writer
	display config.DisplayConfig
}

// NewRenderer 创建渲染器
func NewRenderer(out io.Writer, display config.DisplayConfig) *Renderer {
	return &Renderer{out: out, display: display}
}

// truncate 按rune截断超宽文本,留一位给省略号
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// pad 截断后左对齐补空格到定宽
func pad(s string, width int) string {
	s = truncate(s, width)
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// BookTable 渲染图书列表表格
func (r *Renderer) BookTable(items []appbook.BookListItem) {
	if len(items) == 0 {
		fmt.Fprintln(r.out, "(无图书)")
		return
	}

	tw, aw := r.display.TitleWidth, r.display.AuthorWidth
	line := strings.Repeat("-", 6+tw+aw+10+8+6)

	fmt.Fprintln(r.out, line)
	fmt.Fprintf(r.out, "%-6s%s  %s  %-10s%-8s\n",
		"ID", pad("书名", tw), pad("作者", aw), "价格(元)", "库存")
	fmt.Fprintln(r.out, line)
	for _, b := range items {
		fmt.Fprintf(r.out, "%-6d%s  %s  %-10s%-8s\n",
			b.ID, pad(b.Title, tw), pad(b.Author, aw), b.Price, b.Stock)
	}
	fmt.Fprintln(r.out, line)
	fmt.Fprintf(r.out, "共%d本\n", len(items))
}

// OrderTable 渲染订单列表表格
func (r *Renderer) OrderTable(orders []apporder.OrderDTO) {
	if len(orders) == 0 {
		fmt.Fprintln(r.out, "(无订单)")
		return
	}

	line := strings.Repeat("-", 64)
	fmt.Fprintln(r.out, line)
	fmt.Fprintf(r.out, "%-8s%-12s%-12s%-10s%-8s%s\n",
		"订单号", "客户", "金额(元)", "状态", "种数", "创建时间")
	fmt.Fprintln(r.out, line)
	for _, o := range orders {
		fmt.Fprintf(r.out, "%-8d%-12s%-12s%-10s%-8d%s\n",
			o.ID, truncate(o.CustomerName, 10), o.Total, o.Status, o.ItemKinds, o.CreatedAt)
	}
	fmt.Fprintln(r.out, line)
	fmt.Fprintf(r.out, "共%d笔\n", len(orders))
}

// OrderDetail 渲染单笔订单详情(含明细)
func (r *Renderer) OrderDetail(o *apporder.OrderDTO) {
	fmt.Fprintf(r.out, "订单号: %d\n", o.ID)
	fmt.Fprintf(r.out, "客户: %s\n", o.CustomerName)
	fmt.Fprintf(r.out, "收货地址: %s\n", o.ShippingAddress)
	fmt.Fprintf(r.out, "状态: %s\n", o.Status)
	fmt.Fprintf(r.out, "创建时间: %s\n", o.CreatedAt)
	fmt.Fprintln(r.out, "明细:")
	for _, item := range o.Items {
		fmt.Fprintf(r.out, "  - %s × %d  单价%s元\n",
			truncate(item.Title, r.display.TitleWidth), item.Quantity, item.Price)
	}
	fmt.Fprintf(r.out, "总金额: %s元\n", o.Total)
}
