// Package console 提供基于菜单的控制台交互界面
//
// 设计说明:
// 1. 界面层只做输入解析与结果展示,业务流程全部委托应用层用例
// 2. 菜单导航用栈记录路径:进入子菜单压栈,返回弹栈,随时可见面包屑
// 3. 所有错误在界面层统一转成中文提示,不让调用栈泄漏给用户
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/pkg/collection"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Menu 控制台主菜单
type Menu struct {
	in  *bufio.Scanner
	out io.Writer

	renderer *Renderer
	nav      *collection.Stack[string] // 导航路径栈

	publish *appbook.PublishBookUseCase
	list    *appbook.ListBooksUseCase
	search  *appbook.SearchBooksUseCase
	manage  *appbook.ManageBookUseCase
	create  *apporder.CreateOrderUseCase
	process *apporder.ProcessOrderUseCase
	track   *apporder.TrackOrderUseCase
}

// NewMenu 创建主菜单
func NewMenu(
	in io.Reader,
	out io.Writer,
	renderer *Renderer,
	publish *appbook.PublishBookUseCase,
	list *appbook.ListBooksUseCase,
	search *appbook.SearchBooksUseCase,
	manage *appbook.ManageBookUseCase,
	create *apporder.CreateOrderUseCase,
	process *apporder.ProcessOrderUseCase,
	track *apporder.TrackOrderUseCase,
) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: renderer,
		nav:      collection.NewStack[string](),
		publish:  publish,
		list:     list,
		search:   search,
		manage:   manage,
		create:   create,
		process:  process,
		track:    track,
	}
}

// Run 主菜单循环,输入流结束或选择退出时返回
func (m *Menu) Run(ctx context.Context) {
	m.nav.Push("主菜单")

	for {
		m.breadcrumb()
		fmt.Fprintln(m.out, "1. 管理端")
		fmt.Fprintln(m.out, "2. 客户端")
		fmt.Fprintln(m.out, "0. 退出")

		choice, ok := m.readLine("请选择: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.runAdmin(ctx)
		case "2":
			m.runCustomer(ctx)
		case "0":
			fmt.Fprintln(m.out, "再见!")
			return
		default:
			fmt.Fprintln(m.out, "无效选择,请重新输入")
		}
	}
}

// breadcrumb 打印导航路径(栈底到栈顶)
func (m *Menu) breadcrumb() {
	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "=== %s ===\n", strings.Join(m.navPath(), " > "))
}

// navPath 导航栈快照,栈底在前
func (m *Menu) navPath() []string {
	// Stack没有遍历接口,逐个弹出再压回
	n := m.nav.Size()
	tmp := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		v, _ := m.nav.Pop()
		tmp[i] = v
	}
	for _, v := range tmp {
		m.nav.Push(v)
	}
	return tmp
}

// readLine 读取一行输入,流结束时返回false
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// readInt 读取整数,解析失败时提示重试,流结束返回false
func (m *Menu) readInt(prompt string) (int, bool) {
	for {
		s, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(m.out, "请输入数字")
			continue
		}
		return n, true
	}
}

// readPrice 读取价格(元),转换为分
func (m *Menu) readPrice(prompt string) (int64, bool) {
	for {
		s, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		fen, err := ParsePriceYuan(s)
		if err != nil {
			fmt.Fprintln(m.out, "价格格式不正确,示例: 45.99")
			continue
		}
		return fen, true
	}
}

// printErr 统一的错误展示:业务错误显示消息,其他错误显示通用提示
func (m *Menu) printErr(err error) {
	if apperrors.IsAppError(err) {
		fmt.Fprintf(m.out, "✗ %s\n", apperrors.GetAppError(err).Message)
		return
	}
	fmt.Fprintf(m.out, "✗ 操作失败: %v\n", err)
}

// ParsePriceYuan 解析元表示的价格字符串为分
// 支持整数("45")与两位以内小数("45.9"、"45.99"),不经过浮点避免精度损失
func ParsePriceYuan(s string) (int64, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasFrac := strings.Cut(s, ".")

	yuan, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || yuan < 0 {
		return 0, fmt.Errorf("无效的价格: %s", s)
	}

	var fen int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("无效的价格: %s", s)
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("无效的价格: %s", s)
		}
		if len(frac) == 1 {
			f *= 10
		}
		fen = f
	}
	return yuan*100 + fen, nil
}
