package order

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "订单状态不允许此操作")

	// ErrNilOrder 订单为空
	ErrNilOrder = apperrors.New(apperrors.ErrCodeInvalidParams, "订单不能为空")

	// ErrNilBook 图书为空
	ErrNilBook = apperrors.New(apperrors.ErrCodeInvalidParams, "图书不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")

	// ErrInvalidOrderID 无效的订单ID
	ErrInvalidOrderID = apperrors.New(apperrors.ErrCodeInvalidParams, "订单ID必须为正数")

	// ErrInvalidBookID 无效的图书ID
	ErrInvalidBookID = apperrors.New(apperrors.ErrCodeInvalidParams, "图书ID必须为正数")

	// ErrInvalidCustomer 客户姓名不合法
	ErrInvalidCustomer = apperrors.New(apperrors.ErrCodeInvalidParams, "客户姓名不能为空")

	// ErrInvalidAddress 收货地址不合法
	ErrInvalidAddress = apperrors.New(apperrors.ErrCodeInvalidParams, "收货地址不能为空")

	// ErrEmptyOrder 不能提交空订单
	ErrEmptyOrder = apperrors.New(apperrors.ErrCodeInvalidParams, "不能提交没有明细的订单")

	// ErrInvalidTotal 订单总额不合法
	ErrInvalidTotal = apperrors.New(apperrors.ErrCodeInvalidParams, "订单总额必须大于0")

	// ErrNoActiveOrders 活动队列为空
	ErrNoActiveOrders = apperrors.New(apperrors.ErrCodeNotFound, "队列中没有待处理的订单")

	// ErrOrderNotSubmitted 订单尚未提交
	ErrOrderNotSubmitted = apperrors.New(apperrors.ErrCodeBusinessError, "订单尚未提交,请重新走提交流程")
)
