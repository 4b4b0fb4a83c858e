// Package saga 实现通用的补偿事务框架
//
// 核心思想：
// 1. 将一个多步操作拆分为若干本地短步骤
// 2. 每个步骤有对应的补偿操作
// 3. 如果某步失败，按逆序执行已完成步骤的补偿操作，保证无部分生效
//
// 本项目中用于订单确认时的库存预留：
// 每个订单明细对应一个"扣减库存/恢复库存"步骤，任一明细库存不足时，
// 已扣减的明细全部回滚，目录库存净变化为零。
package saga

import (
	"context"
	"fmt"
	"time"
)

// Step 表示事务中的一个步骤
//
// 设计要点：
// 1. Action是正向操作（如扣减库存）
// 2. Compensate是补偿操作（如恢复库存）
// 3. 补偿操作应只依赖自身Action的结果，不依赖后续步骤
type Step struct {
	Name       string                          // 步骤名称（用于日志和调试）
	Action     func(ctx context.Context) error // 正向操作
	Compensate func(ctx context.Context) error // 补偿操作
}

// Saga 表示一次补偿事务
type Saga struct {
	steps    []Step        // 所有步骤
	executed []Step        // 已执行的步骤（用于补偿）
	timeout  time.Duration // 整体超时时间，0表示不限制
}

// NewSaga 创建一个新的补偿事务
//
// 示例：
//
//	sg := saga.NewSaga(0)
//	sg.AddStep("扣减库存", decrStock, incrStock)
//	err := sg.Execute(ctx)
func NewSaga(timeout time.Duration) *Saga {
	return &Saga{
		steps:   make([]Step, 0),
		timeout: timeout,
	}
}

// AddStep 添加一个步骤
//
// 步骤顺序很重要：按添加顺序执行，按逆序补偿。
// Action和Compensate都可以为nil（如最后一步通常无需补偿）。
func (s *Saga) AddStep(name string, action, compensate func(ctx context.Context) error) {
	s.steps = append(s.steps, Step{
		Name:       name,
		Action:     action,
		Compensate: compensate,
	})
}

// Execute 执行事务
//
// 执行流程：
// 1. 按顺序执行每个步骤的Action
// 2. 如果某步失败，逆序执行已完成步骤的Compensate后返回错误
// 3. 全部成功返回nil
func (s *Saga) Execute(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	for i, step := range s.steps {
		select {
		case <-ctx.Done():
			// 超时/取消，触发补偿（补偿使用新Context，避免补偿也被取消）
			s.compensate(context.Background())
			return fmt.Errorf("事务中断: %w", ctx.Err())
		default:
		}

		if step.Action != nil {
			if err := step.Action(ctx); err != nil {
				s.compensate(context.Background())
				return fmt.Errorf("步骤[%d:%s]执行失败: %w", i, step.Name, err)
			}
		}

		s.executed = append(s.executed, step)
	}

	return nil
}

// compensate 逆序执行已完成步骤的补偿操作
// 即使某个补偿失败，也继续执行剩余补偿（尽最大努力），失败步骤打印到控制台
func (s *Saga) compensate(ctx context.Context) {
	for i := len(s.executed) - 1; i >= 0; i-- {
		step := s.executed[i]
		if step.Compensate != nil {
			if err := step.Compensate(ctx); err != nil {
				fmt.Printf("补偿失败[步骤:%s]: %v\n", step.Name, err)
			}
		}
	}
	s.executed = nil
}
