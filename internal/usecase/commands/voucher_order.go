package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"gin-voucher-shop/internal/domain/order"
	"gin-voucher-shop/internal/domain/voucher"
	"gin-voucher-shop/internal/infra"
	"gin-voucher-shop/internal/pkg/authctx"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/errs"
	"gin-voucher-shop/internal/usecase/shared"
)

var (
	ErrVoucherNotFound         = errs.New("voucher not found")
	ErrSaleNotStarted          = errs.New("sale not started")
	ErrSaleEnded               = errs.New("sale ended")
	ErrSoldOut                 = errs.New("sold out")
	ErrDuplicateRequest        = errs.New("duplicate purchase request")
	ErrAlreadyPurchased        = errs.New("voucher already purchased")
	ErrUnauthenticated         = errs.New("purchase requires an authenticated user")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	orderSequenceKey = "order"
	orderLockPrefix  = "order:"
)

const (
	OutcomeCreated          = "created"
	OutcomeNotFound         = "not_found"
	OutcomeNotStarted       = "not_started"
	OutcomeEnded            = "ended"
	OutcomeSoldOut          = "sold_out"
	OutcomeDuplicate        = "duplicate_request"
	OutcomeAlreadyPurchased = "already_purchased"
	OutcomeFailed           = "failed"
)

// OrderLockKey is the per-user resource guarded while an order attempt runs.
func OrderLockKey(userID int64) string {
	return orderLockPrefix + strconv.FormatInt(userID, 10)
}

type PurchaseResult struct {
	OrderID int64
}

type VoucherOrderCommands interface {
	// Purchase places a flash-sale order for the user carried in ctx.
	Purchase(ctx context.Context, voucherID int64) (*PurchaseResult, error)
}

type voucherOrderUseCaseImpl struct {
	uow       shared.UnitOfWork
	locker    Locker
	ids       IDGenerator
	recorder  PurchaseRecorder
	clock     clock.Clock
	lockLease time.Duration
	logger    *slog.Logger
}

func NewVoucherOrderUseCase(
	uow shared.UnitOfWork,
	locker Locker,
	ids IDGenerator,
	recorder PurchaseRecorder,
	clock clock.Clock,
	lockLease time.Duration,
	logger *slog.Logger,
) VoucherOrderCommands {
	return &voucherOrderUseCaseImpl{
		uow:       uow,
		locker:    locker,
		ids:       ids,
		recorder:  recorder,
		clock:     clock,
		lockLease: lockLease,
		logger:    logger,
	}
}

func (u *voucherOrderUseCaseImpl) Purchase(ctx context.Context, voucherID int64) (*PurchaseResult, error) {
	userID, ok := authctx.UserID(ctx)
	if !ok {
		return nil, errs.Mark(ErrUnauthenticated, errs.ErrUnauthenticated)
	}

	result, err := u.purchase(ctx, userID, voucherID)
	u.recorder.PurchaseOutcome(outcomeOf(err))
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "voucher order created",
		slog.Int64("order_id", result.OrderID),
		slog.Int64("user_id", userID),
		slog.Int64("voucher_id", voucherID))
	return result, nil
}

func (u *voucherOrderUseCaseImpl) purchase(ctx context.Context, userID, voucherID int64) (*PurchaseResult, error) {
	v, err := u.validateVoucher(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	handle, err := u.locker.TryAcquire(ctx, OrderLockKey(userID), u.lockLease)
	if err != nil {
		if errs.Is(err, errs.ErrLockContention) {
			return nil, errs.Mark(ErrDuplicateRequest, errs.ErrLockContention)
		}
		return nil, errs.Wrap(err, "acquire order lock")
	}
	defer u.locker.ReleaseQuietly(ctx, handle)

	var orderID int64
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := u.placeOrder(ctx, tx, userID, v.ID())
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PurchaseResult{OrderID: orderID}, nil
}

// validateVoucher rejects requests that cannot succeed before any lock is taken.
func (u *voucherOrderUseCaseImpl) validateVoucher(ctx context.Context, voucherID int64) (*voucher.SeckillVoucher, error) {
	v, err := u.uow.CommandReads().VoucherByID(ctx, voucherID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrVoucherNotFound, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := v.ValidateWindow(u.clock.Now()); err != nil {
		if errs.Is(err, voucher.ErrSaleNotStarted) {
			return nil, errs.Mark(ErrSaleNotStarted, errs.ErrWindowViolation)
		}
		return nil, errs.Mark(ErrSaleEnded, errs.ErrWindowViolation)
	}
	if err := v.ValidateStock(); err != nil {
		return nil, errs.Mark(ErrSoldOut, errs.ErrStockExhausted)
	}
	return v, nil
}

func (u *voucherOrderUseCaseImpl) placeOrder(ctx context.Context, tx shared.Tx, userID, voucherID int64) (int64, error) {
	count, err := tx.Orders().CountByUserAndVoucher(ctx, userID, voucherID)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count > 0 {
		return 0, errs.Mark(ErrAlreadyPurchased, errs.ErrAlreadyPurchased)
	}

	taken, err := tx.Vouchers().DecrementStock(ctx, voucherID)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !taken {
		return 0, errs.Mark(ErrSoldOut, errs.ErrStockExhausted)
	}

	id, err := u.ids.NextID(ctx, orderSequenceKey)
	if err != nil {
		return 0, errs.Wrap(err, "mint order id")
	}

	o, err := order.NewVoucherOrder(id, userID, voucherID, u.clock.Now())
	if err != nil {
		return 0, errs.Wrap(err, "build voucher order")
	}

	if err := tx.Orders().Create(ctx, o); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.Mark(ErrAlreadyPurchased, errs.ErrAlreadyPurchased)
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeCreated
	case errs.Is(err, ErrVoucherNotFound):
		return OutcomeNotFound
	case errs.Is(err, ErrSaleNotStarted):
		return OutcomeNotStarted
	case errs.Is(err, ErrSaleEnded):
		return OutcomeEnded
	case errs.Is(err, ErrSoldOut):
		return OutcomeSoldOut
	case errs.Is(err, ErrDuplicateRequest):
		return OutcomeDuplicate
	case errs.Is(err, ErrAlreadyPurchased):
		return OutcomeAlreadyPurchased
	default:
		return OutcomeFailed
	}
}
