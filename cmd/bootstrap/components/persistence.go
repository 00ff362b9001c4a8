package components

import (
	"gin-voucher-shop/internal/infra/readstore"
	sqlc "gin-voucher-shop/internal/infra/sqlc/generated"
	"gin-voucher-shop/internal/infra/uow"
	"gin-voucher-shop/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule exposes the pgx pool two ways: the shop read store runs
// single statements on the pool, while writes go through the unit of work.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		sqlc.New,
		NewDBTX,
	),
	fx.Provide(
		func(q *sqlc.Queries) readstore.ShopReadQueries { return q },
		fx.Annotate(
			readstore.NewShopReadStore,
			fx.As(new(queries.ShopReadStore)),
		),
	),
	// repositories are built per transaction inside Within
	fx.Provide(uow.NewPostgresUoW),
)

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
