package postgres

import (
	"context"
	"fmt"

	"github.com/hws/travel-api/internal/application/usecase"
	"github.com/hws/travel-api/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure TxRunner implements usecase.GuideTxRunner.
var _ usecase.GuideTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la unidad de escritura del agregado Guide: guía,
// colocaciones e invitaciones se persisten juntas o no se persiste nada.
func (r *TxRunner) Run(ctx context.Context, fn func(
	guides repository.GuideRepository,
	activites repository.ActiviteRepository,
	users repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	guideRepo := NewGuideRepository(tx)
	activiteRepo := NewActiviteRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(guideRepo, activiteRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
