package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const tableName = "users"

var columns = []string{"id", "email", "display_name", "role", "balance", "created_at"}

// Repository репозиторий профилей пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	return r.getOne(ctx, "GetByID", builder)
}

// GetByEmail получает профиль по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"email": email})

	return r.getOne(ctx, "GetByEmail", builder)
}

// Create сохраняет новый профиль
func (r *Repository) Create(ctx context.Context, profile *domain.Profile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "email", "display_name", "role", "balance").
		Values(profile.ID, profile.Email, profile.DisplayName, string(profile.Role), profile.Balance).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Credit атомарно увеличивает баланс и возвращает новое значение
func (r *Repository) Credit(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildCreditQuery(id, amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: Credit - build update query: %v", ErrBuildQuery, err)
	}

	var balance decimal.Decimal
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, ErrAccountNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: Credit - execute update: %v", ErrExecQuery, err)
	}

	return balance, nil
}

// Debit списывает сумму, только если баланса хватает, и возвращает новое значение
func (r *Repository) Debit(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildDebitQuery(id, amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: Debit - build update query: %v", ErrBuildQuery, err)
	}

	var balance decimal.Decimal
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return decimal.Zero, getErr
		}
		return decimal.Zero, ErrInsufficientBalance
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: Debit - execute update: %v", ErrExecQuery, err)
	}

	return balance, nil
}

// SetBalance устанавливает баланс (административная операция)
func (r *Repository) SetBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("balance", balance).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetBalance - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetBalance - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetBalance - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func buildCreditQuery(id string, amount decimal.Decimal) (string, []interface{}, error) {
	return psqlbuilder.Update(tableName).
		Set("balance", squirrel.Expr("balance + ?", amount)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING balance").
		ToSql()
}

// buildDebitQuery строит списание с условием balance >= amount:
// проверка и изменение баланса выполняются одним оператором
func buildDebitQuery(id string, amount decimal.Decimal) (string, []interface{}, error) {
	return psqlbuilder.Update(tableName).
		Set("balance", squirrel.Expr("balance - ?", amount)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"balance": amount}).
		Suffix("RETURNING balance").
		ToSql()
}

func (r *Repository) getOne(ctx context.Context, op string, builder squirrel.SelectBuilder) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		profile domain.Profile
		role    string
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.Email,
		&profile.DisplayName,
		&role,
		&profile.Balance,
		&profile.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan profile: %v", ErrScanRow, op, err)
	}
	profile.Role = domain.Role(role)

	return &profile, nil
}
