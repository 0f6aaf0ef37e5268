package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gopkg.in/guregu/null.v4"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

const (
	tableName = "parking_slots"

	// uniqueViolation код ошибки PostgreSQL для нарушения UNIQUE
	uniqueViolation = "23505"
	// invalidTextRepresentation код ошибки PostgreSQL для значения, не приводимого к типу колонки
	invalidTextRepresentation = "22P02"
)

var columns = []string{
	"id",
	"slot_number",
	"occupied",
	"vehicle_plate",
	"vehicle_type",
	"entry_time",
	"entered_at",
	"image_url",
	"owner_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий парковочных мест
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мест
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все места по возрастанию номера
func (r *Repository) List(ctx context.Context) ([]*domain.ParkingSlot, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("slot_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// ListAvailable возвращает свободные места по возрастанию номера
func (r *Repository) ListAvailable(ctx context.Context) ([]*domain.ParkingSlot, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"occupied": false}).
		OrderBy("slot_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListAvailable", query, args)
}

// GetByID получает место по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error) {
	// id места - UUID; строка другого вида не может совпасть ни с одним местом
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSlotNotFound
	}

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, "GetByID", query, args)
}

// GetByNumber получает место по номеру
func (r *Repository) GetByNumber(ctx context.Context, slotNumber int) (*domain.ParkingSlot, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"slot_number": slotNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, "GetByNumber", query, args)
}

// Count возвращает количество мест
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From(tableName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Create создает свободное место
func (r *Repository) Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "slot_number", "occupied").
		Values(slot.ID, slot.SlotNumber, false).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: slot_number=%d", ErrDuplicateSlotNumber, slot.SlotNumber)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return created, nil
}

// Occupy занимает место одним условным UPDATE (только если оно свободно)
// Если ни одна строка не обновлена, различает отсутствие места и занятое место
func (r *Repository) Occupy(ctx context.Context, slotNumber int, occ domain.Occupancy) (*domain.ParkingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildOccupyQuery(slotNumber, occ)
	if err != nil {
		return nil, fmt.Errorf("%w: Occupy - build update query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByNumber(ctx, slotNumber); getErr != nil {
			return nil, getErr
		}
		return nil, ErrSlotOccupied
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Occupy - execute update: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// Release освобождает занятое место и очищает все поля занятости
func (r *Repository) Release(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildReleaseQuery(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotOccupied
	}

	return nil
}

// ReleaseAll освобождает все занятые места, возвращает количество освобожденных
func (r *Repository) ReleaseAll(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildReleaseQuery(nil).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseAll - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseAll - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseAll - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func buildOccupyQuery(slotNumber int, occ domain.Occupancy) (string, []interface{}, error) {
	return psqlbuilder.Update(tableName).
		Set("occupied", true).
		Set("vehicle_plate", occ.VehiclePlate).
		Set("vehicle_type", occ.VehicleType).
		Set("entry_time", occ.EntryTime.String()).
		Set("entered_at", occ.EnteredAt).
		Set("image_url", occ.ImageURL).
		Set("owner_id", occ.OwnerID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slot_number": slotNumber}).
		Where(squirrel.Eq{"occupied": false}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
}

// buildReleaseQuery строит UPDATE, очищающий занятость; where == nil - все занятые места
func buildReleaseQuery(where squirrel.Sqlizer) squirrel.UpdateBuilder {
	builder := psqlbuilder.Update(tableName).
		Set("occupied", false).
		Set("vehicle_plate", nil).
		Set("vehicle_type", nil).
		Set("entry_time", nil).
		Set("entered_at", nil).
		Set("image_url", nil).
		Set("owner_id", nil).
		Set("updated_at", squirrel.Expr("NOW()"))

	if where != nil {
		builder = builder.Where(where)
	}

	return builder.Where(squirrel.Eq{"occupied": true})
}

func (r *Repository) query(ctx context.Context, op string, query string, args []interface{}) ([]*domain.ParkingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	slots := make([]*domain.ParkingSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return slots, nil
}

func (r *Repository) queryOne(ctx context.Context, op string, query string, args []interface{}) (*domain.ParkingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || isInvalidValue(err) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, op, err)
	}

	return slot, nil
}

func isInvalidValue(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == invalidTextRepresentation
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSlot сканирует строку; поля занятости собираются в Occupancy только для занятого места
func scanSlot(row rowScanner) (*domain.ParkingSlot, error) {
	var (
		slot      domain.ParkingSlot
		occupied  bool
		plate     null.String
		vehicle   null.String
		entryTime null.String
		enteredAt null.Time
		imageURL  null.String
		ownerID   null.String
	)

	err := row.Scan(
		&slot.ID,
		&slot.SlotNumber,
		&occupied,
		&plate,
		&vehicle,
		&entryTime,
		&enteredAt,
		&imageURL,
		&ownerID,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if occupied {
		slot.Occupancy = &domain.Occupancy{
			VehiclePlate: plate.String,
			VehicleType:  vehicle.String,
			EntryTime:    types.ClockTime(entryTime.String),
			EnteredAt:    enteredAt.Time,
			ImageURL:     imageURL.Ptr(),
			OwnerID:      ownerID.String,
		}
	}

	return &slot, nil
}
