package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

const passColumns = `id, kind, holder_name, email, phone, age, pass_type, status,
	decline_reason, unique_pass_id, rfid_uid, pass_validity, renewal_requested,
	college, roll_number, document_file, photo_file, created_at, updated_at`

type PassRepository struct {
	db *sql.DB
}

var _ ports.PassRepository = (*PassRepository)(nil)

func NewPassRepository(db *sql.DB) *PassRepository {
	return &PassRepository{db: db}
}

func (r *PassRepository) Get(ctx context.Context, kind domain.Kind, id string) (*domain.Pass, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+passColumns+" FROM passes WHERE kind = $1 AND id = $2",
		kind, id,
	)
	return scanPass(row)
}

func (r *PassRepository) FindByUID(ctx context.Context, kind domain.Kind, uid string) (*domain.Pass, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+passColumns+` FROM passes
		 WHERE kind = $1 AND rfid_uid = $2 AND rfid_uid <> ''
		 ORDER BY updated_at DESC LIMIT 1`,
		kind, uid,
	)
	return scanPass(row)
}

func (r *PassRepository) Create(ctx context.Context, pass domain.Pass) (*domain.Pass, error) {
	now := time.Now()
	if pass.CreatedAt.IsZero() {
		pass.CreatedAt = now
	}
	pass.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO passes (
			id, kind, holder_name, email, phone, age, pass_type, status,
			decline_reason, unique_pass_id, rfid_uid, pass_validity, renewal_requested,
			college, roll_number, document_file, photo_file, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		pass.ID, pass.Kind, pass.HolderName, pass.Email, pass.Phone, pass.Age,
		pass.PassType, pass.Status, pass.DeclineReason, pass.UniquePassID,
		pass.RFIDUID, nullableTime(pass.PassValidity), pass.RenewalRequested,
		pass.College, pass.RollNumber, pass.DocumentFile, pass.PhotoFile,
		pass.CreatedAt, pass.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pass, nil
}

func (r *PassRepository) Update(ctx context.Context, pass domain.Pass) (*domain.Pass, error) {
	pass.UpdatedAt = time.Now()

	res, err := r.db.ExecContext(ctx,
		`UPDATE passes SET
			holder_name = $3, email = $4, phone = $5, age = $6, pass_type = $7,
			status = $8, decline_reason = $9, unique_pass_id = $10, rfid_uid = $11,
			pass_validity = $12, renewal_requested = $13, updated_at = $14
		 WHERE kind = $1 AND id = $2`,
		pass.Kind, pass.ID, pass.HolderName, pass.Email, pass.Phone, pass.Age,
		pass.PassType, pass.Status, pass.DeclineReason, pass.UniquePassID,
		pass.RFIDUID, nullableTime(pass.PassValidity), pass.RenewalRequested,
		pass.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrNotFound
	}
	return &pass, nil
}

// UpdateApproval writes the approval fields and the pass.issued outbox
// event in one transaction. A trigger on outbox_events raises the NOTIFY
// the relay listens for.
func (r *PassRepository) UpdateApproval(ctx context.Context, pass domain.Pass, outboxPayload []byte) (*domain.Pass, error) {
	pass.UpdatedAt = time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE passes SET
			status = $3, decline_reason = $4, unique_pass_id = $5, rfid_uid = $6,
			pass_validity = $7, renewal_requested = $8, updated_at = $9
		 WHERE kind = $1 AND id = $2`,
		pass.Kind, pass.ID, pass.Status, pass.DeclineReason, pass.UniquePassID,
		pass.RFIDUID, nullableTime(pass.PassValidity), pass.RenewalRequested,
		pass.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrNotFound
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO outbox_events (id, event_type, payload) VALUES ($1, $2, $3)",
		uuid.NewString(), "pass.issued", outboxPayload,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &pass, nil
}

func (r *PassRepository) ListByStatus(ctx context.Context, kind domain.Kind, status domain.Status) ([]domain.Pass, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+passColumns+" FROM passes WHERE kind = $1 AND status = $2 ORDER BY created_at",
		kind, status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passes []domain.Pass
	for rows.Next() {
		p, err := scanPass(rows)
		if err != nil {
			return nil, err
		}
		passes = append(passes, *p)
	}
	return passes, rows.Err()
}

func (r *PassRepository) CreateBusPass(ctx context.Context, entry domain.BusPass) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bus_passes (pass_number, expiry_date, rfid_uid, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.PassNumber, entry.ExpiryDate, entry.RFIDUID, entry.Status, entry.CreatedAt,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPass(row rowScanner) (*domain.Pass, error) {
	var p domain.Pass
	var validity sql.NullTime
	err := row.Scan(
		&p.ID, &p.Kind, &p.HolderName, &p.Email, &p.Phone, &p.Age,
		&p.PassType, &p.Status, &p.DeclineReason, &p.UniquePassID,
		&p.RFIDUID, &validity, &p.RenewalRequested,
		&p.College, &p.RollNumber, &p.DocumentFile, &p.PhotoFile,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if validity.Valid {
		t := validity.Time
		p.PassValidity = &t
	}
	return &p, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
