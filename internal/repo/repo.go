package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// AnalysisRecord is one persisted run: the full result payload plus a
// few columns lifted out for listing without unmarshalling.
type AnalysisRecord struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Project   string          `json:"project"`
	Bridge    string          `json:"bridge"`
	Status    string          `json:"status"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveAnalysis(ctx context.Context, userID int, payload []byte) (int, error)
	ListAnalyses(ctx context.Context, userID int) ([]AnalysisRecord, error)
	GetAnalysis(ctx context.Context, userID, id int) (AnalysisRecord, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

// SaveAnalysis stores the payload as JSONB; project, bridge and status
// are extracted in SQL so listings never read the payload.
func (r *PostgresRepository) SaveAnalysis(ctx context.Context, userID int, payload []byte) (int, error) {
	var id int
	query := `INSERT INTO analyses (user_id, project, bridge, status, payload)
		VALUES ($1, $2->'input'->>'project', $2->'input'->>'bridge', $2->>'status', $2)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, payload).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListAnalyses(ctx context.Context, userID int) ([]AnalysisRecord, error) {
	query := `SELECT id, user_id, COALESCE(project,''), COALESCE(bridge,''), status, created_at
		FROM analyses WHERE user_id=$1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Project, &rec.Bridge, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetAnalysis(ctx context.Context, userID, id int) (AnalysisRecord, error) {
	var rec AnalysisRecord
	query := `SELECT id, user_id, COALESCE(project,''), COALESCE(bridge,''), status, payload, created_at
		FROM analyses WHERE user_id=$1 AND id=$2`
	err := r.db.QueryRowContext(ctx, query, userID, id).
		Scan(&rec.ID, &rec.UserID, &rec.Project, &rec.Bridge, &rec.Status, &rec.Payload, &rec.CreatedAt)
	return rec, err
}
