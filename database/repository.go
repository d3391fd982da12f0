package database

import (
	"esantiye/models"
	"fmt"
	"sort"
	"strings"
	"time"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ==================== RESOURCES ====================

// List returns every row of table. With newestFirst the rows are ordered by
// creation time descending, id breaking ties within the same second.
func (r *Repository) List(table string, newestFirst bool) ([]models.Row, error) {
	def, ok := Table(table)
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	query := "SELECT * FROM " + def.Name
	if newestFirst {
		query += " ORDER BY created_at DESC, id DESC"
	}

	return r.db.QueryMany(query)
}

// Insert adds one row to table using only the given columns; every other
// column takes its declared default. Column names must belong to the table.
func (r *Repository) Insert(table string, fields map[string]any) (int64, error) {
	def, ok := Table(table)
	if !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	if len(fields) == 0 {
		return 0, fmt.Errorf("no columns given for %s", table)
	}

	columns := make([]string, 0, len(fields))
	for col := range fields {
		if !def.HasColumn(col) {
			return 0, fmt.Errorf("unknown column %q for %s", col, table)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	args := make([]any, len(columns))
	for i, col := range columns {
		args[i] = fields[col]
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		def.Name, strings.Join(columns, ", "), placeholders)

	res, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertID, nil
}

// Count returns the number of rows in table.
func (r *Repository) Count(table string) (int64, error) {
	def, ok := Table(table)
	if !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}

	row, err := r.db.QueryOne("SELECT COUNT(*) AS c FROM " + def.Name)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}

	count, _ := row["c"].(int64)
	return count, nil
}

// ==================== USERS ====================

func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	row, err := r.db.QueryOne(`
		SELECT id, username, email, role, status, created_at
		FROM users WHERE username = ?
	`, username)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	user := &models.User{}
	user.ID, _ = row["id"].(int64)
	user.Username, _ = row["username"].(string)
	user.Email, _ = row["email"].(string)
	user.Role, _ = row["role"].(string)
	user.Status, _ = row["status"].(string)
	if ts, ok := row["created_at"].(string); ok {
		user.CreatedAt, _ = time.Parse(TimestampFormat, ts)
	}
	return user, nil
}

// CreateUser stores a user whose password is already hashed.
func (r *Repository) CreateUser(user *models.User, passwordHash string) error {
	res, err := r.db.Exec(`
		INSERT INTO users (username, email, password, role)
		VALUES (?, ?, ?, ?)
	`, user.Username, user.Email, passwordHash, user.Role)
	if err != nil {
		return err
	}

	user.ID = res.LastInsertID
	return nil
}
