package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"corpportal/internal/models"
)

type profileRepository struct {
	db *sqlx.DB
}

type CreateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateProfileRequest struct {
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	DepartmentID *string    `json:"department_id"`
	AvatarURL    *string    `json:"avatar_url"`
	Birthday     *time.Time `json:"birthday"`
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *models.Profile, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	profile.UserID = uuid.New().String()
	profile.PasswordHash = string(hashedPassword)
	profile.CreatedAt = time.Now()

	query := `
		INSERT INTO profiles (user_id, name, email, password_hash, role, department_id, avatar_url, birthday, refresh_token, refresh_token_expiry_time, created_at)
		VALUES (:user_id, :name, :email, :password_hash, :role, :department_id, :avatar_url, :birthday, :refresh_token, :refresh_token_expiry_time, :created_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("ошибка при создании профиля: %w", err)
	}

	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile

	query := `SELECT * FROM profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("профиль с ID %s не найден", userID)
		}
		return nil, fmt.Errorf("ошибка при получении профиля: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile

	query := `SELECT * FROM profiles WHERE email = $1`

	err := r.db.GetContext(ctx, &profile, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("профиль с email %s не найден", email)
		}
		return nil, fmt.Errorf("ошибка при получении профиля по email: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile

	query := `SELECT * FROM profiles ORDER BY name`

	err := r.db.SelectContext(ctx, &profiles, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка профилей: %w", err)
	}

	return profiles, nil
}

// GetNamesByIDs возвращает имена авторов одним запросом по набору id.
// Агрегатор активности обязан ходить сюда один раз на цикл, а не по записи.
func (r *profileRepository) GetNamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	query, args, err := sqlx.In(`SELECT user_id, name FROM profiles WHERE user_id IN (?)`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("ошибка при построении запроса имён: %w", err)
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении имён авторов: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, name string
		if err := rows.Scan(&userID, &name); err != nil {
			return nil, fmt.Errorf("ошибка при чтении имени автора: %w", err)
		}
		names[userID] = name
	}

	return names, rows.Err()
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET name = :name, department_id = :department_id, avatar_url = :avatar_url, birthday = :birthday
		WHERE user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении профиля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("профиль с ID %s не найден", profile.UserID)
	}

	return nil
}

func (r *profileRepository) UpdateRole(ctx context.Context, userID, role string) error {
	query := `UPDATE profiles SET role = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, role, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении роли: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("профиль с ID %s не найден", userID)
	}

	return nil
}

func (r *profileRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM profiles WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении профиля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("профиль с ID %s не найден", userID)
	}

	return nil
}

func (r *profileRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error) {
	profile, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("неверный пароль")
	}

	return profile, nil
}

func (r *profileRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE profiles
		SET refresh_token = $1, refresh_token_expiry_time = $2
		WHERE user_id = $3
	`

	_, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении refresh token: %w", err)
	}

	return nil
}

func (r *profileRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error) {
	var profile models.Profile

	query := `
		SELECT * FROM profiles
		WHERE refresh_token = $1
		AND refresh_token_expiry_time > CURRENT_TIMESTAMP
	`

	err := r.db.GetContext(ctx, &profile, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("недействительный или просроченный refresh token")
		}
		return nil, fmt.Errorf("ошибка при получении профиля по refresh token: %w", err)
	}

	return &profile, nil
}
