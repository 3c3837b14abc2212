// Package repository implements data access for the Platea API. The user
// store is a single JSON file: small restaurants run this on one box, and a
// file keeps operational surface minimal. The repository guards the file with
// a mutex and rewrites it atomically on every mutation.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plateahq/Platea_Backend/internal/models"
	"github.com/plateahq/Platea_Backend/internal/utils"
)

// UserRepository defines the data access contract for account records.
// The service layer treats it as an opaque collaborator.
type UserRepository interface {
	// GetByEmail retrieves a user by normalized (lowercase) email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// ExistsByEmail checks whether an account with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, user *models.User) error

	// HealthCheck verifies the backing store is reachable.
	HealthCheck(ctx context.Context) error
}

// userRecord is the on-disk shape of an account. It exists so the password
// hash can be persisted while models.User keeps it out of every JSON response.
type userRecord struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"password_hash"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	RestaurantName string    `json:"restaurant_name"`
	Role           string    `json:"role"`
	Phone          string    `json:"phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// storeFile is the top-level structure of the JSON store.
type storeFile struct {
	NextID int64        `json:"next_id"`
	Users  []userRecord `json:"users"`
}

// FileUserRepository is a UserRepository backed by a JSON file. The full
// record set is held in memory and flushed to disk on every write via a
// temp-file-and-rename so a crash mid-write cannot corrupt the store.
type FileUserRepository struct {
	path string

	mu      sync.RWMutex
	byID    map[int64]*userRecord
	byEmail map[string]int64
	nextID  int64
}

// NewFileUserRepository opens (or creates) the JSON store at path and loads
// it into memory.
func NewFileUserRepository(path string) (*FileUserRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	r := &FileUserRepository{
		path:    path,
		byID:    make(map[int64]*userRecord),
		byEmail: make(map[string]int64),
		nextID:  1,
	}

	if err := r.load(); err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Int("users", len(r.byID)).Msg("User store loaded")
	return r, nil
}

func (r *FileUserRepository) load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read user store: %w", err)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse user store: %w", err)
	}

	for i := range file.Users {
		record := file.Users[i]
		r.byID[record.ID] = &record
		r.byEmail[models.NormalizeEmail(record.Email)] = record.ID
	}
	r.nextID = file.NextID
	if r.nextID < 1 {
		r.nextID = 1
	}

	return nil
}

// persist writes the current record set to disk. Callers must hold r.mu.
func (r *FileUserRepository) persist() error {
	file := storeFile{NextID: r.nextID}
	for _, record := range r.byID {
		file.Users = append(file.Users, *record)
	}
	sort.Slice(file.Users, func(i, j int) bool { return file.Users[i].ID < file.Users[j].ID })

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode user store: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write user store: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace user store: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email, case-insensitively.
func (r *FileUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return nil, utils.NewNotFoundError("User", email)
	}
	return r.byID[id].toModel(), nil
}

// GetByID retrieves a user by ID.
func (r *FileUserRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, utils.NewNotFoundError("User", id)
	}
	return record.toModel(), nil
}

// ExistsByEmail checks whether an account with the email exists,
// case-insensitively.
func (r *FileUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[models.NormalizeEmail(email)]
	return ok, nil
}

// Create persists a new user, assigning the next ID. Email uniqueness is
// enforced here as well as in the service so concurrent registrations for
// the same address cannot both succeed.
func (r *FileUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := models.NormalizeEmail(user.Email)
	if _, exists := r.byEmail[email]; exists {
		return utils.NewDuplicateError("duplicate email")
	}

	record := &userRecord{
		ID:             r.nextID,
		Email:          email,
		PasswordHash:   user.PasswordHash,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		RestaurantName: user.RestaurantName,
		Role:           user.Role,
		Phone:          user.Phone,
		CreatedAt:      user.CreatedAt,
	}

	r.byID[record.ID] = record
	r.byEmail[email] = record.ID
	r.nextID++

	if err := r.persist(); err != nil {
		// Roll back the in-memory insert so memory and disk stay consistent.
		delete(r.byID, record.ID)
		delete(r.byEmail, email)
		r.nextID--
		return err
	}

	user.ID = record.ID
	user.Email = email
	return nil
}

// HealthCheck verifies the store directory is still accessible.
func (r *FileUserRepository) HealthCheck(_ context.Context) error {
	_, err := os.Stat(filepath.Dir(r.path))
	return err
}

func (rec *userRecord) toModel() *models.User {
	return &models.User{
		ID:             rec.ID,
		Email:          rec.Email,
		PasswordHash:   rec.PasswordHash,
		FirstName:      rec.FirstName,
		LastName:       rec.LastName,
		RestaurantName: rec.RestaurantName,
		Role:           rec.Role,
		Phone:          rec.Phone,
		CreatedAt:      rec.CreatedAt,
	}
}
