// Package file contains a flat-file implementation of the persistence layer.
// The whole store is one JSON document, rewritten atomically on every mutation.
package file

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookmark/internal/domain/entity"
	"bookmark/internal/domain/repository"
	"bookmark/internal/errors"
)

// Store implements repository.UserRepository and repository.ProgressRepository
// on top of a single JSON file. Every operation is a full read-mutate-write
// cycle serialized by a mutex, so concurrent registrations cannot lose updates.
type Store struct {
	path   string
	logger *slog.Logger

	mu sync.Mutex
}

// document is the on-disk layout. The users array matches the layout of the
// legacy users.json file so existing data files keep working.
type document struct {
	Users    []userRecord              `json:"users"`
	Progress map[string]progressRecord `json:"progress,omitempty"`
}

type userRecord struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"` // stored credential, never the plaintext
	CreatedAt time.Time `json:"createdAt"`
}

type progressRecord struct {
	Page      int       `json:"page"`
	Chapter   string    `json:"chapter,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New opens the store at path, creating an empty document if the file
// does not exist yet.
func New(path string, logger *slog.Logger) (*Store, error) {
	store := &Store{path: path, logger: logger}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(err, "failed to create store directory")
			}
		}
		if err := store.save(&document{Users: []userRecord{}}); err != nil {
			return nil, err
		}
		logger.Info("Created empty user store", slog.String("path", path))
	}

	return store, nil
}

// FindByID retrieves a single user by their unique ID.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if doc.Users[i].ID == id.String() {
			return toUserDomain(&doc.Users[i])
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByEmail retrieves a single user by their email address.
// The match is case-sensitive, as stored.
func (s *Store) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if doc.Users[i].Email == email {
			return toUserDomain(&doc.Users[i])
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create appends a new user. The duplicate check and the insert happen under
// the same lock, so email uniqueness holds under concurrent writers.
func (s *Store) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Users {
		if doc.Users[i].Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	doc.Users = append(doc.Users, fromUserDomain(user))

	return s.save(doc)
}

// Delete removes a user and any saved reading progress.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	idx := -1
	for i := range doc.Users {
		if doc.Users[i].ID == id.String() {
			idx = i

			break
		}
	}
	if idx < 0 {
		return repository.ErrUserNotFound
	}

	doc.Users = append(doc.Users[:idx], doc.Users[idx+1:]...)
	delete(doc.Progress, id.String())

	return s.save(doc)
}

// Upsert creates or replaces the progress record for progress.UserID.
func (s *Store) Upsert(ctx context.Context, progress *entity.ReadingProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	if doc.Progress == nil {
		doc.Progress = make(map[string]progressRecord)
	}
	doc.Progress[progress.UserID.String()] = progressRecord{
		Page:      progress.Page,
		Chapter:   progress.Chapter,
		UpdatedAt: progress.UpdatedAt,
	}

	return s.save(doc)
}

// FindByUserID retrieves the progress record for a user.
func (s *Store) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ReadingProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	record, ok := doc.Progress[userID.String()]
	if !ok {
		return nil, repository.ErrProgressNotFound
	}

	return &entity.ReadingProgress{
		UserID:    userID,
		Page:      record.Page,
		Chapter:   record.Chapter,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

func (s *Store) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read user store")
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user store")
	}

	return doc, nil
}

// save writes to a temp file and renames it over the store, so a crash
// mid-write never leaves a truncated document.
func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode user store")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write user store")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to replace user store")
	}

	return nil
}

func toUserDomain(record *userRecord) (*entity.User, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt user id %q in store", record.ID)
	}

	return &entity.User{
		ID:           id,
		FirstName:    record.FirstName,
		LastName:     record.LastName,
		Email:        record.Email,
		PasswordHash: record.Password,
		CreatedAt:    record.CreatedAt,
	}, nil
}

func fromUserDomain(user *entity.User) userRecord {
	return userRecord{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
	}
}
