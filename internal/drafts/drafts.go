// Package drafts persists composer drafts between sessions.
package drafts

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no draft matches an ID or prefix.
	ErrNotFound = errors.New("draft not found")
	// ErrAmbiguousID is returned when a prefix matches more than one draft.
	ErrAmbiguousID = errors.New("draft id is ambiguous")
)

// Draft is one saved post body
type Draft struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Caret     int       `json:"caret"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Title returns the first non-empty line of the draft, for listings.
func (d *Draft) Title() string {
	for _, line := range strings.Split(d.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return "(empty)"
}

// Store holds every draft keyed by ID
type Store struct {
	Drafts map[string]*Draft `json:"drafts"`

	path string
	now  func() time.Time
}

// NewStore creates an empty store backed by path
func NewStore(path string) *Store {
	return &Store{
		Drafts: make(map[string]*Draft),
		path:   path,
		now:    time.Now,
	}
}

// Load reads the store from path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	s := NewStore(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse drafts: %w", err)
	}
	if s.Drafts == nil {
		s.Drafts = make(map[string]*Draft)
	}

	return s, nil
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Save writes the store to its file
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create drafts directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal drafts: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write drafts file: %w", err)
	}

	return nil
}

// ComputeHash computes the SHA256 hash of draft text
func ComputeHash(text string) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256([]byte(text)))
}

// Create adds a new draft with a fresh ID
func (s *Store) Create(text string) *Draft {
	now := s.now()
	d := &Draft{
		ID:        uuid.NewString(),
		Text:      text,
		Hash:      ComputeHash(text),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Drafts[d.ID] = d
	return d
}

// Find returns the draft whose ID equals id or starts with it.
func (s *Store) Find(id string) (*Draft, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	if d, ok := s.Drafts[id]; ok {
		return d, nil
	}

	var match *Draft
	for key, d := range s.Drafts {
		if !strings.HasPrefix(key, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
		}
		match = d
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return match, nil
}

// Update stores new text and caret for a draft. It reports whether the
// text changed; UpdatedAt only moves when it did.
func (s *Store) Update(id, text string, caret int) (bool, error) {
	d, err := s.Find(id)
	if err != nil {
		return false, err
	}

	d.Caret = caret
	hash := ComputeHash(text)
	if hash == d.Hash {
		return false, nil
	}

	d.Text = text
	d.Hash = hash
	d.UpdatedAt = s.now()
	return true, nil
}

// Delete removes a draft by ID or unique prefix
func (s *Store) Delete(id string) error {
	d, err := s.Find(id)
	if err != nil {
		return err
	}
	delete(s.Drafts, d.ID)
	return nil
}

// List returns drafts, most recently updated first
func (s *Store) List() []*Draft {
	list := make([]*Draft, 0, len(s.Drafts))
	for _, d := range s.Drafts {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].UpdatedAt.After(list[j].UpdatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list
}
