// Package repository keeps the backend's entities in memory. Entities are
// returned as copies with their related records joined in.
package repository

import (
	"assetconsole/models"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// TimeLayout is the timestamp format written on every entity.
const TimeLayout = "2006-01-02T15:04:05.000Z"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

// StoreError carries a user-facing message and one of the sentinel kinds.
type StoreError struct {
	Kind    error
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) error {
	return &StoreError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

type userRecord struct {
	user         models.User
	passwordHash []byte
	seq          uint64
}

type categoryRecord struct {
	category models.Category
	seq      uint64
}

type assetRecord struct {
	asset models.Asset
	seq   uint64
}

type requestRecord struct {
	request models.AssetRequest
	seq     uint64
}

// Image is a stored upload.
type Image struct {
	ContentType string
	Data        []byte
}

type Store struct {
	mu         sync.RWMutex
	seq        uint64
	users      map[string]*userRecord
	categories map[string]*categoryRecord
	assets     map[string]*assetRecord
	requests   map[string]*requestRecord
	images     map[string]Image

	hashCost int
	now      func() time.Time
}

type Option func(*Store)

// WithHashCost sets the bcrypt cost used for passwords.
func WithHashCost(cost int) Option {
	return func(s *Store) {
		s.hashCost = cost
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		users:      make(map[string]*userRecord),
		categories: make(map[string]*categoryRecord),
		assets:     make(map[string]*assetRecord),
		requests:   make(map[string]*requestRecord),
		images:     make(map[string]Image),
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp must be called with the lock held.
func (s *Store) timestamp() string {
	return s.now().UTC().Format(TimeLayout)
}

// nextSeq must be called with the lock held.
func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func newID() string {
	return uuid.New().String()
}

func containsFold(value, search string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(search))
}

// newestFirst sorts records by creation order, most recent first.
func newestFirst[T any](items []T, seq func(T) uint64) {
	sort.Slice(items, func(i, j int) bool {
		return seq(items[i]) > seq(items[j])
	})
}

func (s *Store) SaveImage(fileName, contentType string, data []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := newID()
	if ext := extension(fileName); ext != "" {
		key += ext
	}
	s.images[key] = Image{ContentType: contentType, Data: data}
	return key
}

func (s *Store) GetImage(key string) (Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[key]
	if !ok {
		return Image{}, newError(ErrNotFound, "Image not found")
	}
	return img, nil
}

func extension(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return ""
	}
	return strings.ToLower(fileName[idx:])
}
