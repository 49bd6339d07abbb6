package usecase

import (
	"context"
	"fmt"
	"time"

	"suggestion-app/src/domain"
	"suggestion-app/src/metrics"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

// SessionStore keeps the list views of live sessions in memory.
// 期限切れ・容量超過で破棄されたセッションはビューの破棄とみなす
type SessionStore struct {
	repo     domain.SuggestionRepository
	sessions *expirable.LRU[string, *ListView]
	logger   *logrus.Logger
}

// NewSessionStore creates a session store holding at most size sessions for ttl each
func NewSessionStore(repo domain.SuggestionRepository, size int, ttl time.Duration, logger *logrus.Logger) *SessionStore {
	s := &SessionStore{
		repo:   repo,
		logger: logger,
	}
	// onEvictはLRUのロック内で呼ばれるため、ストアのメソッドを呼ばないこと
	s.sessions = expirable.NewLRU[string, *ListView](size, func(id string, _ *ListView) {
		metrics.ActiveSessions.Dec()
		logger.WithField("session_id", id).Debug("セッションを破棄しました")
	}, ttl)
	return s
}

// Create starts a new list view session
func (s *SessionStore) Create(ctx context.Context) (string, *ListView, error) {
	catalog, err := s.repo.All(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load catalog for session: %w", err)
	}

	id := uuid.New().String()
	view := NewListView(catalog)
	s.sessions.Add(id, view)
	metrics.ActiveSessions.Inc()

	s.logger.WithField("session_id", id).Info("セッションを作成しました")
	return id, view, nil
}

// Get returns the list view of a live session and extends its lifetime
func (s *SessionStore) Get(id string) (*ListView, bool) {
	view, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	// 再登録で有効期限を延長する
	s.sessions.Add(id, view)
	return view, true
}

// GetOrCreate returns the session for id, creating a new one when id is unknown.
// 新規作成した場合は第3戻り値がtrue
func (s *SessionStore) GetOrCreate(ctx context.Context, id string) (string, *ListView, bool, error) {
	if _, err := uuid.Parse(id); err == nil {
		if view, ok := s.Get(id); ok {
			return id, view, false, nil
		}
	}

	newID, view, err := s.Create(ctx)
	if err != nil {
		return "", nil, false, err
	}
	return newID, view, true, nil
}

// Delete tears down a session
func (s *SessionStore) Delete(id string) bool {
	return s.sessions.Remove(id)
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}
