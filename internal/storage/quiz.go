package storage

import (
	"sync"

	"github.com/aliskhannn/video-quiz-bot/internal/service"
)

// FlowStorage keeps one quiz flow per chat in memory.
type FlowStorage struct {
	mu    sync.RWMutex
	flows map[int64]*service.QuizFlow
	newFn func() *service.QuizFlow
}

// NewFlowStorage creates a FlowStorage that builds missing flows with newFn.
func NewFlowStorage(newFn func() *service.QuizFlow) *FlowStorage {
	return &FlowStorage{
		flows: make(map[int64]*service.QuizFlow),
		newFn: newFn,
	}
}

// Get returns the flow for chatID, creating it on first use.
func (s *FlowStorage) Get(chatID int64) *service.QuizFlow {
	s.mu.RLock()
	f, ok := s.flows[chatID]
	s.mu.RUnlock()
	if ok {
		return f
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.flows[chatID]; ok {
		return f
	}
	f = s.newFn()
	s.flows[chatID] = f
	return f
}

// Delete removes the flow for chatID.
func (s *FlowStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, chatID)
}

// Len returns the number of stored flows.
func (s *FlowStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}
