package storage

import (
	"sync"
	"testing"

	"github.com/aliskhannn/video-quiz-bot/internal/service"
)

func newStorage(created *int) *FlowStorage {
	return NewFlowStorage(func() *service.QuizFlow {
		*created++
		return service.NewQuizFlow(nil)
	})
}

func TestFlowStorageGet(t *testing.T) {
	var created int
	s := newStorage(&created)

	a := s.Get(1)
	if a != s.Get(1) {
		t.Fatalf("second Get returned a different flow")
	}
	if s.Get(2) == a {
		t.Fatalf("chats share a flow")
	}
	if created != 2 || s.Len() != 2 {
		t.Fatalf("created = %d, len = %d", created, s.Len())
	}
}

func TestFlowStorageDelete(t *testing.T) {
	var created int
	s := newStorage(&created)

	a := s.Get(1)
	s.Delete(1)
	s.Delete(99)
	if s.Len() != 0 {
		t.Fatalf("len = %d after delete", s.Len())
	}
	if s.Get(1) == a {
		t.Fatalf("deleted flow returned again")
	}
}

func TestFlowStorageConcurrentGet(t *testing.T) {
	var mu sync.Mutex
	created := 0
	s := NewFlowStorage(func() *service.QuizFlow {
		mu.Lock()
		created++
		mu.Unlock()
		return service.NewQuizFlow(nil)
	})

	var wg sync.WaitGroup
	flows := make([]*service.QuizFlow, 16)
	for i := range flows {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flows[i] = s.Get(7)
		}()
	}
	wg.Wait()

	for _, f := range flows[1:] {
		if f != flows[0] {
			t.Fatalf("concurrent Get created distinct flows")
		}
	}
	if created != 1 {
		t.Fatalf("created = %d, want 1", created)
	}
}
