package services

import "sync"

// dailyQuota hands out the drafts an owner may still create today.
// A negative remaining count means unlimited.
type dailyQuota struct {
	mu        sync.Mutex
	remaining int
}

func newDailyQuota(limit, used int) *dailyQuota {
	if limit <= 0 {
		return &dailyQuota{remaining: -1}
	}
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return &dailyQuota{remaining: remaining}
}

func (q *dailyQuota) reserve() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.remaining < 0 {
		return true
	}
	if q.remaining == 0 {
		return false
	}
	q.remaining--
	return true
}

func (q *dailyQuota) release(n int) {
	if n <= 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.remaining >= 0 {
		q.remaining += n
	}
}
