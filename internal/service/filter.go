package service

import (
	"sort"
	"strings"

	"github.com/spec-kit/repair-dashboard/internal/domain"
)

// The functions in this file derive displayed subsets from already-fetched
// collections. They are pure: no I/O, no mutation of their inputs, and
// recomputing with the same inputs yields the same output in the same order.

// FilterUsers keeps users whose name, email or phone number contains the
// search term as a case-insensitive substring. An empty term keeps all.
func FilterUsers(users []domain.User, term string) []domain.User {
	term = strings.ToLower(term)
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if term == "" || containsFold(u.Name, term) || containsFold(u.Email, term) || containsFold(u.PhoneNumber, term) {
			out = append(out, u)
		}
	}
	return out
}

// SortUsersByIDDesc returns the users ordered by strictly descending
// lexicographic userID. Display-order contract only; the input is not
// modified.
func SortUsersByIDDesc(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	copy(out, users)
	sort.Slice(out, func(i, j int) bool {
		return out[i].UserID > out[j].UserID
	})
	return out
}

// FilterOrders keeps orders matching the status filter and search term.
// A record matches when its normalized status equals the (normalized)
// filter — or the filter is empty — and when the term is empty or appears
// case-insensitively in reqUserId, orderId, or the resolved user name.
// The name is consulted only if its key is already present in the lookup
// snapshot; unresolved and failed names never match a term.
func FilterOrders(orders []domain.Order, names map[string]string, statusFilter, term string) []domain.Order {
	statusKey := ""
	if statusFilter != "" {
		statusKey = domain.NormalizeStatus(statusFilter)
	}
	term = strings.ToLower(term)

	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if statusKey != "" && domain.NormalizeStatus(o.TaskStatus) != statusKey {
			continue
		}
		if term != "" && !matchesOrderTerm(o, names, term) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesOrderTerm(o domain.Order, names map[string]string, term string) bool {
	if containsFold(o.ReqUserID, term) || containsFold(o.OrderID, term) {
		return true
	}
	if name, ok := names[o.ReqUserID]; ok && containsFold(name, term) {
		return true
	}
	return false
}

// StatusCounts tallies orders per normalized status over the full,
// unfiltered collection. Every order lands in exactly one bucket, so the
// counts sum to len(orders).
func StatusCounts(orders []domain.Order) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[domain.NormalizeStatus(o.TaskStatus)]++
	}
	return counts
}

func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}
