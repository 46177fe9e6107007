package services

import (
	"fmt"
	"math"
	"sort"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/pkg/errs"
)

// Candidate is an order eligible for the next delivery plan, reduced to the
// two dimensions the planner works with: weight (knapsack size) and value.
type Candidate struct {
	OrderID kernel.UUID
	Weight  int
	Value   int
}

// Selection is the outcome of planning: the chosen order IDs in ascending
// ID order, plus their weight and value totals. An empty selection is a
// valid outcome, not an error.
type Selection struct {
	OrderIDs    []kernel.UUID
	TotalWeight int
	TotalValue  int
}

// Contains reports whether the selection includes the given order ID.
func (s Selection) Contains(id kernel.UUID) bool {
	for _, selected := range s.OrderIDs {
		if selected.IsEqual(id) {
			return true
		}
	}
	return false
}

// DeliveryPlanner is a domain service that solves the 0-1 knapsack problem
// over eligible orders: choose the subset of candidates whose total weight
// fits the capacity and whose total value is maximal.
//
// The planner is exact and deterministic. Candidates are scanned in
// ascending order-ID order and the dynamic program only records strict
// value improvements, so when several subsets reach the same maximum value
// the reconstruction always lands on the one favoring earlier candidates.
// Identical inputs therefore always produce the identical selection.
//
// Business rules:
//   - capacity 0 or no candidates yields an empty selection
//   - a candidate heavier than the whole capacity is simply never selected
//   - a negative capacity is a validation error
//
// Example usage:
//
//	planner := NewDeliveryPlanner()
//	selection, err := planner.Plan(70, candidates)
//	if err != nil {
//	    // invalid capacity or malformed candidate
//	    return err
//	}
//	for _, id := range selection.OrderIDs {
//	    // commit id into the plan
//	}
type DeliveryPlanner struct{}

// NewDeliveryPlanner creates a new DeliveryPlanner instance.
func NewDeliveryPlanner() DeliveryPlanner {
	return DeliveryPlanner{}
}

// Plan computes the value-maximizing subset of candidates whose total
// weight does not exceed capacity.
//
// Runs the textbook O(n·capacity) dynamic program over weight buckets with
// full-table reconstruction of the chosen subset. Capacity must be
// non-negative and every candidate must carry a valid ID and positive
// weight and value; violations yield a validation error before any
// computation.
func (DeliveryPlanner) Plan(capacity int, candidates []Candidate) (Selection, error) {
	if capacity < 0 {
		return Selection{}, errs.NewValueIsOutOfRangeError("capacity", capacity, 0, math.MaxInt)
	}

	for _, c := range candidates {
		if err := c.OrderID.Validate(); err != nil {
			return Selection{}, err
		}
		if c.Weight <= 0 {
			return Selection{}, errs.NewValueIsInvalidErrorWithCause(
				"candidate weight", fmt.Errorf("%d is not greater than 0", c.Weight))
		}
		if c.Value <= 0 {
			return Selection{}, errs.NewValueIsInvalidErrorWithCause(
				"candidate value", fmt.Errorf("%d is not greater than 0", c.Value))
		}
	}

	empty := Selection{OrderIDs: []kernel.UUID{}}
	if capacity == 0 || len(candidates) == 0 {
		return empty, nil
	}

	// Canonical scan order: ascending order ID. This fixes the tie-break.
	items := make([]Candidate, len(candidates))
	copy(items, candidates)
	sort.Slice(items, func(i, j int) bool {
		return items[i].OrderID.Less(items[j].OrderID)
	})

	n := len(items)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, capacity+1)
	}

	for i := 1; i <= n; i++ {
		item := items[i-1]
		for w := 0; w <= capacity; w++ {
			dp[i][w] = dp[i-1][w]
			if item.Weight <= w && dp[i-1][w-item.Weight]+item.Value > dp[i][w] {
				dp[i][w] = dp[i-1][w-item.Weight] + item.Value
			}
		}
	}

	// Reconstruct the subset. An item is included only where the value
	// strictly improved, which on ties keeps the subset favoring earlier
	// candidates.
	selection := empty
	w := capacity
	for i := n; i > 0; i-- {
		if dp[i][w] == dp[i-1][w] {
			continue
		}
		item := items[i-1]
		selection.OrderIDs = append(selection.OrderIDs, item.OrderID)
		selection.TotalWeight += item.Weight
		selection.TotalValue += item.Value
		w -= item.Weight
	}

	// Reconstruction walks backwards; restore ascending ID order.
	for i, j := 0, len(selection.OrderIDs)-1; i < j; i, j = i+1, j-1 {
		selection.OrderIDs[i], selection.OrderIDs[j] = selection.OrderIDs[j], selection.OrderIDs[i]
	}

	return selection, nil
}
