package core

import "fmt"

// MaxStock is the most of any one resource the player can hold.
const MaxStock = 10

// Inventory holds a count in [0, MaxStock] for every resource kind.
// The zero value is an empty inventory.
type Inventory [ResourceCount]int

// StartingInventory returns the inventory every game begins with.
func StartingInventory() Inventory {
	var inv Inventory
	inv[Bread] = 2
	inv[Wood] = 2
	return inv
}

// Count returns how many of r are held.
func (inv Inventory) Count(r Resource) int {
	return inv[r]
}

// CanAdd reports whether n more of r fit under MaxStock.
func (inv Inventory) CanAdd(r Resource, n int) bool {
	return n >= 0 && inv[r]+n <= MaxStock
}

// CanRemove reports whether at least n of r are held.
func (inv Inventory) CanRemove(r Resource, n int) bool {
	return n >= 0 && inv[r] >= n
}

// Add increases r by n. It fails without changing anything if the count
// would exceed MaxStock.
func (inv *Inventory) Add(r Resource, n int) error {
	if !inv.CanAdd(r, n) {
		return fmt.Errorf("cannot add %d %s to %d: limit is %d", n, r, inv[r], MaxStock)
	}
	inv[r] += n
	return nil
}

// Remove decreases r by n. It fails without changing anything if fewer than
// n are held.
func (inv *Inventory) Remove(r Resource, n int) error {
	if !inv.CanRemove(r, n) {
		return fmt.Errorf("cannot remove %d %s from %d", n, r, inv[r])
	}
	inv[r] -= n
	return nil
}

// InStock returns the kinds with a positive count, in display order.
func (inv Inventory) InStock() []Resource {
	var stocked []Resource
	for _, r := range AllResources() {
		if inv[r] > 0 {
			stocked = append(stocked, r)
		}
	}
	return stocked
}

// Full reports whether r is at MaxStock.
func (inv Inventory) Full(r Resource) bool {
	return inv[r] >= MaxStock
}

// Valid reports whether every count is within [0, MaxStock].
func (inv Inventory) Valid() bool {
	for _, n := range inv {
		if n < 0 || n > MaxStock {
			return false
		}
	}
	return true
}

// Score is the sum of the squared counts.
func (inv Inventory) Score() int {
	score := 0
	for _, n := range inv {
		score += n * n
	}
	return score
}

// Map returns the inventory keyed by resource name.
func (inv Inventory) Map() map[string]int {
	m := make(map[string]int, ResourceCount)
	for _, r := range AllResources() {
		m[r.String()] = inv[r]
	}
	return m
}
