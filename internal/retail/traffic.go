//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"math"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

const (
	// OnlineProbability is the chance an order is placed online.
	OnlineProbability = 0.35

	// TopStoreFraction of the physical stores get TopStoreShare of the
	// offline traffic.
	TopStoreFraction = 0.3
	TopStoreShare    = 0.7
)

// Assignment is the channel, store and employee of one order. Empty IDs
// mean no reference.
type Assignment struct {
	Channel    string
	StoreID    string
	EmployeeID string
}

// Traffic assigns orders to channels, stores and employees.
type Traffic struct {
	faker     *datagen.Faker
	online    []string
	offline   []string
	weights   *datagen.Weighted
	top       []string
	employees []string
}

// NewTraffic precomputes the store weighting. The physical stores are
// shuffled once and the first ceil(30%) become the top stores, sharing 70%
// of the offline traffic evenly; the rest share the remaining 30%.
func (g *Generator) NewTraffic(stores []Store, employees []Employee) *Traffic {
	t := &Traffic{faker: g.faker}
	for _, s := range stores {
		if s.IsOnline() {
			t.online = append(t.online, s.ID)
		} else {
			t.offline = append(t.offline, s.ID)
		}
	}
	for _, e := range employees {
		t.employees = append(t.employees, e.ID)
	}

	n := len(t.offline)
	if n == 0 {
		t.weights = datagen.NewWeighted(nil)
		return t
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	datagen.Shuffle(g.faker, order)

	k := max(1, int(math.Ceil(TopStoreFraction*float64(n))))
	rest := n - k
	weights := make([]float64, n)
	for rank, i := range order {
		if rank < k {
			weights[i] = TopStoreShare / float64(k)
			t.top = append(t.top, t.offline[i])
		} else {
			weights[i] = (1 - TopStoreShare) / float64(rest)
		}
	}
	t.weights = datagen.NewWeighted(weights)
	return t
}

// TopStores returns the stores that receive the bulk of offline traffic.
func (t *Traffic) TopStores() []string {
	return t.top
}

// Assign draws the channel, store and employee of one order.
//
// Online orders go to a uniformly chosen online store without an employee.
// When there are no online stores an online order is served like an
// offline one but keeps its channel.
func (t *Traffic) Assign() Assignment {
	a := Assignment{Channel: ChannelOffline}
	if t.faker.Probability(OnlineProbability) {
		a.Channel = ChannelOnline
	}

	if a.Channel == ChannelOnline && len(t.online) > 0 {
		a.StoreID = datagen.Choose(t.faker, t.online)
		return a
	}

	if i := t.weights.Pick(t.faker); i >= 0 {
		a.StoreID = t.offline[i]
	}
	a.EmployeeID = datagen.Choose(t.faker, t.employees)
	return a
}
