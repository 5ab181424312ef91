package segment

import "apo-analyzer/feature/remnant/models"

// Buckets maps site addresses to their buckets and remembers the order in
// which sites were first seen.
type Buckets struct {
	order  []string
	byAddr map[string]*models.SiteBucket
}

// NewBuckets creates an empty bucket map.
func NewBuckets() *Buckets {
	return &Buckets{byAddr: make(map[string]*models.SiteBucket)}
}

// Ensure returns the bucket for address, creating it if needed. The display
// name falls back to the address when sites has no entry for it.
func (b *Buckets) Ensure(address string, sites map[string]string) *models.SiteBucket {
	if bucket, ok := b.byAddr[address]; ok {
		return bucket
	}
	name, ok := sites[address]
	if !ok {
		name = address
	}
	bucket := &models.SiteBucket{Address: address, Name: name}
	b.byAddr[address] = bucket
	b.order = append(b.order, address)
	return bucket
}

// Get returns the bucket for address.
func (b *Buckets) Get(address string) (*models.SiteBucket, bool) {
	bucket, ok := b.byAddr[address]
	return bucket, ok
}

// Len returns the number of sites.
func (b *Buckets) Len() int {
	return len(b.order)
}

// Addresses returns site addresses in first-seen order.
func (b *Buckets) Addresses() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// All returns the buckets in first-seen order.
func (b *Buckets) All() []*models.SiteBucket {
	out := make([]*models.SiteBucket, 0, len(b.order))
	for _, addr := range b.order {
		out = append(out, b.byAddr[addr])
	}
	return out
}
