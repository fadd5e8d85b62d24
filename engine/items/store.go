package items

import "github.com/brackfield/beltworks/engine/core"

// chunkCoord identifies a bucket of the spatial index: floor(p / bucketSize).
type chunkCoord struct {
	X, Y int
}

func toChunk(v, bucketSize float64) int {
	f := v / bucketSize
	if f >= 0 {
		return int(f)
	}
	i := int(f)
	if float64(i) != f {
		i--
	}
	return i
}

// Store holds every live drop item in a generational set plus a
// chunk-bucketed spatial index over their positions, so hit tests only
// enumerate items whose bucket can possibly overlap the query box
// (spec.md §4.3). The invariant maintained throughout is: the union of
// index buckets equals the set of live items, each exactly once.
type Store struct {
	items      *core.GenSet[DropItem]
	buckets    map[chunkCoord][]core.Id
	bucketSize float64
}

// NewStore returns an empty store bucketing the index at bucketSize
// pixels (spec.md uses CHUNK_SIZE * TILE_SIZE).
func NewStore(bucketSize float64) *Store {
	return &Store{
		items:      core.NewGenSet[DropItem](),
		buckets:    make(map[chunkCoord][]core.Id),
		bucketSize: bucketSize,
	}
}

func (s *Store) bucketOf(x, y float64) chunkCoord {
	return chunkCoord{X: toChunk(x, s.bucketSize), Y: toChunk(y, s.bucketSize)}
}

// Add inserts a new drop item and indexes it.
func (s *Store) Add(item DropItem) core.Id {
	id := s.items.Add(item)
	b := s.bucketOf(item.X, item.Y)
	s.buckets[b] = append(s.buckets[b], id)
	return id
}

// Remove deletes the item at id from both the set and the index.
func (s *Store) Remove(id core.Id) (DropItem, bool) {
	item, ok := s.items.Get(id)
	if !ok {
		return DropItem{}, false
	}
	value := *item
	b := s.bucketOf(value.X, value.Y)
	s.removeFromBucket(b, id)
	s.items.Remove(id)
	return value, true
}

func (s *Store) removeFromBucket(b chunkCoord, id core.Id) {
	bucket := s.buckets[b]
	for i, bid := range bucket {
		if bid == id {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket = bucket[:last]
			break
		}
	}
	if len(bucket) == 0 {
		delete(s.buckets, b)
	} else {
		s.buckets[b] = bucket
	}
}

// Get returns a pointer to the item at id, if live.
func (s *Store) Get(id core.Id) (*DropItem, bool) {
	return s.items.Get(id)
}

// Move updates an item's position, re-bucketing it in the spatial index
// only when the new position falls in a different bucket.
func (s *Store) Move(id core.Id, x, y float64) bool {
	item, ok := s.items.Get(id)
	if !ok {
		return false
	}
	oldB := s.bucketOf(item.X, item.Y)
	newB := s.bucketOf(x, y)
	item.X, item.Y = x, y
	if oldB != newB {
		s.removeFromBucket(oldB, id)
		s.buckets[newB] = append(s.buckets[newB], id)
	}
	return true
}

// Len returns the number of live items.
func (s *Store) Len() int {
	return s.items.Len()
}

// Each iterates every live item in ascending id order.
func (s *Store) Each(fn func(core.Id, *DropItem)) {
	s.items.Each(fn)
}

// HitCheck reports whether any item other than ignore overlaps (x,y),
// scanning every live item (the brute-force reference implementation
// used to validate HitCheckIndexed in tests).
func (s *Store) HitCheck(x, y float64, ignore *core.Id) bool {
	hit := false
	s.items.Each(func(id core.Id, item *DropItem) {
		if hit || (ignore != nil && id == *ignore) {
			return
		}
		if Overlaps(x, y, item.X, item.Y) {
			hit = true
		}
	})
	return hit
}

// HitCheckIndexed reports the same result as HitCheck but only visits
// items in buckets that can intersect [x-Size, x+Size] x [y-Size, y+Size].
func (s *Store) HitCheckIndexed(x, y float64, ignore *core.Id) bool {
	minB := s.bucketOf(x-Size, y-Size)
	maxB := s.bucketOf(x+Size, y+Size)
	for by := minB.Y; by <= maxB.Y; by++ {
		for bx := minB.X; bx <= maxB.X; bx++ {
			for _, id := range s.buckets[chunkCoord{X: bx, Y: by}] {
				if ignore != nil && id == *ignore {
					continue
				}
				item, ok := s.items.Get(id)
				if !ok {
					continue
				}
				if Overlaps(x, y, item.X, item.Y) {
					return true
				}
			}
		}
	}
	return false
}
