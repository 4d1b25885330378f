package regexdfa

// Hashable Key type of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap Chained hash table keyed by Hashable values. It is owned by a single construction call and is
// not safe for concurrent use.
type HashMap[T any] struct {
	buckets     []*Entry[T]
	size        int
	mask        uint64
	emptyValue  T
	loadFactory float64
}

// Entry One chained key/value pair.
type Entry[T any] struct {
	key   Hashable
	value T
	next  *Entry[T]
}

type optionsHashMap struct {
	capacity    int     // rounded up to a power of two
	loadFactory float64 // defaults to 0.75
}

func newOptionsHashMap(opts ...OptionsHashMap) *optionsHashMap {
	options := &optionsHashMap{
		capacity:    1,
		loadFactory: 0.75,
	}

	for _, opt := range opts {
		opt(options)
	}

	realCap := 1
	for realCap < options.capacity {
		realCap <<= 1
	}
	options.capacity = realCap

	return options
}

type OptionsHashMap func(hashMap *optionsHashMap)

func WithCapacity(capacity int) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.capacity = capacity
	}
}

// NewHashMap Creates a hash table. The capacity option is rounded up to a power of two.
func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := newOptionsHashMap(options...)

	return &HashMap[T]{
		buckets:     make([]*Entry[T], opt.capacity),
		mask:        uint64(opt.capacity - 1),
		loadFactory: opt.loadFactory,
	}
}

// Set Inserts or replaces the value for key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	hash := key.Hash()
	index := hash & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &Entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactory {
		m.resize()
	}
}

// Get Returns the value stored for key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	hash := key.Hash()
	index := hash & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*Entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			newIndex := e.key.Hash() & newMask
			newBuckets[newIndex] = &Entry[T]{
				key:   e.key,
				value: e.value,
				next:  newBuckets[newIndex],
			}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size Number of stored keys.
func (m *HashMap[T]) Size() int {
	return m.size
}
