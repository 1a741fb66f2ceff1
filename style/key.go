package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "sync"

// Key is an interned style property name. The zero Key is invalid.
type Key uint32

// symbols is the process-wide interning table. Slot 0 is reserved.
var symbols = struct {
	sync.RWMutex
	names []string
	ids   map[string]Key
}{
	names: []string{""},
	ids:   map[string]Key{},
}

// Intern returns the key for name, allocating a new slot if name is not
// yet known.
func Intern(name string) Key {
	symbols.RLock()
	k, ok := symbols.ids[name]
	symbols.RUnlock()
	if ok {
		return k
	}
	symbols.Lock()
	defer symbols.Unlock()
	if k, ok = symbols.ids[name]; ok {
		return k
	}
	k = Key(len(symbols.names))
	symbols.names = append(symbols.names, name)
	symbols.ids[name] = k
	tracer().Debugf("interned style key %q as #%d", name, k)
	return k
}

// Lookup finds the key for name without interning it.
func Lookup(name string) (Key, bool) {
	symbols.RLock()
	defer symbols.RUnlock()
	k, ok := symbols.ids[name]
	return k, ok
}

// Name returns the property name k was interned from.
func (k Key) Name() string {
	symbols.RLock()
	defer symbols.RUnlock()
	if int(k) < len(symbols.names) {
		return symbols.names[k]
	}
	return ""
}

// IsValid is false for the zero key.
func (k Key) IsValid() bool {
	return k != 0
}

func (k Key) String() string {
	return k.Name()
}

// --- Key sets ---------------------------------------------------------

// KeySet is a set of keys, e.g. the keys a cascade pass already assigned.
type KeySet map[Key]struct{}

// Add puts keys into the set.
func (ks KeySet) Add(keys ...Key) {
	for _, k := range keys {
		ks[k] = struct{}{}
	}
}

// Has is a predicate for set membership.
func (ks KeySet) Has(k Key) bool {
	_, ok := ks[k]
	return ok
}

// Clear removes all keys, keeping the allocated map.
func (ks KeySet) Clear() {
	for k := range ks {
		delete(ks, k)
	}
}
