package registry

import (
	"fmt"
	"sync"

	"github.com/henderiw/rangelist/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

// Registry holds named range sets, each carrying a label set. All access
// is serialized by the registry, so it can be shared between goroutines
// while the sets it holds cannot.
type Registry interface {
	Create(name string, l labels.Set, opts ...rangeset.Option) error
	Delete(name string) error

	InsertValue(name string, v int64) error
	Insert(name string, r rangeset.Range[int64]) error

	Get(name string) ([]rangeset.Range[int64], error)
	String(name string) (string, error)
	Labels(name string) (labels.Set, error)

	Count() int
	Has(name string) bool

	GetAll() map[string][]rangeset.Range[int64]
	GetByLabel(selector labels.Selector) map[string][]rangeset.Range[int64]
}

func New() Registry {
	return &registry{
		m:       new(sync.RWMutex),
		entries: map[string]*entry{},
	}
}

type registry struct {
	m       *sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	labels labels.Set
	set    *rangeset.Set[int64]
}

func (r *registry) Create(name string, l labels.Set, opts ...rangeset.Option) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("set %s already exists", name)
	}
	r.entries[name] = &entry{
		labels: labels.Merge(labels.Set{}, l),
		set:    rangeset.New[int64](opts...),
	}
	return nil
}

func (r *registry) Delete(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("set %s not found", name)
	}
	delete(r.entries, name)
	return nil
}

func (r *registry) InsertValue(name string, v int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, err := r.get(name)
	if err != nil {
		return err
	}
	e.set.InsertValue(v)
	return nil
}

func (r *registry) Insert(name string, rng rangeset.Range[int64]) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, err := r.get(name)
	if err != nil {
		return err
	}
	e.set.Insert(rng)
	return nil
}

func (r *registry) Get(name string) ([]rangeset.Range[int64], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, err := r.get(name)
	if err != nil {
		return nil, err
	}
	return e.set.Ranges(), nil
}

func (r *registry) String(name string) (string, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, err := r.get(name)
	if err != nil {
		return "", err
	}
	return e.set.String(), nil
}

func (r *registry) Labels(name string) (labels.Set, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, err := r.get(name)
	if err != nil {
		return nil, err
	}
	return labels.Merge(labels.Set{}, e.labels), nil
}

func (r *registry) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *registry) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[name]
	return ok
}

func (r *registry) GetAll() map[string][]rangeset.Range[int64] {
	return r.GetByLabel(labels.Everything())
}

func (r *registry) GetByLabel(selector labels.Selector) map[string][]rangeset.Range[int64] {
	r.m.RLock()
	defer r.m.RUnlock()

	sets := map[string][]rangeset.Range[int64]{}
	for name, e := range r.entries {
		if selector.Matches(e.labels) {
			sets[name] = e.set.Ranges()
		}
	}
	return sets
}

func (r *registry) get(name string) (*entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("set %s not found", name)
	}
	return e, nil
}
