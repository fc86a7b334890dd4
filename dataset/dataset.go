package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapdag/core"
)

var (
	// ErrDecode indicates a malformed YAML document.
	ErrDecode = errors.New("dataset: cannot decode instance")

	// ErrInconsistent indicates that the annotated optimum or selection does
	// not fit the instance.
	ErrInconsistent = errors.New("dataset: inconsistent annotation")
)

// Item is the YAML form of core.Item.
type Item struct {
	Value  int `yaml:"value"`
	Weight int `yaml:"weight"`
}

// Instance is one knapsack instance with optional known solution.
type Instance struct {
	Name      string `yaml:"name,omitempty"`
	Capacity  int    `yaml:"capacity"`
	Items     []Item `yaml:"items"`
	Optimum   *int   `yaml:"optimum,omitempty"`
	Selection []int  `yaml:"selection,omitempty,flow"`
}

// New wraps items and capacity into an Instance without annotations.
func New(name string, items core.Items, capacity int) *Instance {
	inst := &Instance{Name: name, Capacity: capacity, Items: make([]Item, len(items))}
	for i, it := range items {
		inst.Items[i] = Item{Value: it.Value, Weight: it.Weight}
	}

	return inst
}

// Load reads and validates the instance stored at path.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	inst, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Decode reads one YAML document and validates it.
func Decode(r io.Reader) (*Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var inst Instance
	if err := dec.Decode(&inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	return &inst, nil
}

// Encode writes inst as a YAML document.
func Encode(w io.Writer, inst *Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(inst); err != nil {
		return fmt.Errorf("dataset: encode: %w", err)
	}

	return enc.Close()
}

// Save writes inst to path, replacing any existing file.
func Save(path string, inst *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}
	if err = Encode(f, inst); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// CoreItems converts the item list.
func (inst *Instance) CoreItems() core.Items {
	items := make(core.Items, len(inst.Items))
	for i, it := range inst.Items {
		items[i] = core.Item{Value: it.Value, Weight: it.Weight}
	}

	return items
}

// KnownSelection returns the annotated selection, or nil when absent.
func (inst *Instance) KnownSelection() (core.Selection, error) {
	if inst.Selection == nil {
		return nil, nil
	}

	return core.SelectionFromBits(inst.Selection)
}

// Validate checks the instance and, when present, its annotations:
// the selection has one bit per item and fits the capacity, the optimum is
// non-negative, and a selection annotated together with an optimum sums to it.
//
// Complexity: O(N).
func (inst *Instance) Validate() error {
	items := inst.CoreItems()
	if err := core.Validate(items, inst.Capacity); err != nil {
		return fmt.Errorf("dataset %q: %w", inst.Name, err)
	}
	if inst.Optimum != nil && *inst.Optimum < 0 {
		return fmt.Errorf("%w: optimum %d is negative", ErrInconsistent, *inst.Optimum)
	}

	sel, err := inst.KnownSelection()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistent, err)
	}
	if sel == nil {
		return nil
	}
	if len(sel) != len(items) {
		return fmt.Errorf("%w: selection has %d bits for %d items", ErrInconsistent, len(sel), len(items))
	}
	if w := items.TotalWeight(sel); w > inst.Capacity {
		return fmt.Errorf("%w: selection weighs %d, capacity %d", ErrInconsistent, w, inst.Capacity)
	}
	if inst.Optimum != nil {
		if v := items.TotalValue(sel); v != *inst.Optimum {
			return fmt.Errorf("%w: selection is worth %d, optimum %d", ErrInconsistent, v, *inst.Optimum)
		}
	}

	return nil
}

// Fingerprint hashes capacity and items (xxhash64, hex). Name and
// annotations do not take part.
//
// Complexity: O(N).
func (inst *Instance) Fingerprint() string {
	buf := make([]byte, 0, 8*(2+2*len(inst.Items)))
	buf = binary.AppendVarint(buf, int64(inst.Capacity))
	buf = binary.AppendUvarint(buf, uint64(len(inst.Items)))
	for _, it := range inst.Items {
		buf = binary.AppendVarint(buf, int64(it.Value))
		buf = binary.AppendVarint(buf, int64(it.Weight))
	}

	return fmt.Sprintf("%016x", xxhash.Sum64(buf))
}
