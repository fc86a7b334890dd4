package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapdag/dataset"
	"github.com/katalvlaran/knapdag/generate"
)

// instanceFlags selects the instance a command works on: a dataset file or a
// random instance drawn with the bench ranges of the configuration.
type instanceFlags struct {
	file     string
	random   int
	capacity int
	seed     int64
	save     string
}

func (f *instanceFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "Instance file (YAML)")
	fl.IntVarP(&f.random, "random", "n", 10, "Number of random items when no file is given")
	fl.IntVar(&f.capacity, "capacity", 0, "Capacity of the random instance (default: drawn from the configured range)")
	fl.Int64Var(&f.seed, "seed", 0, "Seed of the random instance (default: config bench.seed)")
	fl.StringVar(&f.save, "save", "", "Write the instance to this file")
}

// load reads or generates the instance.
func (f *instanceFlags) load(cmd *cobra.Command, a *app) (*dataset.Instance, error) {
	var inst *dataset.Instance
	if f.file != "" {
		var err error
		if inst, err = dataset.Load(f.file); err != nil {
			return nil, err
		}
	} else {
		seed := a.cfg.Bench.Seed
		if cmd.Flags().Changed("seed") {
			seed = f.seed
		}
		b := a.cfg.Bench
		items, err := generate.Items(f.random, b.MinValue, b.MaxValue, generate.WithSeed(seed))
		if err != nil {
			return nil, err
		}
		if b.SortByRatio {
			items = generate.SortByRatio(items)
		}
		capacity := f.capacity
		if !cmd.Flags().Changed("capacity") {
			if capacity, err = generate.Capacity(b.MinCapacity, b.MaxCapacity, generate.WithSeed(generate.DeriveSeed(seed, 1))); err != nil {
				return nil, err
			}
		}
		inst = dataset.New(fmt.Sprintf("random-%d-%d", f.random, seed), items, capacity)
		if err = inst.Validate(); err != nil {
			return nil, err
		}
	}

	if f.save != "" {
		if err := dataset.Save(f.save, inst); err != nil {
			return nil, err
		}
		a.log.WithField("path", f.save).Info("instance saved")
	}

	a.log.WithFields(map[string]interface{}{
		"name":        inst.Name,
		"items":       len(inst.Items),
		"capacity":    inst.Capacity,
		"fingerprint": inst.Fingerprint(),
	}).Info("instance ready")

	return inst, nil
}
