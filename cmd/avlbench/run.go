package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

type runConfig struct {
	count          int
	removeFraction float64
	seed           uint64
	wide           bool
}

func newRunCmd() *cobra.Command {
	var cfg runConfig
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Insert random keys, remove part of them and print statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.count <= 0 {
				return fmt.Errorf("count must be positive, got %d", cfg.count)
			}
			if cfg.removeFraction < 0 || cfg.removeFraction > 1 {
				return fmt.Errorf("remove fraction must be within [0, 1], got %v", cfg.removeFraction)
			}
			rnd := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))
			if cfg.wide {
				tree := avl.NewTree[uint128.Uint128, struct{}](func(a, b uint128.Uint128) int { return a.Cmp(b) })
				return runWorkload(&tree, cfg, func() uint128.Uint128 {
					return uint128.New(rnd.Uint64(), rnd.Uint64())
				})
			}
			tree := avl.NewOrderedTree[uint64, struct{}]()
			return runWorkload(&tree, cfg, rnd.Uint64)
		},
	}
	cmd.Flags().IntVarP(&cfg.count, "count", "n", defaultCount, "Amount of distinct keys to insert")
	cmd.Flags().Float64VarP(&cfg.removeFraction, "remove", "r", defaultRemoveFraction, "Share of inserted keys to remove")
	cmd.Flags().Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "Random seed")
	cmd.Flags().BoolVar(&cfg.wide, "wide", false, "Use 128-bit keys")
	return cmd
}

func runWorkload[K any](tree *avl.Tree[K, struct{}], cfg runConfig, nextKey func() K) error {
	rotations := &Rotations{}
	tree.SetHandler(rotations)

	log.Info().Int("count", cfg.count).Uint64("seed", cfg.seed).Bool("wide", cfg.wide).Msg("prepare input")
	keys := make([]K, 0, cfg.count)
	for len(keys) < cfg.count {
		key := nextKey()
		if _, err := tree.Add(key, struct{}{}); err != nil {
			log.Debug().Interface("key", key).Msg("duplicate key skipped")
			continue
		}
		keys = append(keys, key)
	}
	tree.Clear()
	rotations.Reset()

	start := time.Now()
	for _, key := range keys {
		tree.Insert(key, struct{}{})
	}
	inserted := time.Since(start)
	log.Info().
		Dur("elapsed", inserted).
		Float64("ops", float64(len(keys))/inserted.Seconds()).
		Int("size", tree.Size()).
		Int("height", tree.Height()).
		Float64("bound", heightBound(tree.Size())).
		Uint64("rotate_left", rotations.Left()).
		Uint64("rotate_right", rotations.Right()).
		Msg("insert finished")

	rotations.Reset()
	toRemove := keys[:int(float64(len(keys))*cfg.removeFraction)]
	start = time.Now()
	for _, key := range toRemove {
		if _, ok := tree.Remove(key); !ok {
			return fmt.Errorf("key %v vanished before removal", key)
		}
	}
	removed := time.Since(start)
	log.Info().
		Dur("elapsed", removed).
		Float64("ops", float64(len(toRemove))/removed.Seconds()).
		Int("size", tree.Size()).
		Int("height", tree.Height()).
		Float64("bound", heightBound(tree.Size())).
		Uint64("rotate_left", rotations.Left()).
		Uint64("rotate_right", rotations.Right()).
		Msg("remove finished")

	if float64(tree.Height()) > heightBound(tree.Size()) {
		return fmt.Errorf("height %d exceeds AVL bound %.2f", tree.Height(), heightBound(tree.Size()))
	}
	return tree.Validate()
}

func heightBound(size int) float64 {
	return avlHeightFactor * math.Log2(float64(size+2))
}
