package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/hashmap"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

type verifyConfig struct {
	rounds     int
	keySpace   int
	checkEvery int
	seed       uint64
}

func newVerifyCmd() *cobra.Command {
	var cfg verifyConfig
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Replay random inserts and removals against a hash map and validate the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.keySpace <= 0 || cfg.checkEvery <= 0 {
				return fmt.Errorf("key space and check interval must be positive")
			}
			return verify(cfg)
		},
	}
	cmd.Flags().IntVarP(&cfg.rounds, "rounds", "n", defaultRounds, "Amount of random operations")
	cmd.Flags().IntVar(&cfg.keySpace, "keys", defaultKeySpace, "Amount of distinct keys to draw from")
	cmd.Flags().IntVar(&cfg.checkEvery, "check-every", defaultCheckEvery, "Validate the whole tree every N operations")
	cmd.Flags().Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "Random seed")
	return cmd
}

func verify(cfg verifyConfig) error {
	rnd := rand.New(rand.NewPCG(cfg.seed, cfg.seed>>1))
	tree := avl.NewOrderedTree[int, int]()
	shadow := hashmap.New[int, int](cfg.keySpace)

	log.Info().Int("rounds", cfg.rounds).Int("keys", cfg.keySpace).Uint64("seed", cfg.seed).Msg("verify started")
	for i := 0; i < cfg.rounds; i++ {
		key := rnd.IntN(cfg.keySpace)
		if rnd.IntN(3) == 0 {
			_, want := shadow.Delete(key)
			if _, got := tree.Remove(key); got != want {
				return fmt.Errorf("round %d: remove(%d) reported %v, want %v", i, key, got, want)
			}
		} else {
			shadow.Set(key, i)
			tree.Insert(key, i)
		}
		if tree.Size() != shadow.Len() {
			return fmt.Errorf("round %d: size %d, want %d", i, tree.Size(), shadow.Len())
		}
		if (i+1)%cfg.checkEvery == 0 {
			if err := tree.Validate(); err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			log.Debug().Int("round", i+1).Int("size", tree.Size()).Int("height", tree.Height()).Msg("tree validated")
		}
	}

	var mismatch error
	shadow.Scan(func(key, value int) bool {
		if got, ok := tree.Get(key); !ok || got != value {
			mismatch = fmt.Errorf("key %d: got %d (present=%v), want %d", key, got, ok, value)
			return false
		}
		return true
	})
	if mismatch != nil {
		return mismatch
	}
	if err := tree.Validate(); err != nil {
		return err
	}
	log.Info().Int("size", tree.Size()).Int("height", tree.Height()).Msg("verify passed")
	return nil
}
