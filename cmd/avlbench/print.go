package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

func newPrintCmd() *cobra.Command {
	var remove []int
	cmd := &cobra.Command{
		Use:   "print KEY...",
		Short: "Insert given integer keys and draw the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := avl.NewOrderedTree[int, struct{}]()
			for _, arg := range args {
				key, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid key %q: %w", arg, err)
				}
				tree.Insert(key, struct{}{})
			}
			for _, key := range remove {
				if _, ok := tree.Remove(key); !ok {
					log.Warn().Int("key", key).Msg("key to remove is absent")
				}
			}
			levels := tree.Fprint(os.Stdout)
			log.Info().Int("size", tree.Size()).Int("levels", levels).Bool("equal_paths", tree.EqualPaths()).Msg("tree printed")
			return tree.Validate()
		},
	}
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "Keys to remove after inserting")
	return cmd
}
