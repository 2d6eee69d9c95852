package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInvalidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate BASE...",
		Short: "Drop cached cluster results of questions",
		Long: `Drop every cached clustering result (all modes, global and per group)
of the given questions. Useful with the redis cache backend after the
answers of a question changed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closer, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()

			for _, base := range args {
				n, err := e.Invalidate(cmd.Context(), base)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s\t%d\n", base, n)
			}

			return nil
		},
	}
}
