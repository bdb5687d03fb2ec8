package main

import (
	"github.com/spf13/cobra"
	"github.com/viant/vecembed/vector"
)

// NormalizeResponse is the response for the normalize command.
type NormalizeResponse struct {
	Dimension int               `json:"dimension"`
	Values    *vector.Embedding `json:"values"`
}

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize VECTOR",
		Short: "Scale a vector to unit length",
		Long: `Scale a vector to unit length and print its components.

A zero vector cannot be normalized and exits with the data error code.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.readVector(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if _, err := e.Normalize(); err != nil {
				return err
			}
			if a.humanOutput() {
				data, err := e.MarshalJSON()
				if err != nil {
					return err
				}
				return outputHuman(cmd.OutOrStdout(), "%s\n", data)
			}
			return outputJSON(cmd.OutOrStdout(), NormalizeResponse{Dimension: e.Dimension(), Values: e})
		},
	}
}
