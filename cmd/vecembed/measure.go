package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DimensionResponse is the response for the dim command.
type DimensionResponse struct {
	Dimension int `json:"dimension"`
}

// MagnitudeResponse is the response for the magnitude command.
type MagnitudeResponse struct {
	Dimension int     `json:"dimension"`
	Magnitude float64 `json:"magnitude"`
}

// SimilarityResponse is the response for the cosine command.
type SimilarityResponse struct {
	Dimension  int     `json:"dimension"`
	Similarity float64 `json:"similarity"`
}

// DistanceResponse is the response for the distance command.
type DistanceResponse struct {
	Dimension int     `json:"dimension"`
	Distance  float64 `json:"distance"`
}

func newDimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dim VECTOR",
		Short: "Print the dimension of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.readVector(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if a.humanOutput() {
				return outputHuman(cmd.OutOrStdout(), "%d\n", e.Dimension())
			}
			return outputJSON(cmd.OutOrStdout(), DimensionResponse{Dimension: e.Dimension()})
		},
	}
}

func newMagnitudeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "magnitude VECTOR",
		Short: "Print the L2 norm of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.readVector(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			mag := e.Magnitude()
			if a.humanOutput() {
				return outputHuman(cmd.OutOrStdout(), "%g\n", mag)
			}
			return outputJSON(cmd.OutOrStdout(), MagnitudeResponse{Dimension: e.Dimension(), Magnitude: mag})
		},
	}
}

func newCosineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cosine VECTOR VECTOR",
		Short: "Print the cosine similarity of two vectors",
		Long: `Print the cosine similarity of two vectors of equal dimension.

The result lies in [-1, 1]. A zero vector on either side yields 0.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := a.readVectors(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			sim, err := vs[0].CosineSimilarity(vs[1])
			if err != nil {
				return err
			}
			a.logger.Debug("cosine similarity", zap.Int("dimension", vs[0].Dimension()), zap.Float64("similarity", sim))
			if a.humanOutput() {
				return outputHuman(cmd.OutOrStdout(), "%g\n", sim)
			}
			return outputJSON(cmd.OutOrStdout(), SimilarityResponse{Dimension: vs[0].Dimension(), Similarity: sim})
		},
	}
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance VECTOR VECTOR",
		Short: "Print the Euclidean distance between two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := a.readVectors(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			d, err := vs[0].L2Distance(vs[1])
			if err != nil {
				return err
			}
			if a.humanOutput() {
				return outputHuman(cmd.OutOrStdout(), "%g\n", d)
			}
			return outputJSON(cmd.OutOrStdout(), DistanceResponse{Dimension: vs[0].Dimension(), Distance: d})
		},
	}
}
