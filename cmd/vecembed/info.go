package main

import (
	"github.com/spf13/cobra"
	"github.com/viant/vecembed/vector"
)

// InfoResponse describes the compiled limits and active configuration.
type InfoResponse struct {
	MaxDimension  int    `json:"max_dimension"`
	EmbeddingSize int    `json:"embedding_size_bytes"`
	Width         int    `json:"width"`
	DatabasePath  string `json:"database_path"`
	Version       string `json:"version"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the maximum dimension and per-embedding memory size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var probe vector.Embedding
			resp := InfoResponse{
				MaxDimension:  vector.MaxDimension,
				EmbeddingSize: probe.MemSize(),
				Width:         a.cfg.Width,
				DatabasePath:  a.cfg.DatabasePath,
				Version:       Version,
			}
			if a.humanOutput() {
				return outputHuman(cmd.OutOrStdout(),
					"max dimension:  %d\nembedding size: %d bytes\nwidth:          %d\ndatabase:       %s\nversion:        %s\n",
					resp.MaxDimension, resp.EmbeddingSize, resp.Width, resp.DatabasePath, resp.Version)
			}
			return outputJSON(cmd.OutOrStdout(), resp)
		},
	}
}
