package run

import (
	"namestat/domain/core"
)

// Record captures one execution of the analysis pipeline for the run ledger
type Record struct {
	ID          core.RunID     `json:"id"`
	InputFile   string         `json:"input_file"`
	TotalNames  int            `json:"total_names"`
	UniqueNames int            `json:"unique_names"`
	MeanLength  float64        `json:"mean_length"`
	Artifacts   []string       `json:"artifacts"`
	CreatedAt   core.Timestamp `json:"created_at"`
}
