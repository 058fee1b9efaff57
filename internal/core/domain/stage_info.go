package domain

import "time"

// StageInfo is the cache record for one stage execution.
type StageInfo struct {
	StageName  string    `json:"stage_name,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
