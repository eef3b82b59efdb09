package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	M float64 `json:"m,omitempty"` // Move
	J bool    `json:"j,omitempty"` // Jump
	X bool    `json:"x,omitempty"` // Fire
	R bool    `json:"r,omitempty"` // Retry
}

// ReplayData contains all data needed to replay a level run
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	TPS       int          `json:"tps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
