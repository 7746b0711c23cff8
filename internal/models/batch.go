package models

// BatchItem is the outcome of processing one input inside a batch.
// Either Result or Error is set, never both.
type BatchItem struct {
	SourceFilename string        `json:"source_filename"`
	Result         *ResizeResult `json:"result,omitempty"`
	Error          string        `json:"error,omitempty"`
}

type BatchResponse struct {
	Items     []BatchItem `json:"items"`
	Processed int         `json:"processed"`
	Failed    int         `json:"failed"`
}
