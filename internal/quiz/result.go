package quiz

import "time"

// GenerationResult is the uniform outcome of one generation run.
// Exactly one of Quiz or Error is populated, matching Success.
type GenerationResult struct {
	Success bool   `json:"success"`
	Quiz    *Quiz  `json:"quiz,omitempty"`
	Error   string `json:"error,omitempty"`

	// Elapsed is the end-to-end wall-clock time for the run.
	Elapsed time.Duration `json:"-"`

	// ElapsedSeconds mirrors Elapsed for serialization.
	ElapsedSeconds float64 `json:"processing_time"`

	// SourceInfo carries provenance from the reader: source type, title,
	// origin and similar identifying metadata.
	SourceInfo map[string]string `json:"source_info,omitempty"`
}

// Failure builds a failed result with the given error message.
func Failure(err string, elapsed time.Duration, info map[string]string) GenerationResult {
	return GenerationResult{
		Error:          err,
		Elapsed:        elapsed,
		ElapsedSeconds: elapsed.Seconds(),
		SourceInfo:     info,
	}
}

// Successful builds a successful result wrapping the given quiz.
func Successful(q *Quiz, elapsed time.Duration, info map[string]string) GenerationResult {
	return GenerationResult{
		Success:        true,
		Quiz:           q,
		Elapsed:        elapsed,
		ElapsedSeconds: elapsed.Seconds(),
		SourceInfo:     info,
	}
}
