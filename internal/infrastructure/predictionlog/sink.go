// Package predictionlog implements the append-only prediction log as a
// dedicated sink. The sink owns its error channel: callers log and
// drop failed appends, they never fail a prediction over one.
package predictionlog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/alchemorsel/kalorye/internal/domain/prediction"
	"github.com/alchemorsel/kalorye/internal/ports/outbound"
)

// JSONLSink appends one JSON object per line to a local file. Appends
// are serialized by a mutex so concurrent predictions cannot interleave
// partial lines.
type JSONLSink struct {
	mu   sync.Mutex
	file *os.File
}

// NewJSONLSink opens (or creates) the log file in append mode.
func NewJSONLSink(path string) (*JSONLSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open prediction log: %w", err)
	}
	return &JSONLSink{file: f}, nil
}

// Record appends one record as a JSON line.
func (s *JSONLSink) Record(rec prediction.Record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode prediction record: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.Write(line); err != nil {
		return fmt.Errorf("failed to append prediction record: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// NopSink discards every record. Used when the prediction log is
// disabled or failed to open.
type NopSink struct{}

func (NopSink) Record(prediction.Record) error { return nil }
func (NopSink) Close() error                   { return nil }

var (
	_ outbound.PredictionSink = (*JSONLSink)(nil)
	_ outbound.PredictionSink = NopSink{}
)
