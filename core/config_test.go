package core

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want 500", cfg.ChunkSize)
	}
	if cfg.Overlap != 150 {
		t.Errorf("Overlap = %d, want 150", cfg.Overlap)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}
	if cfg.SemanticWeight != 0.7 {
		t.Errorf("SemanticWeight = %v, want 0.7", cfg.SemanticWeight)
	}
	if cfg.LexicalWeight != 0.3 {
		t.Errorf("LexicalWeight = %v, want 0.3", cfg.LexicalWeight)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithChunkSize(800),
		WithOverlap(100),
		WithTopK(10),
		WithWeights(0.5, 0.5),
	)

	if cfg.ChunkSize != 800 || cfg.Overlap != 100 || cfg.TopK != 10 {
		t.Errorf("options not applied: %+v", cfg)
	}
	if cfg.SemanticWeight != 0.5 || cfg.LexicalWeight != 0.5 {
		t.Errorf("weight options not applied: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name:    "valid",
			cfg:     DefaultConfig(),
			wantErr: nil,
		},
		{
			name:    "zero chunk size",
			cfg:     NewConfig(WithChunkSize(0)),
			wantErr: ErrInvalidChunkSize,
		},
		{
			name:    "negative chunk size",
			cfg:     NewConfig(WithChunkSize(-10)),
			wantErr: ErrInvalidChunkSize,
		},
		{
			name:    "negative overlap",
			cfg:     NewConfig(WithOverlap(-1)),
			wantErr: ErrInvalidOverlap,
		},
		{
			name:    "overlap equal to chunk size",
			cfg:     NewConfig(WithChunkSize(100), WithOverlap(100)),
			wantErr: ErrInvalidOverlap,
		},
		{
			name:    "zero result count",
			cfg:     NewConfig(WithTopK(0)),
			wantErr: ErrInvalidResultCount,
		},
		{
			name:    "negative weight",
			cfg:     NewConfig(WithWeights(-0.1, 0.3)),
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "weights need not sum to one",
			cfg:     NewConfig(WithWeights(0.9, 0.9)),
			wantErr: nil,
		},
		{
			name:    "zero weights are allowed",
			cfg:     NewConfig(WithWeights(0, 0)),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
