package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.Storage.Driver != StorageMemory {
		t.Errorf("driver: got %q", cfg.Storage.Driver)
	}
	if cfg.Search.Limit != 10 {
		t.Errorf("search limit: got %d", cfg.Search.Limit)
	}
	if cfg.Search.Debounce != 300*time.Millisecond {
		t.Errorf("debounce: got %v", cfg.Search.Debounce)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl: got %v", cfg.TokenTTL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory ok", Config{Storage: StorageConfig{Driver: StorageMemory}, Search: SearchConfig{Limit: 10}}, false},
		{"mongo ok", Config{Storage: StorageConfig{Driver: StorageMongo}, Search: SearchConfig{Limit: 5}}, false},
		{"unknown driver", Config{Storage: StorageConfig{Driver: "sqlite"}, Search: SearchConfig{Limit: 10}}, true},
		{"production without secret", Config{Env: "production", Storage: StorageConfig{Driver: StorageMemory}, Search: SearchConfig{Limit: 10}}, true},
		{"zero limit", Config{Storage: StorageConfig{Driver: StorageMemory}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
