package cmd

import "testing"

func TestValidateAddr(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"port only", ":8080", false},
		{"localhost", "localhost:3400", false},
		{"ip", "127.0.0.1:9000", false},
		{"zero port auto-assign", ":0", false},
		{"missing port", "localhost", true},
		{"empty port", "localhost:", true},
		{"non-numeric port", "localhost:abc", true},
		{"port out of range", "localhost:70000", true},
		{"host with whitespace", "bad host:8080", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAddr(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAddr(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
		})
	}
}
