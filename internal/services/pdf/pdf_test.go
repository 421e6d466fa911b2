package pdf

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"valid header", []byte("%PDF-1.7\n..."), true},
		{"exact magic", []byte("%PDF-"), true},
		{"too short", []byte("%PDF"), false},
		{"wrong magic", []byte("GIF89a"), false},
		{"empty", nil, false},
		{"leading junk", []byte(" %PDF-1.4"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.data); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestInspectRejectsGarbage(t *testing.T) {
	if _, err := Inspect([]byte("not a pdf at all")); err == nil {
		t.Fatal("Inspect accepted garbage input")
	}
}
