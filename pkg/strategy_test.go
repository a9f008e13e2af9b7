package dupmirror

import "testing"

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		code    string
		want    Strategy
		wantErr bool
	}{
		{"n", ByName, false},
		{"s", BySize, false},
		{"h", ByHash, false},
		{"z", nil, true},
		{"", nil, true},
		{"H", nil, true},
	}

	for _, tt := range tests {
		t.Run("code_"+tt.code, func(t *testing.T) {
			got, err := ParseStrategy(tt.code)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy(%q) failed: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %s, want %s", tt.code, got.Name(), tt.want.Name())
			}
			if got.Code() != tt.code {
				t.Errorf("Code() = %s, want %s", got.Code(), tt.code)
			}
		})
	}
}

func TestStrategyMatches(t *testing.T) {
	a := &FileRecord{dir: "/src", name: "x.txt", size: 100, digest: "aaa"}
	sameName := &FileRecord{dir: "/src/other", name: "x.txt", size: 5, digest: "bbb"}
	sameSize := &FileRecord{dir: "/src", name: "y.txt", size: 100, digest: "ccc"}
	sameHash := &FileRecord{dir: "/src/deep", name: "z.txt", size: 100, digest: "aaa"}

	tests := []struct {
		name      string
		strategy  Strategy
		candidate *FileRecord
		want      bool
	}{
		{"name match across dirs", ByName, sameName, true},
		{"name mismatch", ByName, sameSize, false},
		{"size match", BySize, sameSize, true},
		{"size mismatch", BySize, sameName, false},
		{"hash match", ByHash, sameHash, true},
		{"hash mismatch", ByHash, sameSize, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.strategy.Matches(tt.candidate, a); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
			keyEqual := tt.strategy.Key(tt.candidate) == tt.strategy.Key(a)
			if keyEqual != tt.want {
				t.Errorf("Key equality %v disagrees with Matches %v", keyEqual, tt.want)
			}
		})
	}
}
