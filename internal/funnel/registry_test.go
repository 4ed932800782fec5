package funnel

import (
	"testing"
)

func TestNewRegistryLoadsEmbeddedConfig(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	defs := r.List()
	if len(defs) == 0 {
		t.Fatal("expected at least one funnel definition")
	}

	// File order must be preserved
	if defs[0].Name != "acquisition" {
		t.Errorf("first funnel = %q, want %q", defs[0].Name, "acquisition")
	}
}

func TestRegistryGet(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	def, err := r.Get("acquisition")
	if err != nil {
		t.Fatalf("Get(acquisition) error: %v", err)
	}
	if len(def.Stages) != 6 {
		t.Errorf("acquisition has %d stages, want 6", len(def.Stages))
	}

	if _, err := r.Get("nonexistent"); err == nil {
		t.Error("Get(nonexistent) should fail")
	}
}

func TestValidStage(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	tests := []struct {
		name   string
		funnel string
		stage  string
		want   bool
	}{
		{"valid stage", "acquisition", "qualified", true},
		{"first stage", "acquisition", "new", true},
		{"stage from other funnel", "acquisition", "registered", false},
		{"unknown stage", "acquisition", "bogus", false},
		{"unknown funnel", "bogus", "new", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ValidStage(tt.funnel, tt.stage); got != tt.want {
				t.Errorf("ValidStage(%q, %q) = %v, want %v", tt.funnel, tt.stage, got, tt.want)
			}
		})
	}
}

func TestStageIndex(t *testing.T) {
	def := &Definition{
		Name: "test",
		Stages: []Stage{
			{ID: "a"}, {ID: "b"}, {ID: "c"},
		},
	}

	if got := def.StageIndex("b"); got != 1 {
		t.Errorf("StageIndex(b) = %d, want 1", got)
	}
	if got := def.StageIndex("missing"); got != -1 {
		t.Errorf("StageIndex(missing) = %d, want -1", got)
	}
}
