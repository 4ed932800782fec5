package service

import (
	"testing"
	"time"

	"traction/internal/domain/models"
	"traction/internal/funnel"
)

func TestSortCampaigns(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	campaigns := []models.Campaign{
		{Name: "Beta", Budget: 100, Spent: 90, CreatedAt: base},
		{Name: "Alpha", Budget: 300, Spent: 10, CreatedAt: base.Add(time.Hour)},
		{Name: "Gamma", Budget: 200, Spent: 50, CreatedAt: base.Add(2 * time.Hour)},
	}

	tests := []struct {
		sortBy    string
		wantFirst string
	}{
		{"name", "Alpha"},
		{"budget", "Alpha"},
		{"spent", "Beta"},
		{"", "Gamma"},        // newest first
		{"bogus", "Gamma"},   // unknown key falls back to creation time
	}

	for _, tt := range tests {
		t.Run("sort_by_"+tt.sortBy, func(t *testing.T) {
			got := SortCampaigns(campaigns, tt.sortBy)
			if got[0].Name != tt.wantFirst {
				t.Errorf("first campaign = %q, want %q", got[0].Name, tt.wantFirst)
			}
		})
	}

	// Input order must survive sorting
	if campaigns[0].Name != "Beta" {
		t.Error("SortCampaigns mutated its input")
	}
}

func TestFilterCampaignsByStatus(t *testing.T) {
	campaigns := []models.Campaign{
		{Name: "A", Status: models.CampaignStatusActive},
		{Name: "B", Status: models.CampaignStatusDraft},
		{Name: "C", Status: models.CampaignStatusActive},
	}

	active := FilterCampaignsByStatus(campaigns, models.CampaignStatusActive)
	if len(active) != 2 {
		t.Errorf("active campaigns = %d, want 2", len(active))
	}

	all := FilterCampaignsByStatus(campaigns, "")
	if len(all) != 3 {
		t.Errorf("empty status kept %d campaigns, want all 3", len(all))
	}

	none := FilterCampaignsByStatus(campaigns, models.CampaignStatusCompleted)
	if len(none) != 0 {
		t.Errorf("completed campaigns = %d, want 0", len(none))
	}
}

func acquisitionDef() *funnel.Definition {
	return &funnel.Definition{
		Name: "acquisition",
		Stages: []funnel.Stage{
			{ID: "new"},
			{ID: "contacted"},
			{ID: "qualified"},
			{ID: "won"},
		},
	}
}

func TestComputeFunnelSummary(t *testing.T) {
	leads := []models.Lead{
		{Funnel: "acquisition", Stage: "new", Value: 100},
		{Funnel: "acquisition", Stage: "new", Value: 200},
		{Funnel: "acquisition", Stage: "new", Value: 300},
		{Funnel: "acquisition", Stage: "new", Value: 400},
		{Funnel: "acquisition", Stage: "contacted", Value: 500},
		{Funnel: "acquisition", Stage: "contacted", Value: 100},
		{Funnel: "acquisition", Stage: "qualified", Value: 900},
		{Funnel: "webinar", Stage: "registered"},       // other funnel, ignored
		{Funnel: "acquisition", Stage: "nonsense"},     // unknown stage, ignored
	}

	summary := ComputeFunnelSummary(acquisitionDef(), leads)

	if summary.TotalLeads != 7 {
		t.Errorf("total leads = %d, want 7", summary.TotalLeads)
	}
	if len(summary.Stages) != 4 {
		t.Fatalf("stages = %d, want all 4 from the definition", len(summary.Stages))
	}

	wantCounts := []int{4, 2, 1, 0}
	for i, want := range wantCounts {
		if summary.Stages[i].Count != want {
			t.Errorf("stage %s count = %d, want %d", summary.Stages[i].Stage, summary.Stages[i].Count, want)
		}
	}

	// Conversion: first stage has no predecessor, then 2/4, 1/2, 0/1
	if summary.Stages[0].ConversionRate != 0 {
		t.Errorf("first stage conversion = %v, want 0", summary.Stages[0].ConversionRate)
	}
	if summary.Stages[1].ConversionRate != 0.5 {
		t.Errorf("contacted conversion = %v, want 0.5", summary.Stages[1].ConversionRate)
	}
	if summary.Stages[2].ConversionRate != 0.5 {
		t.Errorf("qualified conversion = %v, want 0.5", summary.Stages[2].ConversionRate)
	}
	if summary.Stages[3].ConversionRate != 0 {
		t.Errorf("won conversion = %v, want 0", summary.Stages[3].ConversionRate)
	}

	if summary.Stages[0].TotalValue != 1000 {
		t.Errorf("new stage value = %v, want 1000", summary.Stages[0].TotalValue)
	}
}

func TestComputeFunnelSummaryEmpty(t *testing.T) {
	summary := ComputeFunnelSummary(acquisitionDef(), nil)
	if summary.TotalLeads != 0 {
		t.Errorf("total leads = %d, want 0", summary.TotalLeads)
	}
	if len(summary.Stages) != 4 {
		t.Errorf("empty funnel still lists %d stages, want 4", len(summary.Stages))
	}
	for _, s := range summary.Stages {
		if s.ConversionRate != 0 {
			t.Errorf("stage %s conversion = %v, want 0 with no leads", s.Stage, s.ConversionRate)
		}
	}
}

func TestGoalProgress(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	created := now.AddDate(0, -2, 0)
	future := now.AddDate(0, 2, 0)
	past := now.AddDate(0, -1, 0)

	tests := []struct {
		name         string
		goal         models.Goal
		wantProgress float64
		wantStatus   models.GoalStatus
	}{
		{
			"achieved",
			models.Goal{TargetValue: 100, CurrentValue: 100, CreatedAt: created},
			1, models.GoalStatusAchieved,
		},
		{
			"overachieved clamps to 1",
			models.Goal{TargetValue: 100, CurrentValue: 150, CreatedAt: created},
			1, models.GoalStatusAchieved,
		},
		{
			"missed deadline",
			models.Goal{TargetValue: 100, CurrentValue: 40, CreatedAt: created, Deadline: &past},
			0.4, models.GoalStatusMissed,
		},
		{
			"on track halfway through window",
			models.Goal{TargetValue: 100, CurrentValue: 50, CreatedAt: created, Deadline: &future},
			0.5, models.GoalStatusOnTrack,
		},
		{
			"far behind the window is at risk",
			models.Goal{TargetValue: 100, CurrentValue: 5, CreatedAt: created, Deadline: &future},
			0.05, models.GoalStatusAtRisk,
		},
		{
			"no deadline never goes at risk",
			models.Goal{TargetValue: 100, CurrentValue: 5, CreatedAt: created},
			0.05, models.GoalStatusOnTrack,
		},
		{
			"zero target reports zero progress",
			models.Goal{TargetValue: 0, CurrentValue: 10, CreatedAt: created, Deadline: &future},
			0, models.GoalStatusAtRisk,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, status := GoalProgress(&tt.goal, now)
			if progress != tt.wantProgress {
				t.Errorf("progress = %v, want %v", progress, tt.wantProgress)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %v, want %v", status, tt.wantStatus)
			}
		})
	}
}
