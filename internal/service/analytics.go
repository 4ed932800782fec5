package service

import (
	"sort"
	"time"

	"traction/internal/domain/models"
	"traction/internal/domain/services"
	"traction/internal/funnel"
)

// Derived dashboard computations. These are pure functions over immutable
// snapshots: they take slices fetched from the store and return new values,
// so they can be recomputed on any refresh without touching transport or
// persistence.

// SortCampaigns returns a new slice ordered by the given key. Unknown keys
// fall back to creation time, newest first.
func SortCampaigns(campaigns []models.Campaign, sortBy string) []models.Campaign {
	out := append([]models.Campaign(nil), campaigns...)
	switch sortBy {
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case "budget":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Budget > out[j].Budget })
	case "spent":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Spent > out[j].Spent })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// FilterCampaignsByStatus returns the campaigns in the given status; an empty
// status keeps everything.
func FilterCampaignsByStatus(campaigns []models.Campaign, status models.CampaignStatus) []models.Campaign {
	if status == "" {
		return append([]models.Campaign(nil), campaigns...)
	}
	out := make([]models.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// ComputeFunnelSummary tallies leads per stage of one funnel definition and
// derives stage-to-stage conversion rates. Stages keep the definition's
// order; leads tagged with stages the funnel does not define are ignored.
func ComputeFunnelSummary(def *funnel.Definition, leads []models.Lead) *services.FunnelSummary {
	counts := make(map[string]int, len(def.Stages))
	values := make(map[string]float64, len(def.Stages))
	total := 0

	for _, l := range leads {
		if l.Funnel != def.Name || !def.HasStage(l.Stage) {
			continue
		}
		counts[l.Stage]++
		values[l.Stage] += l.Value
		total++
	}

	stages := make([]services.StageCount, 0, len(def.Stages))
	prev := -1
	for _, s := range def.Stages {
		sc := services.StageCount{
			Stage:      s.ID,
			Count:      counts[s.ID],
			TotalValue: values[s.ID],
		}
		if prev > 0 {
			sc.ConversionRate = float64(sc.Count) / float64(prev)
		}
		prev = sc.Count
		stages = append(stages, sc)
	}

	return &services.FunnelSummary{
		Funnel:     def.Name,
		TotalLeads: total,
		Stages:     stages,
	}
}

// GoalProgress derives the progress fraction and status of a goal at the
// given instant. Progress is clamped to 0..1.
func GoalProgress(goal *models.Goal, now time.Time) (float64, models.GoalStatus) {
	progress := 0.0
	if goal.TargetValue > 0 {
		progress = goal.CurrentValue / goal.TargetValue
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	switch {
	case progress >= 1:
		return progress, models.GoalStatusAchieved
	case goal.Deadline != nil && now.After(*goal.Deadline):
		return progress, models.GoalStatusMissed
	case goal.Deadline != nil && behindSchedule(goal, now, progress):
		return progress, models.GoalStatusAtRisk
	default:
		return progress, models.GoalStatusOnTrack
	}
}

// behindSchedule compares progress with the elapsed share of the goal's
// lifetime: a goal 80% through its window at 20% progress is at risk.
func behindSchedule(goal *models.Goal, now time.Time, progress float64) bool {
	window := goal.Deadline.Sub(goal.CreatedAt)
	if window <= 0 {
		return false
	}
	elapsed := now.Sub(goal.CreatedAt)
	expected := float64(elapsed) / float64(window)
	return progress < expected*0.5
}
