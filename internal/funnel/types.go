package funnel

// Stage is one step of a sales funnel.
type Stage struct {
	ID          string `yaml:"id" json:"id"`
	DisplayName string `yaml:"display_name" json:"display_name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Definition is a named funnel with its ordered stages.
type Definition struct {
	Name        string  `yaml:"name" json:"name"`
	DisplayName string  `yaml:"display_name" json:"display_name"`
	Stages      []Stage `yaml:"stages" json:"stages"`
}

// StageIndex returns the position of a stage id in the funnel, or -1 when the
// stage does not belong to it.
func (d *Definition) StageIndex(stageID string) int {
	for i, s := range d.Stages {
		if s.ID == stageID {
			return i
		}
	}
	return -1
}

// HasStage reports whether the stage id belongs to this funnel.
func (d *Definition) HasStage(stageID string) bool {
	return d.StageIndex(stageID) >= 0
}

type registryFile struct {
	Funnels []Definition `yaml:"funnels"`
}
