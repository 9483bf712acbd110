package guidance

// Priority ranks how urgently a skill gap should be addressed.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// SkillGap compares a respondent's estimated proficiency with the level the
// role expects.
type SkillGap struct {
	Skill    string   `json:"skill"`
	Current  int      `json:"current"`
	Target   int      `json:"target"`
	Gap      int      `json:"gap"`
	Priority Priority `json:"priority"`
}

// Progress returns Current as a percentage of Target. It exceeds 100 when
// the estimate is above target.
func (g SkillGap) Progress() int {
	if g.Target <= 0 {
		return 0
	}
	return g.Current * 100 / g.Target
}

type gapRule struct {
	skill    string
	offset   int
	floor    int
	target   int
	gapFrom  int
	priority func(technical int) Priority
}

// Communication & Reporting can estimate Current above Target once the
// technical score reaches 70. That mirrors the formula as shipped.
var gapRules = []gapRule{
	{
		skill: "Excel & Data Analysis", offset: -20, floor: 30, target: 85, gapFrom: 55,
		priority: below(50, PriorityHigh, PriorityMedium),
	},
	{
		skill: "Internal Controls Knowledge", offset: -15, floor: 35, target: 90, gapFrom: 75,
		priority: below(60, PriorityHigh, PriorityLow),
	},
	{
		skill: "Risk Assessment Frameworks", offset: -10, floor: 40, target: 80, gapFrom: 70,
		priority: always(PriorityMedium),
	},
	{
		skill: "Communication & Reporting", offset: 10, floor: 50, target: 80, gapFrom: 70,
		priority: always(PriorityLow),
	},
}

// SkillGaps estimates the four core skill gaps from the technical score.
func SkillGaps(technical int) []SkillGap {
	gaps := make([]SkillGap, len(gapRules))
	for i, r := range gapRules {
		gaps[i] = SkillGap{
			Skill:    r.skill,
			Current:  min(max(technical+r.offset, r.floor), 100),
			Target:   r.target,
			Gap:      max(r.gapFrom-technical, 0),
			Priority: r.priority(technical),
		}
	}
	return gaps
}

func below(threshold int, under, over Priority) func(int) Priority {
	return func(technical int) Priority {
		if technical < threshold {
			return under
		}
		return over
	}
}

func always(p Priority) func(int) Priority {
	return func(int) Priority { return p }
}
