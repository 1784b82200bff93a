package attendance

import (
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
)

// Pipeline turns raw events into daily records. It holds no mutable state;
// running it twice on the same input gives the same output.
type Pipeline struct {
	normalizer *Normalizer
	policy     Policy
}

func NewPipeline(policy Policy) *Pipeline {
	return &Pipeline{
		normalizer: NewNormalizer(policy.Location),
		policy:     policy,
	}
}

func (p *Pipeline) Policy() Policy {
	return p.policy
}

func (p *Pipeline) Normalizer() *Normalizer {
	return p.normalizer
}

// Run groups events and reduces every group, keeping group order.
func (p *Pipeline) Run(events []attendance.Event) []attendance.DailyRecord {
	groups := GroupEvents(events, p.normalizer)
	records := make([]attendance.DailyRecord, 0, len(groups))
	for _, g := range groups {
		records = append(records, Reduce(g, p.policy))
	}
	return records
}
