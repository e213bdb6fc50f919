package analytics

import "pulsecheck/internal/model"

// notSpecified buckets responses that skipped a segmentation question
const notSpecified = "Not specified"

// SegmentField selects which response attribute to segment by
type SegmentField int

const (
	ByDepartment SegmentField = iota
	ByRoleLevel
	ByLocation
	ByTenure
)

func segmentValue(r model.Response, field SegmentField) string {
	var v string
	switch field {
	case ByDepartment:
		v = r.Department
	case ByRoleLevel:
		v = r.RoleLevel
	case ByLocation:
		v = r.Location
	case ByTenure:
		v = r.Tenure
	}
	if v == "" {
		return notSpecified
	}
	return v
}

// SegmentBy groups responses by one attribute and re-scores adoption and
// readiness within each group. Map iteration order is unspecified; consumers
// sort by score or count for presentation.
func SegmentBy(responses []model.Response, field SegmentField) map[string]model.Segment {
	groups := make(map[string][]model.Response)
	for _, r := range responses {
		key := segmentValue(r, field)
		groups[key] = append(groups[key], r)
	}

	segments := make(map[string]model.Segment, len(groups))
	for key, group := range groups {
		segments[key] = model.Segment{
			Count:          len(group),
			AdoptionScore:  AdoptionScore(group),
			ReadinessScore: ReadinessScore(group),
		}
	}
	return segments
}

// ParticipationRate counts submissions by department and role level
func ParticipationRate(responses []model.Response) model.Participation {
	p := model.Participation{
		Total:        len(responses),
		ByDepartment: make(map[string]int),
		ByRoleLevel:  make(map[string]int),
	}
	for _, r := range responses {
		p.ByDepartment[segmentValue(r, ByDepartment)]++
		p.ByRoleLevel[segmentValue(r, ByRoleLevel)]++
	}
	return p
}
