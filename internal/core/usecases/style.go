package usecases

import "github.com/samirrijal/mapposter/internal/core/domain"

// StyleRoads resolves the stroke of every road edge from its highway tag.
func StyleRoads(network *domain.RoadNetwork, theme domain.Theme) []domain.StyledSegment {
	if network == nil {
		return nil
	}
	segments := make([]domain.StyledSegment, 0, len(network.Edges))
	for _, edge := range network.Edges {
		class := domain.ClassifyHighway(edge.Highway())
		style := class.Style()
		segments = append(segments, domain.StyledSegment{
			Geometry: edge.Geometry,
			Class:    class,
			Color:    theme.Value(style.ColorKey),
			Width:    style.Width,
		})
	}
	return segments
}
