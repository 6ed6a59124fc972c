package sections

import "github.com/hellofanny/faststore/pkg/interfaces"

// NoOpMetrics returns a metrics recorder that drops every observation.
func NoOpMetrics() interfaces.SectionMetrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) ObserveResolution(string, string) {}

func (noopMetrics) IncrementRenderError(string) {}

func (noopMetrics) ObserveSkeleton(int) {}
