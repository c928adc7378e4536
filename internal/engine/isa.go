package engine

import "golang.org/x/sys/cpu"

// SelectIntersector picks one Intersector implementation for the lifetime
// of a clustering run, inspecting the host's vector ISA once at startup -
// never per call, per spec's design note on dispatch. The variant chosen
// only affects speed: every Intersector implementation in this package
// must return identical SIMILAR/NOT_SIMILAR verdicts.
func SelectIntersector() Intersector {
	switch {
	case cpu.X86.HasAVX512F:
		return bulkCompareIntersector{lanes: 16}
	case cpu.X86.HasAVX2:
		return bulkCompareIntersector{lanes: 8}
	case cpu.X86.HasSSE42:
		return gallopingIntersector{}
	default:
		return scalarIntersector{}
	}
}
