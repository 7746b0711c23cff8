package models

import "strings"

// Method identifies one of the supported resampling algorithms.
type Method string

const (
	MethodNearestNeighbor Method = "Nearest Neighbor"
	MethodBilinear        Method = "Bilinear"
	MethodBicubic         Method = "Bicubic"
	MethodLanczos         Method = "Lanczos"
)

// AllMethods lists the supported methods in display order. Every
// successful resize produces exactly one output per entry.
var AllMethods = []Method{
	MethodNearestNeighbor,
	MethodBilinear,
	MethodBicubic,
	MethodLanczos,
}

// Slug returns the method name lowercased with spaces replaced by
// underscores, as used in download filenames.
func (m Method) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(m)), " ", "_")
}

func (m Method) String() string {
	return string(m)
}
