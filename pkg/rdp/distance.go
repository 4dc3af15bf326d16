package rdp

import "github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"

// https://en.wikipedia.org/wiki/Distance_from_a_point_to_a_line
//
// PerpendicularDistanceSquared returns the squared distance from pt to the
// infinite line through lineStart and lineEnd. When both line points coincide
// the line is just a point and the squared euclidean distance to it is returned.
func PerpendicularDistanceSquared(pt, lineStart, lineEnd datastructure.Point) float64 {
	xLineDiff, yLineDiff := lineEnd.Sub(lineStart)
	xPointToLineStart, yPointToLineStart := pt.Sub(lineStart)

	lineLengthSquared := xLineDiff*xLineDiff + yLineDiff*yLineDiff
	if lineLengthSquared == 0 {
		return xPointToLineStart*xPointToLineStart + yPointToLineStart*yPointToLineStart
	}

	// twice the area of the triangle (lineStart, lineEnd, pt)
	doubleTriangleArea := yLineDiff*xPointToLineStart - xLineDiff*yPointToLineStart

	return doubleTriangleArea * doubleTriangleArea / lineLengthSquared
}
