package engine

// Directional offsets as (file, rank) deltas. Sliding pieces ray-cast along
// these until blocked; stepping pieces take each offset at most once.

type offset struct {
	df int
	dr int
}

var rookOffsets = []offset{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

var bishopOffsets = []offset{
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

var queenOffsets = []offset{
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

var knightOffsets = []offset{
	{1, 2}, {-1, 2}, {2, 1}, {-2, 1},
	{2, -1}, {-2, -1}, {1, -2}, {-1, -2},
}

var kingOffsets = []offset{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
}
