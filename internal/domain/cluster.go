package domain

// Represents one spatial group of hotspots produced by the clusterer.
//
// Members hold the points assigned to this cluster in their original input
// order. Across all clusters of one clustering run the member lists
// partition the input exactly: every input point appears in exactly one
// cluster, none is dropped or duplicated.
type Cluster struct {
	ID       int
	Centroid GeoPoint
	Members  []GeoPoint
}
