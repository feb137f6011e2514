package services

import (
	"fmt"
	"math"
	"math/rand"

	"waste-route-service/internal/domain"
	"waste-route-service/internal/geo"
)

// Iteration cap for Lloyd's algorithm when the caller does not set one.
const DefaultMaxIterations = 300

// Tuning knobs for ClusterHotspots.
//
// The seed is explicit so determinism is a property of the call rather
// than of process-wide random state: a fixed (input, k, seed) triple
// always produces the same partition.
type KMeansOptions struct {
	Seed          int64
	MaxIterations int
	// Geodesic switches cluster assignment from planar squared-Euclidean
	// distance on raw degrees to great-circle distance. The planar metric
	// is the default: it is an approximation valid for small geographic
	// extents, kept for parity with the planner's historical behavior.
	Geodesic bool
}

// ClusterHotspots partitions points into k spatial clusters using Lloyd's
// k-means with k-means++ seeding.
//
// Cluster member lists preserve the original input order and partition the
// input exactly. Assignment ties go to the lowest cluster index; a cluster
// that loses all members keeps its previous centroid. Iteration stops when
// no point changes cluster or the cap is reached.
func ClusterHotspots(points []domain.GeoPoint, k int, opts KMeansOptions) ([]domain.Cluster, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("cluster hotspots: point set must not be empty: %w", domain.ErrInvalidParameter)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("cluster hotspots: n_clusters=%d must be within [1, %d]: %w", k, n, domain.ErrInvalidParameter)
	}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	sq := squaredMetric(opts.Geodesic)
	rng := rand.New(rand.NewSource(opts.Seed))
	centroids := seedCentroids(points, k, rng, sq)

	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false

		// Assignment step. Strict < keeps ties on the lowest cluster index.
		for i, p := range points {
			best := 0
			bestDist := sq(p, centroids[0])
			for c := 1; c < k; c++ {
				if d := sq(p, centroids[c]); d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignment[i] != best {
				assignment[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		// Update step: centroid = arithmetic mean of assigned coordinates
		// (not a geodesic mean). Emptied clusters keep their centroid.
		sumLat := make([]float64, k)
		sumLon := make([]float64, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignment[i]
			sumLat[c] += p.Lat
			sumLon[c] += p.Lon
			counts[c]++
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			centroids[c] = domain.GeoPoint{
				Lat: sumLat[c] / float64(counts[c]),
				Lon: sumLon[c] / float64(counts[c]),
			}
		}
	}

	clusters := make([]domain.Cluster, k)
	for c := 0; c < k; c++ {
		clusters[c] = domain.Cluster{ID: c, Centroid: centroids[c], Members: []domain.GeoPoint{}}
	}
	for i, p := range points {
		c := assignment[i]
		clusters[c].Members = append(clusters[c].Members, p)
	}

	return clusters, nil
}

// squaredMetric returns the squared separation used for assignment and
// seeding: planar Euclidean on raw degrees by default, great-circle when
// geodesic is requested.
func squaredMetric(geodesic bool) func(a, b domain.GeoPoint) float64 {
	if geodesic {
		return func(a, b domain.GeoPoint) float64 {
			d := geo.Distance(a, b)
			return d * d
		}
	}
	return func(a, b domain.GeoPoint) float64 {
		dlat := a.Lat - b.Lat
		dlon := a.Lon - b.Lon
		return dlat*dlat + dlon*dlon
	}
}

// seedCentroids picks k initial centroids with k-means++: the first
// uniformly at random, each subsequent one weighted by its squared
// distance to the nearest centroid chosen so far.
func seedCentroids(
	points []domain.GeoPoint,
	k int,
	rng *rand.Rand,
	sq func(a, b domain.GeoPoint) float64,
) []domain.GeoPoint {
	centroids := make([]domain.GeoPoint, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	dists := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := math.Inf(1)
			for _, c := range centroids {
				if s := sq(p, c); s < d {
					d = s
				}
			}
			dists[i] = d
			total += d
		}

		next := -1
		if total > 0 {
			target := rng.Float64() * total
			acc := 0.0
			for i, d := range dists {
				acc += d
				if acc >= target && d > 0 {
					next = i
					break
				}
			}
		}
		if next == -1 {
			// Remaining points all coincide with chosen centroids
			// (duplicate coordinates). Take the first unused one so the
			// requested k is still honored.
			next = firstUnchosen(points, centroids)
		}

		centroids = append(centroids, points[next])
	}

	return centroids
}

func firstUnchosen(points []domain.GeoPoint, centroids []domain.GeoPoint) int {
	for i, p := range points {
		used := false
		for _, c := range centroids {
			if p == c {
				used = true
				break
			}
		}
		if !used {
			return i
		}
	}
	return 0
}
