// ABOUTME: Greedy maximal marginal relevance selection over a candidate pool
// ABOUTME: Balances query relevance against similarity to already-picked results
package index

import "math"

// mmrSelect picks up to k candidate indices greedily, maximizing
//
//	lambda * relevance − (1−lambda) * max similarity to selected
//
// at each step. lambda=1 degrades to pure relevance ranking, lambda=0
// maximizes diversity among the pool.
func mmrSelect(vectors [][]float32, scores []float64, k int, lambda float64) []int {
	if len(vectors) == 0 || k <= 0 {
		return nil
	}
	if k > len(vectors) {
		k = len(vectors)
	}

	selected := make([]int, 0, k)
	used := make([]bool, len(vectors))

	for len(selected) < k {
		best := -1
		bestScore := math.Inf(-1)

		for i := range vectors {
			if used[i] {
				continue
			}

			maxSim := 0.0
			for _, j := range selected {
				if sim := cosineSimilarity(vectors[i], vectors[j]); sim > maxSim {
					maxSim = sim
				}
			}

			score := lambda*scores[i] - (1-lambda)*maxSim
			if score > bestScore {
				best = i
				bestScore = score
			}
		}

		if best == -1 {
			break
		}
		used[best] = true
		selected = append(selected, best)
	}

	return selected
}
