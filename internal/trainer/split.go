package trainer

import "math/rand"

// stratifiedSplit partitions sample indices so each class keeps its
// overall proportion in both splits. Every class contributes at least
// one sample to each side; classes too small for that are reported by
// code so the caller can name the offending category.
func stratifiedSplit(y []int, classes int, testFrac float64, rng *rand.Rand) (trainIdx, testIdx []int, smallClass int) {
	byClass := make([][]int, classes)
	for i, code := range y {
		byClass[code] = append(byClass[code], i)
	}

	for code, members := range byClass {
		if len(members) < 2 {
			return nil, nil, code
		}
	}

	for _, members := range byClass {
		n := len(members)
		testCount := int(float64(n)*testFrac + 0.5)
		if testCount < 1 {
			testCount = 1
		}
		if testCount > n-1 {
			testCount = n - 1
		}

		shuffled := append([]int(nil), members...)
		rng.Shuffle(n, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		testIdx = append(testIdx, shuffled[:testCount]...)
		trainIdx = append(trainIdx, shuffled[testCount:]...)
	}
	return trainIdx, testIdx, -1
}
