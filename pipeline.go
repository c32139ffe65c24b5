package instancing

import "sync"

// task splits [0, size) into contiguous chunks and runs fn on each index from
// workersCount goroutines. Results must land in pre-sized slots so that the
// output stays deterministic regardless of the worker count.
func task(workersCount, size int, fn func(i int)) {
	var wg sync.WaitGroup
	chunkSize := (size + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, size))
	}
	wg.Wait()
}
