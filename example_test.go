package bucketsort_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/lanrat/bucketsort"
)

func ExampleRunParallelBucketSort() {
	sorted, err := bucketsort.RunParallelBucketSort([]int{5, 3, 8, 1, 9, 2}, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(sorted)
	// Output: [1 2 3 5 8 9]
}

func ExampleSorter_Report() {
	sorter, err := bucketsort.New[int](&bucketsort.Config{NumNodes: 3})
	if err != nil {
		panic(err)
	}
	report, err := sorter.Report(context.Background(), []int{5, 3, 8, 1, 9, 2})
	if err != nil {
		panic(err)
	}
	for i, bucket := range report.Buckets {
		lo, hi := report.Plan.Bounds(i)
		fmt.Printf("node %d [%g, %g): %v\n", i, lo, hi, bucket)
	}
	fmt.Println(report.Sorted)
	// Output:
	// node 0 [1, 4): [1 2 3]
	// node 1 [4, 7): [5]
	// node 2 [7, 10): [8 9]
	// [1 2 3 5 8 9]
}

func ExamplePartialSortFailure() {
	sorter, err := bucketsort.New[int](&bucketsort.Config{NumNodes: 2})
	if err != nil {
		panic(err)
	}
	sorter.WithCompare(func(a, b int) int {
		if a < 0 || b < 0 {
			panic("negative value")
		}
		return a - b
	})

	_, err = sorter.Run(context.Background(), []int{-3, -4, 10, 11})
	var partial *bucketsort.PartialSortFailure
	if errors.As(err, &partial) {
		fmt.Println("failed nodes:", partial.NodeIDs())
	}
	// Output: failed nodes: [0]
}

func ExampleChan() {
	input := make(chan int)
	go func() {
		defer close(input)
		for _, v := range []int{30, 10, 20} {
			input <- v
		}
	}()

	sorter, output, errChan := bucketsort.Chan(input, nil)
	go sorter.Sort(context.Background())

	for v := range output {
		fmt.Println(v)
	}
	if err := <-errChan; err != nil {
		panic(err)
	}
	// Output:
	// 10
	// 20
	// 30
}
