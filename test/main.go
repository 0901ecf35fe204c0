package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr/funcr"
	"github.com/henderiw/rangelist/pkg/rangeset"
	"github.com/henderiw/rangelist/pkg/registry"
	"k8s.io/apimachinery/pkg/labels"
)

var values = []int64{3, 1, 2, 10, 11, 2}

var ranges = []struct {
	from int64
	to   int64
}{
	{from: 1, to: 3},
	{from: 5, to: 7},
	{from: 6, to: 2},
}

func main() {
	log := funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, prefix, args)
	}, funcr.Options{Verbosity: 1})

	s := rangeset.New[int64](rangeset.WithLogger(log))
	for _, v := range values {
		s.InsertValue(v)
	}
	fmt.Println("values:", s.String())

	reg := registry.New()
	if err := reg.Create("ranges", labels.Set{"demo": "true"}, rangeset.WithLogger(log)); err != nil {
		panic(err)
	}
	for _, r := range ranges {
		if err := reg.Insert("ranges", rangeset.NewRange(r.from, r.to)); err != nil {
			panic(err)
		}
	}
	out, err := reg.String("ranges")
	if err != nil {
		panic(err)
	}
	fmt.Println("ranges:", out)
}
