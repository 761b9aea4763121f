package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aglyzov/go-dictionary/dict"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	d := dict.New(dict.WithCapacity(8), dict.WithTracer(logger.Sugar()))
	d.Set("c", "1")
	d.Set("a1", "3")
	d.Set("a2", "4")
	d.Set("a3", "5")
	d.Set("a22", "6")
	d.Set("bb", "7")
	d.Set("a2", "44")

	d.DebugDump()

	fmt.Printf("count=%d size=%d\n", d.Len(), d.Size())
	for i := 0; i < d.Len(); i++ {
		fmt.Printf("%d: %s=%s\n", i, d.KeyAt(i), d.ValueAt(i))
	}

	println("------")

	d.Del("c")
	d.TraceDump()

	other := dict.NewDict(d.Items()...)
	fmt.Printf("a22=%q missing=%q equal=%v\n", d.Lookup("a22"), d.Lookup("zz"), d.Equal(other))

	d.Clear()
	fmt.Printf("after clear: count=%d size=%d key(0)=%q\n", d.Len(), d.Size(), d.KeyAt(0))
}
