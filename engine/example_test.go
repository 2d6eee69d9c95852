package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/surveyspace/cache"
	"github.com/katalvlaran/surveyspace/embed"
	"github.com/katalvlaran/surveyspace/engine"
)

func ExampleEngine_Scene() {
	e := engine.New(survey(), engine.WithCache(cache.NewResults(cache.NewMemory(), nil, 0)))

	sc, err := e.Scene(context.Background(), engine.Request{Base: "Q5", Mode: embed.PCAJS})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sc.Method, len(sc.Points), sc.Meta.Columns, len(sc.Groups))
	// Output: PCA(JS) 40 3 2
}
