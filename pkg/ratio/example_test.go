package ratio_test

import (
	"context"
	"fmt"

	"github.com/ib-77/ratiorail/pkg/ratio"
	"github.com/ib-77/ratiorail/pkg/rop"
)

func ExamplePlanRatios() {
	ctx := context.Background()

	ok := ratio.PlanRatios(ctx, "6:3", rop.Some("threshold"))
	fmt.Println(ok.Result())

	failed := ratio.PlanRatios(ctx, "bad", rop.None[string]())
	fmt.Println(failed.Err())
	// Output:
	// ratio plan ready | ratio success: => quotient 2 | threshold source: threshold
	// ratio plan failed | normalized ratio error: invalid ratio: bad
}

func ExampleDescribeRatioStatusFast() {
	ctx := context.Background()
	for _, input := range []string{"9:3", "4:0"} {
		fmt.Println(ratio.StatusLine(ctx, ratio.DescribeRatioStatusFast(ctx, input)))
	}
	// Output:
	// ratio success: => quotient 3
	// ratio error: division by zero
}
