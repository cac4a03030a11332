package main

import (
	"fmt"

	"github.com/mark3labs/nestdemo/internal/component"
	"github.com/mark3labs/nestdemo/internal/logger"
	"github.com/spf13/cobra"
)

var sumCmd = &cobra.Command{
	Use:   "sum X Y [Z]",
	Short: "Print MyClass{X, Y}.Sum() or SubClass{X, Y, Z}.Sum()",
	Long: `Build a MyClass from two arguments, or a SubClass from three, and print its sum.

SubClass sums all three values: X + Y + Z. Overflow wraps.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runSum,
}

func runSum(cmd *cobra.Command, args []string) error {
	nums, err := parseInt32s([]string{"X", "Y", "Z"}, args)
	if err != nil {
		return err
	}

	var sum int32
	if len(nums) == 2 {
		mc := component.NewMyClass(nums[0], nums[1])
		sum = mc.Sum()
		logger.Debug("MyClass %+v sum = %d", mc, sum)
	} else {
		sc := component.NewSubClass(nums[0], nums[1], nums[2])
		sum = sc.Sum()
		logger.Debug("SubClass %+v sum = %d", sc, sum)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
	return err
}
