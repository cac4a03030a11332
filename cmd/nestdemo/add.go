package main

import (
	"fmt"

	"github.com/mark3labs/nestdemo/internal/logger"
	"github.com/mark3labs/nestdemo/internal/tool/calc"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Print A + B as 32-bit integers",
	Long: `Print A + B using 32-bit signed arithmetic. Overflow wraps.

Put -- before negative numbers so they are not read as flags:
  nestdemo add -- -3 4`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	nums, err := parseInt32s([]string{"A", "B"}, args)
	if err != nil {
		return err
	}

	sum := calc.Add(nums[0], nums[1])
	logger.Debug("add(%d, %d) = %d", nums[0], nums[1], sum)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
	return err
}
