package cli

import (
	"fmt"
	"strconv"
)

// options is the parsed positional grammar:
//
//	walkscore <problem_file> <start_cell> <goal_cell> [<option>] [<split_count>]
type options struct {
	problemFile string
	start       int
	goal        int

	// solverMode is true when option > 0 (solve with that many workers);
	// false selects split mode (option == 0, split into splitCount files).
	solverMode bool
	workers    int
	splitCount int
}

// parseArgs decodes the grammar per spec.md §6 / SPEC §6.2: option>0
// selects solver mode with that worker count, option==0 selects split
// mode, and a negative option is folded to its absolute value.
func parseArgs(args []string) (options, error) {
	o := options{
		problemFile: args[0],
		solverMode:  true,
		workers:     1,
		splitCount:  1,
	}

	start, err := strconv.Atoi(args[1])
	if err != nil {
		return options{}, fmt.Errorf("%w: start_cell: %v", ErrBadArgs, err)
	}
	o.start = start

	goal, err := strconv.Atoi(args[2])
	if err != nil {
		return options{}, fmt.Errorf("%w: goal_cell: %v", ErrBadArgs, err)
	}
	o.goal = goal

	if len(args) < 4 {
		return o, nil
	}

	option, err := strconv.Atoi(args[3])
	if err != nil {
		return options{}, fmt.Errorf("%w: option: %v", ErrBadArgs, err)
	}
	if option != 0 {
		o.solverMode = true
		o.workers = abs(option)
		if o.workers < 1 {
			o.workers = 1
		}

		return o, nil
	}

	o.solverMode = false
	o.splitCount = 2
	if len(args) >= 5 {
		count, err := strconv.Atoi(args[4])
		if err != nil {
			return options{}, fmt.Errorf("%w: split_count: %v", ErrBadArgs, err)
		}
		o.splitCount = abs(count)
		if o.splitCount <= 1 {
			o.splitCount = 2
		}
	}

	return o, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
