package param

import (
	"fmt"
	"strconv"
)

// Parse builds a parameter from a patch description such as
//
//	-name Cutoff -label Hz -min 20 -max 20000 -default 1000
//
// Recognized options are -name, -label, -min, -max, -default, -nsteps,
// -receive and -send. Bounds default to [0, 1].
func Parse(args []string) (*Parameter, error) {
	p := &Parameter{Max: 1}

	for i := 0; i < len(args); i++ {
		opt := args[i]
		if i+1 >= len(args) {
			return nil, fmt.Errorf("%w: option %s has no value", ErrInvalid, opt)
		}
		i++
		val := args[i]

		var err error
		switch opt {
		case "-name":
			p.Name = val
		case "-label":
			p.Label = val
		case "-receive":
			p.Receive = val
		case "-send":
			p.Send = val
		case "-min":
			p.Min, err = strconv.ParseFloat(val, 64)
		case "-max":
			p.Max, err = strconv.ParseFloat(val, 64)
		case "-default":
			p.Default, err = strconv.ParseFloat(val, 64)
		case "-nsteps":
			p.Steps, err = strconv.Atoi(val)
		default:
			return nil, fmt.Errorf("%w: unknown option %s", ErrInvalid, opt)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: option %s: %w", ErrInvalid, opt, err)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Reset()
	return p, nil
}
