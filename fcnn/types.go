package fcnn

import "fmt"

// LayerType tells the network which role a layer plays.
//
//   - Input  - holds the input values; no weights, no activation, no error function.
//   - Hidden - weights from its predecessor plus an activation pair.
//   - Output - like Hidden, plus an error function pair; terminates the network.
type LayerType int

const (
	// Input is the first layer of every network.
	Input LayerType = iota

	// Hidden layers sit between Input and Output.
	Hidden

	// Output is the last layer; adding it freezes the topology.
	Output
)

// String returns the layer type name.
func (t LayerType) String() string {
	switch t {
	case Input:
		return "Input"
	case Hidden:
		return "Hidden"
	case Output:
		return "Output"
	default:
		return fmt.Sprintf("LayerType(%d)", int(t))
	}
}

func (t LayerType) valid() bool { return t >= Input && t <= Output }

// Sample is one (input, target) training pair.
type Sample struct {
	Input  []float64
	Target []float64
}
