package furniture

import "fmt"

// VictorianFactory produces the victorian family.
type VictorianFactory struct{}

var _ Factory = VictorianFactory{}

func (VictorianFactory) CreateChair() Chair {
	return &VictorianChair{}
}

func (VictorianFactory) CreateTable() Table {
	return &VictorianTable{}
}

func (VictorianFactory) Variant() Variant { return Victorian }

type VictorianChair struct{}

func (*VictorianChair) Describe() string {
	return "The result of the VictorianChair"
}

func (*VictorianChair) Variant() Variant { return Victorian }

type VictorianTable struct{}

func (*VictorianTable) Describe() string {
	return "The result of the VictorianTable"
}

func (*VictorianTable) Collaborate(chair Chair) string {
	return fmt.Sprintf("The result of the VictorianTable collaborating with the (%s)", chair.Describe())
}

func (*VictorianTable) Variant() Variant { return Victorian }
