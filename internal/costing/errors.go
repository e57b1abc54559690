package costing

import "fmt"

// ErrMissingRobotMetadata signals that an option references a robot absent
// from the reference table. The caller must surface it, never default the cost.
type ErrMissingRobotMetadata struct {
	error
	RobotName string
}

func NewErrMissingRobotMetadata(optionID, robotName string) *ErrMissingRobotMetadata {
	return &ErrMissingRobotMetadata{
		error:     fmt.Errorf("option %s references robot %q not found in the robot reference table", optionID, robotName),
		RobotName: robotName,
	}
}

// ErrInvalidFinancialConfig signals an out-of-range financial parameter.
type ErrInvalidFinancialConfig struct {
	error
}

func NewErrInvalidFinancialConfig(format string, args ...any) *ErrInvalidFinancialConfig {
	return &ErrInvalidFinancialConfig{fmt.Errorf(format, args...)}
}

// ErrEmptyOptionSet signals that there are no automation options to rank.
type ErrEmptyOptionSet struct {
	error
}

func NewErrEmptyOptionSet() *ErrEmptyOptionSet {
	return &ErrEmptyOptionSet{fmt.Errorf("no automation options to rank")}
}
