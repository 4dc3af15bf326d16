package rdp

import "fmt"

var (
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrInvalidCoordinate = fmt.Errorf("invalid coordinate")
)
