package internal

import "fmt"

type loxBool bool

func (b loxBool) String() string {
	return fmt.Sprintf("%v", bool(b))
}
