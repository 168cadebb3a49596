package tlog

import "fmt"

// identity идентификатор узла в виде поколение:ячейка.
type identity uint64

func (id identity) String() string {
	if id == 0 {
		return "nil"
	}

	return fmt.Sprintf("%d:%d", uint32(id>>32), uint32(id)-1)
}
