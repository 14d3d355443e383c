package numberutils

import (
	"fmt"
	"strconv"
)

// ToPositiveInt64 parses s as an id: a base-10 integer greater than zero.
func ToPositiveInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
