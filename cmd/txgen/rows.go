package main

import (
	"strconv"
)

// rowCount is a flag value that only accepts base 10 integers, so
// "010" means ten and "0x10" is rejected
type rowCount struct {
	value int64
}

func (r *rowCount) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	r.value = v
	return nil
}

func (r *rowCount) String() string {
	if r == nil {
		return "0"
	}
	return strconv.FormatInt(r.value, 10)
}
