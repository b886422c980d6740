package cli

import (
	"errors"
	"fmt"
	"strconv"
)

var errOutOfRange = errors.New("argument out of range")

type Option interface {
	Name() string
	String() string
	Set(s string) error
}

type BoolOption struct {
	OptionName string
	Value      *bool
}

func (opt *BoolOption) Name() string {
	return opt.OptionName
}

func (opt *BoolOption) String() string {
	return fmt.Sprintf("option %v type check value %v", opt.OptionName, *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	OptionName string
	Min        int
	Max        int
	Value      *int
}

func (opt *IntOption) Name() string {
	return opt.OptionName
}

func (opt *IntOption) String() string {
	return fmt.Sprintf("option %v type spin value %v min %v max %v",
		opt.OptionName, *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errOutOfRange
	}
	*opt.Value = v
	return nil
}

type FloatOption struct {
	OptionName string
	Min        float64
	Max        float64
	Value      *float64
}

func (opt *FloatOption) Name() string {
	return opt.OptionName
}

func (opt *FloatOption) String() string {
	return fmt.Sprintf("option %v type float value %v min %v max %v",
		opt.OptionName, *opt.Value, opt.Min, opt.Max)
}

func (opt *FloatOption) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errOutOfRange
	}
	*opt.Value = v
	return nil
}
