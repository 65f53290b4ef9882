package tlog

import "github.com/sirkon/errors"

type contextVar struct {
	name  string
	value any
}

// contextCollector собирает контекст ошибки в порядке поступления.
type contextCollector struct {
	vars []contextVar
}

func (c *contextCollector) add(name string, value any) {
	c.vars = append(c.vars, contextVar{name: name, value: value})
}

// Bool для реализации errors.ErrorContextConsumer.
func (c *contextCollector) Bool(name string, value bool) {
	c.add(name, value)
}

// Int для реализации errors.ErrorContextConsumer.
func (c *contextCollector) Int(name string, value int) {
	c.add(name, value)
}

func (c *contextCollector) Int8(name string, value int8) {
	c.add(name, value)
}

func (c *contextCollector) Int16(name string, value int16) {
	c.add(name, value)
}

func (c *contextCollector) Int32(name string, value int32) {
	c.add(name, value)
}

func (c *contextCollector) Int64(name string, value int64) {
	c.add(name, value)
}

func (c *contextCollector) Uint(name string, value uint) {
	c.add(name, value)
}

func (c *contextCollector) Uint8(name string, value uint8) {
	c.add(name, value)
}

func (c *contextCollector) Uint16(name string, value uint16) {
	c.add(name, value)
}

func (c *contextCollector) Uint32(name string, value uint32) {
	c.add(name, value)
}

func (c *contextCollector) Uint64(name string, value uint64) {
	c.add(name, value)
}

func (c *contextCollector) Float32(name string, value float32) {
	c.add(name, value)
}

func (c *contextCollector) Float64(name string, value float64) {
	c.add(name, value)
}

// String для реализации errors.ErrorContextConsumer.
func (c *contextCollector) String(name string, value string) {
	c.add(name, value)
}

// Any для реализации errors.ErrorContextConsumer.
func (c *contextCollector) Any(name string, value any) {
	c.add(name, value)
}

var _ errors.ErrorContextConsumer = &contextCollector{}
