package hlist

import (
	"fmt"
	"strings"
)

// HList is implemented by exactly two shapes: HNil and HCons. The element
// types of a list are part of its static type.
type HList interface {
	// Len returns the number of elements.
	Len() int
	isHList()
}

// HNil is the empty list.
type HNil struct{}

// HCons is a non-empty list: a head value and the rest of the list.
type HCons[H any, T HList] struct {
	Head H
	Tail T
}

func Empty() HNil {
	return HNil{}
}

// Prepend returns a new list with head in front of tail. tail is not modified.
func Prepend[H any, T HList](tail T, head H) HCons[H, T] {
	return HCons[H, T]{Head: head, Tail: tail}
}

// Pop splits the list into its head and its tail. HNil has no Pop, so
// popping an empty list does not compile.
func (c HCons[H, T]) Pop() (H, T) {
	return c.Head, c.Tail
}

func (HNil) Len() int {
	return 0
}

func (c HCons[H, T]) Len() int {
	return 1 + c.Tail.Len()
}

func (HNil) isHList()        {}
func (HCons[H, T]) isHList() {}

func (HNil) String() string {
	return "[]"
}

func (c HCons[H, T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	c.writeTo(&sb)
	sb.WriteByte(']')
	return sb.String()
}

func (c HCons[H, T]) writeTo(sb *strings.Builder) {
	fmt.Fprint(sb, c.Head)
	if next, ok := any(c.Tail).(interface{ writeTo(*strings.Builder) }); ok {
		sb.WriteString(", ")
		next.writeTo(sb)
	}
}
