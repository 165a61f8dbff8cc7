package bitset_test

import (
	"testing"

	"github.com/katalvlaran/kcoloring/bitset"
)

func TestAddTestRemove(t *testing.T) {
	s := bitset.New(100)
	if !s.IsEmpty() {
		t.Fatalf("fresh set should be empty")
	}
	s.Add(5)
	s.Add(63)
	s.Add(64)
	s.Add(99)
	for _, v := range []int{5, 63, 64, 99} {
		if !s.Test(v) {
			t.Fatalf("expected %d to be a member", v)
		}
	}
	if s.Test(6) {
		t.Fatalf("6 should not be a member")
	}
	if got := s.PopCount(); got != 4 {
		t.Fatalf("PopCount() = %d, want 4", got)
	}
	s.Remove(64)
	if s.Test(64) {
		t.Fatalf("64 should have been removed")
	}
	if got := s.PopCount(); got != 3 {
		t.Fatalf("PopCount() = %d, want 3", got)
	}
}

func TestOutOfRangeIsNoOp(t *testing.T) {
	s := bitset.New(10)
	s.Add(-1)
	s.Add(10)
	s.Add(1000)
	if s.PopCount() != 0 {
		t.Fatalf("out-of-range adds should be ignored")
	}
	if s.Test(-1) || s.Test(10) {
		t.Fatalf("out-of-range Test should return false")
	}
}

func TestSetAlgebra(t *testing.T) {
	a := bitset.New(10)
	b := bitset.New(10)
	for _, v := range []int{1, 2, 3, 4} {
		a.Add(v)
	}
	for _, v := range []int{3, 4, 5, 6} {
		b.Add(v)
	}

	and := a.And(b)
	if got := and.Members(nil); !equalInts(got, []int{3, 4}) {
		t.Fatalf("And() = %v, want [3 4]", got)
	}
	if got := a.AndPopCount(b); got != 2 {
		t.Fatalf("AndPopCount() = %d, want 2", got)
	}

	diff := a.AndNot(b)
	if got := diff.Members(nil); !equalInts(got, []int{1, 2}) {
		t.Fatalf("AndNot() = %v, want [1 2]", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := bitset.New(10)
	a.Add(1)
	b := a.Clone()
	b.Add(2)
	if a.Test(2) {
		t.Fatalf("mutating the clone should not affect the original")
	}
}

func TestMembersOrderedAscending(t *testing.T) {
	s := bitset.New(200)
	for _, v := range []int{199, 0, 130, 63, 64, 65} {
		s.Add(v)
	}
	got := s.Members(nil)
	want := []int{0, 63, 64, 65, 130, 199}
	if !equalInts(got, want) {
		t.Fatalf("Members() = %v, want %v", got, want)
	}
}

func TestEachShortCircuits(t *testing.T) {
	s := bitset.New(10)
	s.Add(1)
	s.Add(2)
	s.Add(3)
	var seen []int
	s.Each(func(v int) bool {
		seen = append(seen, v)
		return v != 2
	})
	if !equalInts(seen, []int{1, 2}) {
		t.Fatalf("Each() visited %v, want early stop after 2", seen)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
