// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package btreeset

import (
	"flag"
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

var btreeDegree = flag.Int("degree", 32, "B-Tree degree")

func intRange(s int, reverse bool) []int {
	out := make([]int, s)
	for i := 0; i < s; i++ {
		v := i
		if reverse {
			v = s - i - 1
		}
		out[i] = v
	}
	return out
}

func intAll(s *Set[int]) (out []int) {
	s.Ascend(func(a int) bool {
		out = append(out, a)
		return true
	})
	return
}

func intAllRev(s *Set[int]) (out []int) {
	s.Descend(func(a int) bool {
		out = append(out, a)
		return true
	})
	return
}

func TestSet(t *testing.T) {
	for _, degree := range []int{2, 3, *btreeDegree} {
		s := NewOrdered[int](degree)
		const treeSize = 100
		for i := 0; i < 10; i++ {
			if min, ok := s.Min(); ok || min != 0 {
				t.Fatalf("empty min, got %+v", min)
			}
			if max, ok := s.Max(); ok || max != 0 {
				t.Fatalf("empty max, got %+v", max)
			}
			for _, item := range rand.Perm(treeSize) {
				if !s.Insert(item) {
					t.Fatal("insert found item", item)
				}
			}
			for _, item := range rand.Perm(treeSize) {
				if s.Insert(item) {
					t.Fatal("insert didn't find item", item)
				}
			}
			if err := s.Check(); err != nil {
				t.Fatal(err)
			}
			want := 0
			if min, ok := s.Min(); !ok || min != want {
				t.Fatalf("min: ok %v want %+v, got %+v", ok, want, min)
			}
			want = treeSize - 1
			if max, ok := s.Max(); !ok || max != want {
				t.Fatalf("max: ok %v want %+v, got %+v", ok, want, max)
			}
			got := intAll(s)
			wantRange := intRange(treeSize, false)
			if !reflect.DeepEqual(got, wantRange) {
				t.Fatalf("mismatch:\n got: %v\nwant: %v", got, wantRange)
			}

			gotrev := intAllRev(s)
			wantrev := intRange(treeSize, true)
			if !reflect.DeepEqual(gotrev, wantrev) {
				t.Fatalf("mismatch:\n got: %v\nwant: %v", gotrev, wantrev)
			}

			for _, item := range rand.Perm(treeSize) {
				if x, ok := s.Delete(item); !ok || x != item {
					t.Fatalf("didn't find %v", item)
				}
			}
			if got = intAll(s); len(got) > 0 {
				t.Fatalf("some left!: %v", got)
			}
			if got = intAllRev(s); len(got) > 0 {
				t.Fatalf("some left!: %v", got)
			}
			if err := s.Check(); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func ExampleSet() {
	s := NewOrdered[int](*btreeDegree)
	for i := 0; i < 10; i++ {
		s.Insert(i)
	}
	fmt.Println("len:       ", s.Len())
	v, ok := s.Get(3)
	fmt.Println("get3:      ", v, ok)
	v, ok = s.Get(100)
	fmt.Println("get100:    ", v, ok)
	v, ok = s.Delete(4)
	fmt.Println("del4:      ", v, ok)
	v, ok = s.Delete(100)
	fmt.Println("del100:    ", v, ok)
	fmt.Println("insert5:   ", s.Insert(5))
	fmt.Println("insert100: ", s.Insert(100))
	fmt.Println("lower4:    ", s.LowerBound(4).Item())
	v, ok = s.Min()
	fmt.Println("min:       ", v, ok)
	v, ok = s.DeleteMin()
	fmt.Println("delmin:    ", v, ok)
	v, ok = s.Max()
	fmt.Println("max:       ", v, ok)
	v, ok = s.DeleteMax()
	fmt.Println("delmax:    ", v, ok)
	fmt.Println("len:       ", s.Len())
	// Output:
	// len:        10
	// get3:       3 true
	// get100:     0 false
	// del4:       4 true
	// del100:     0 false
	// insert5:    false
	// insert100:  true
	// lower4:     5
	// min:        0 true
	// delmin:     0 true
	// max:        100 true
	// delmax:     100 true
	// len:        8
}

func ExamplePosition() {
	s := From(2, Less[string](), "pear", "apple", "fig", "apple")
	for p := s.Begin(); p != s.End(); p = p.Next() {
		fmt.Println(p.Item())
	}
	for p := s.End(); p != s.Begin(); {
		p = p.Prev()
		fmt.Println(p.Item())
	}
	// Output:
	// apple
	// fig
	// pear
	// pear
	// fig
	// apple
}

func TestDeleteMin(t *testing.T) {
	s := NewOrdered[int](3)
	for _, v := range rand.Perm(100) {
		s.Insert(v)
	}
	var got []int
	for v, ok := s.DeleteMin(); ok; v, ok = s.DeleteMin() {
		got = append(got, v)
		if err := s.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if want := intRange(100, false); !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
}

func TestDeleteMax(t *testing.T) {
	s := NewOrdered[int](3)
	for _, v := range rand.Perm(100) {
		s.Insert(v)
	}
	var got []int
	for v, ok := s.DeleteMax(); ok; v, ok = s.DeleteMax() {
		got = append(got, v)
		if err := s.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if want := intRange(100, true); !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
}

func TestAscendRange(t *testing.T) {
	s := NewOrdered[int](2)
	for _, v := range rand.Perm(100) {
		s.Insert(v)
	}
	var got []int
	s.AscendRange(40, 60, func(a int) bool {
		got = append(got, a)
		return true
	})
	if want := intRange(100, false)[40:60]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
	got = got[:0]
	s.AscendRange(40, 60, func(a int) bool {
		if a > 50 {
			return false
		}
		got = append(got, a)
		return true
	})
	if want := intRange(100, false)[40:51]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
}

func TestDescendRange(t *testing.T) {
	s := NewOrdered[int](30)
	for _, v := range rand.Perm(100) {
		s.Insert(v)
	}
	var got []int
	s.DescendRange(60, 40, func(a int) bool {
		got = append(got, a)
		return true
	})
	if want := intRange(100, true)[39:59]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendrange:\n got: %v\nwant: %v", got, want)
	}
	got = got[:0]
	s.DescendRange(60, 40, func(a int) bool {
		if a < 50 {
			return false
		}
		got = append(got, a)
		return true
	})
	if want := intRange(100, true)[39:50]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendrange:\n got: %v\nwant: %v", got, want)
	}
}

func TestAscendLessThan(t *testing.T) {
	s := NewOrdered[int](*btreeDegree)
	for _, v := range rand.Perm(100) {
		s.Insert(v)
	}
	var got []int
	s.AscendLessThan(60, func(a int) bool {
		got = append(got, a)
		return true
	})
	if want := intRange(100, false)[:60]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
	got = got[:0]
	s.AscendLessThan(60, func(a int) bool {
		if a > 50 {
			return false
		}
		got = append(got, a)
		return true
	})
	if want := intRange(100, false)[:51]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
}

func TestDescendLessOrEqual(t *testing.T) {
	s := NewOrdered[int](*btreeDegree)
	for _, v := range rand.Perm(100) {
		s.Insert(v)
	}
	var got []int
	s.DescendLessOrEqual(40, func(a int) bool {
		got = append(got, a)
		return true
	})
	if want := intRange(100, true)[59:]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendlessorequal:\n got: %v\nwant: %v", got, want)
	}
	got = got[:0]
	s.DescendLessOrEqual(60, func(a int) bool {
		if a < 50 {
			return false
		}
		got = append(got, a)
		return true
	})
	if want := intRange(100, true)[39:50]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendlessorequal:\n got: %v\nwant: %v", got, want)
	}
}

func TestAscendGreaterOrEqual(t *testing.T) {
	s := NewOrdered[int](*btreeDegree)
	for _, v := range rand.Perm(100) {
		s.Insert(v)
	}
	var got []int
	s.AscendGreaterOrEqual(40, func(a int) bool {
		got = append(got, a)
		return true
	})
	if want := intRange(100, false)[40:]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
	got = got[:0]
	s.AscendGreaterOrEqual(40, func(a int) bool {
		if a > 50 {
			return false
		}
		got = append(got, a)
		return true
	})
	if want := intRange(100, false)[40:51]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
}

func TestDescendGreaterThan(t *testing.T) {
	s := NewOrdered[int](*btreeDegree)
	for _, v := range rand.Perm(100) {
		s.Insert(v)
	}
	var got []int
	s.DescendGreaterThan(40, func(a int) bool {
		got = append(got, a)
		return true
	})
	if want := intRange(100, true)[:59]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendgreaterthan:\n got: %v\nwant: %v", got, want)
	}
	got = got[:0]
	s.DescendGreaterThan(40, func(a int) bool {
		if a < 50 {
			return false
		}
		got = append(got, a)
		return true
	})
	if want := intRange(100, true)[:50]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendgreaterthan:\n got: %v\nwant: %v", got, want)
	}
}

func TestAllBackward(t *testing.T) {
	s := NewOrdered[int](2)
	for _, v := range rand.Perm(50) {
		s.Insert(v)
	}
	var got []int
	for v := range s.All() {
		if v == 10 {
			break
		}
		got = append(got, v)
	}
	if want := intRange(50, false)[:10]; !reflect.DeepEqual(got, want) {
		t.Fatalf("all:\n got: %v\nwant: %v", got, want)
	}
	got = got[:0]
	for v := range s.Backward() {
		got = append(got, v)
	}
	if want := intRange(50, true); !reflect.DeepEqual(got, want) {
		t.Fatalf("backward:\n got: %v\nwant: %v", got, want)
	}
}

const benchmarkTreeSize = 10000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		s := NewOrdered[int](*btreeDegree)
		for _, item := range insertP {
			s.Insert(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkSeek(b *testing.B) {
	b.StopTimer()
	size := 100000
	insertP := rand.Perm(size)
	s := NewOrdered[int](*btreeDegree)
	for _, item := range insertP {
		s.Insert(item)
	}
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		s.AscendGreaterOrEqual(i%size, func(i int) bool { return false })
	}
}

func BenchmarkDeleteInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	s := NewOrdered[int](*btreeDegree)
	for _, item := range insertP {
		s.Insert(item)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		s.Delete(insertP[i%benchmarkTreeSize])
		s.Insert(insertP[i%benchmarkTreeSize])
	}
}

func BenchmarkDelete(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		s := NewOrdered[int](*btreeDegree)
		for _, v := range insertP {
			s.Insert(v)
		}
		b.StartTimer()
		for _, item := range removeP {
			s.Delete(item)
			i++
			if i >= b.N {
				return
			}
		}
		if s.Len() > 0 {
			panic(s.Len())
		}
	}
}

func BenchmarkGet(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		s := NewOrdered[int](*btreeDegree)
		for _, v := range insertP {
			s.Insert(v)
		}
		b.StartTimer()
		for _, item := range removeP {
			s.Get(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkAscend(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	s := NewOrdered[int](*btreeDegree)
	for _, v := range arr {
		s.Insert(v)
	}
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		s.Ascend(func(item int) bool {
			if item != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], item)
			}
			j++
			return true
		})
	}
}

func BenchmarkDescend(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	s := NewOrdered[int](*btreeDegree)
	for _, v := range arr {
		s.Insert(v)
	}
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := len(arr) - 1
		s.Descend(func(item int) bool {
			if item != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], item)
			}
			j--
			return true
		})
	}
}

func BenchmarkPositionWalk(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	s := NewOrdered[int](*btreeDegree)
	for _, v := range arr {
		s.Insert(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		for p := s.Begin(); p != s.End(); p = p.Next() {
			if p.Item() != j {
				b.Fatalf("mismatch: expected: %v, got %v", j, p.Item())
			}
			j++
		}
	}
}

func BenchmarkDeleteAndRestore(b *testing.B) {
	items := rand.Perm(16392)
	b.ResetTimer()
	b.Run(`CopyBigFreeList`, func(b *testing.B) {
		fl := NewFreeList[int](16392)
		s := NewWithFreeList(*btreeDegree, Less[int](), fl)
		for _, v := range items {
			s.Insert(v)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dels := make([]int, 0, s.Len())
			s.Ascend(func(b int) bool {
				dels = append(dels, b)
				return true
			})
			for _, del := range dels {
				s.Delete(del)
			}
			// s is now empty, we make a new empty copy of it.
			s = NewWithFreeList(*btreeDegree, Less[int](), fl)
			for _, v := range items {
				s.Insert(v)
			}
		}
	})
	b.Run(`Copy`, func(b *testing.B) {
		s := NewOrdered[int](*btreeDegree)
		for _, v := range items {
			s.Insert(v)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dels := make([]int, 0, s.Len())
			s.Ascend(func(b int) bool {
				dels = append(dels, b)
				return true
			})
			for _, del := range dels {
				s.Delete(del)
			}
			// s is now empty, we make a new empty copy of it.
			s = NewOrdered[int](*btreeDegree)
			for _, v := range items {
				s.Insert(v)
			}
		}
	})
	b.Run(`ClearBigFreelist`, func(b *testing.B) {
		fl := NewFreeList[int](16392)
		s := NewWithFreeList(*btreeDegree, Less[int](), fl)
		for _, v := range items {
			s.Insert(v)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.Clear(true)
			for _, v := range items {
				s.Insert(v)
			}
		}
	})
	b.Run(`Clear`, func(b *testing.B) {
		s := NewOrdered[int](*btreeDegree)
		for _, v := range items {
			s.Insert(v)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.Clear(false)
			for _, v := range items {
				s.Insert(v)
			}
		}
	})
}
