package arrayvec

import "testing"

func BenchmarkPush(b *testing.B) {
	v := New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.IsFull() {
			v.Clear()
		}
		v.Push(i)
	}
}

func BenchmarkInsertFront(b *testing.B) {
	v := New[int](256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.IsFull() {
			v.Clear()
		}
		v.Insert(0, i)
	}
}

func BenchmarkTryAppend(b *testing.B) {
	batch := []int{1, 2, 3, 4, 5, 6, 7, 8}
	v := New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Remaining() < len(batch) {
			v.Clear()
		}
		if err := v.TryAppend(batch...); err != nil {
			b.Fatalf("append failed: %v", err)
		}
	}
}

func BenchmarkDrain(b *testing.B) {
	v := New[int](512)
	for i := 0; i < 512; i++ {
		v.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := v.Drain(128, 384)
		for {
			if _, ok := d.Next(); !ok {
				break
			}
		}
		d.Close()
		for v.Len() < 512 { // refill for the next round
			v.Push(v.Len())
		}
	}
}
