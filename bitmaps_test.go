package zearch

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
)

func bm(ids ...uint32) *roaring.Bitmap {
	return roaring.BitmapOf(ids...)
}

func TestUnionAll(t *testing.T) {
	got := unionAll(bm(1, 2), nil, bm(2, 3))
	want := bm(1, 2, 3)
	if !got.Equals(want) {
		t.Fatalf("unionAll: got %v, want %v", got.ToArray(), want.ToArray())
	}
}

func TestIntersectAll(t *testing.T) {
	got := intersectAll(bm(1, 2, 3), bm(2, 3, 4))
	want := bm(2, 3)
	if !got.Equals(want) {
		t.Fatalf("intersectAll: got %v, want %v", got.ToArray(), want.ToArray())
	}
}

func TestIntersectAllWithNilIsEmpty(t *testing.T) {
	got := intersectAll(bm(1, 2), nil)
	if !got.IsEmpty() {
		t.Fatalf("intersectAll with a nil entry should be empty, got %v", got.ToArray())
	}
}

func TestSubtractInPlace(t *testing.T) {
	target := bm(1, 2, 3)
	subtractInPlace(target, bm(2))
	want := bm(1, 3)
	if !target.Equals(want) {
		t.Fatalf("subtractInPlace: got %v, want %v", target.ToArray(), want.ToArray())
	}
}
